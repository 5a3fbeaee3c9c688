package booking

import (
	"context"
	"errors"
	"time"

	"github.com/fadeandco/barbershop-api/internal/audit"
	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/lock"
	"github.com/fadeandco/barbershop-api/internal/models"
	"github.com/fadeandco/barbershop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uint
	BarberID   uint
	ServiceID  uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	resolver *domain.Resolver
	locker   lock.SlotLocker
	audit    *audit.Dispatcher

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	locker lock.SlotLocker,
	auditD *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		resolver: domain.NewResolver(repo),
		locker:   locker,
		audit:    auditD,
		now:      timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil || !barber.Active {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	now := uc.now()
	if err := uc.resolver.CheckSlotBookable(ctx, in.BarberID, in.Date, in.Time, now); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		CustomerID: in.CustomerID,
		BarberID:   in.BarberID,
		ServiceID:  in.ServiceID,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	// The slot lock narrows the race window between the check above and
	// the insert; the repository re-checks inside its transaction and the
	// unique index settles whatever still slips through.
	err = uc.locker.WithSlotLock(ctx, ap.SlotKey(), func(lockCtx context.Context) error {
		return uc.repo.CreateAppointment(lockCtx, ap)
	})
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, httperr.ErrBusiness(domain.ReasonAlreadyBooked)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": in.BarberID,
			"date":      in.Date,
			"time":      in.Time,
			"queue":     ap.QueueNumber,
		},
	})

	return ap, nil
}
