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

type RescheduleAppointmentInput struct {
	ActorID       uint
	IsStaff       bool
	AppointmentID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

type RescheduleAppointment struct {
	repo     domain.Repository
	resolver *domain.Resolver
	locker   lock.SlotLocker
	audit    *audit.Dispatcher

	now func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	locker lock.SlotLocker,
	auditD *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		resolver: domain.NewResolver(repo),
		locker:   locker,
		audit:    auditD,
		now:      timezone.Now,
	}
}

// Execute moves an appointment to a new slot. The status is kept; only
// date and time change. The target slot goes through the same bookable
// check as a fresh booking, ignoring the appointment itself.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !in.IsStaff && ap.CustomerID != in.ActorID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := uc.now()
	if !domain.CanReschedule(ap, now) {
		return nil, httperr.ErrBusiness("reschedule_not_allowed")
	}

	if err := uc.resolver.CheckSlotBookableExcluding(
		ctx, ap.BarberID, in.Date, in.Time, now, ap.ID,
	); err != nil {
		return nil, err
	}

	previous := map[string]any{"date": ap.Date, "time": ap.Time}

	if err := domain.Reschedule(ap, in.Date, in.Time, now); err != nil {
		return nil, err
	}

	err = uc.locker.WithSlotLock(ctx, ap.SlotKey(), func(lockCtx context.Context) error {
		return uc.repo.UpdateAppointment(lockCtx, ap)
	})
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return nil, httperr.ErrBusiness(domain.ReasonAlreadyBooked)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": previous,
			"to":   map[string]any{"date": in.Date, "time": in.Time},
		},
	})

	return ap, nil
}
