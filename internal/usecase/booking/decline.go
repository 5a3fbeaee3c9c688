package booking

import (
	"context"

	"github.com/fadeandco/barbershop-api/internal/audit"
	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

type DeclineAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeclineAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *DeclineAppointment {
	return &DeclineAppointment{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *DeclineAppointment) Execute(
	ctx context.Context,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Decline(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "appointment_declined",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
