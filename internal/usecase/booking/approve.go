package booking

import (
	"context"

	"github.com/fadeandco/barbershop-api/internal/audit"
	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

type ApproveAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApproveAppointment(
	repo domain.Repository,
	auditD *audit.Dispatcher,
) *ApproveAppointment {
	return &ApproveAppointment{
		repo:  repo,
		audit: auditD,
	}
}

func (uc *ApproveAppointment) Execute(
	ctx context.Context,
	staffID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Approve(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "appointment_approved",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
