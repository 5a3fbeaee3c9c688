package booking

import (
	"context"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/dto"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ForCustomer lists a customer's own appointments, newest first.
func (uc *ListAppointments) ForCustomer(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

// ByDate lists every appointment on one date, queue order. Staff view.
func (uc *ListAppointments) ByDate(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

// All lists every appointment ever made, newest first. Staff view.
func (uc *ListAppointments) All(
	ctx context.Context,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAllAppointments(ctx)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

// Detail returns one appointment, visible to its owner and to staff.
func (uc *ListAppointments) Detail(
	ctx context.Context,
	actorID uint,
	isStaff bool,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !isStaff && ap.CustomerID != actorID {
		return nil, httperr.ErrBusiness("forbidden")
	}

	return ap, nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			EndTime:     ap.EndTimeFor(ap.Service.DurationMinutes),
			Status:      ap.Status,
			QueueNumber: ap.QueueNumber,
			BarberName:  ap.Barber.Name,
			ServiceName: ap.Service.Name,
		})
	}
	return out
}
