package booking

import (
	"context"

	"github.com/fadeandco/barbershop-api/internal/models"
)

type Repository interface {
	// -------- Catalog --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Availability --------
	GetAvailability(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.BarberAvailability, error)

	// ListBookedTimes returns the times of active appointments for the
	// barber on the date, ordered ascending.
	ListBookedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	// CountActiveAt counts active appointments at the exact slot.
	// excludeID is skipped when non-zero (reschedule re-checks).
	CountActiveAt(
		ctx context.Context,
		barberID uint,
		date string,
		timeOfDay string,
		excludeID uint,
	) (int64, error)

	// -------- Appointment (create / mutate) --------

	// CreateAppointment assigns the queue number and inserts atomically.
	// A concurrent claim of the same slot comes back as the
	// already_booked business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsByDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAllAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	// ListAppointmentsInRange returns appointments with date in
	// [from, to]. customerID zero means all customers (staff view).
	ListAppointmentsInRange(
		ctx context.Context,
		from string,
		to string,
		customerID uint,
	) ([]models.Appointment, error)

	// -------- Payment (read-only collaborator) --------
	GetPayment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Payment, error)
}
