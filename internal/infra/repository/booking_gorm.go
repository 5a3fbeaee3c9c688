package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
}

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetAvailability(
	ctx context.Context,
	barberID uint,
	weekday int,
) (*models.BarberAvailability, error) {

	var avail models.BarberAvailability
	err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		First(&avail).Error
	if err != nil {
		// No configured window is a domain fact, not a failure.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &avail, nil
}

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND status IN ?",
			barberID, date, activeStatuses,
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *BookingGormRepository) CountActiveAt(
	ctx context.Context,
	barberID uint,
	date string,
	timeOfDay string,
	excludeID uint,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND time = ? AND status IN ?",
			barberID, date, timeOfDay, activeStatuses,
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Appointment (create / mutate)
// --------------------------------------------------

// CreateAppointment re-checks the slot and inserts in one transaction,
// assigning the day's next queue number. The partial unique index on
// (barber_id, date, time) is the last line of defense; its violation is
// reported as the already_booked business error, never as a fatal one.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Postgres does not allow FOR UPDATE on aggregates, so the
		// conflict check selects the rows themselves.
		var conflicts []models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND date = ? AND time = ? AND status IN ?",
				ap.BarberID, ap.Date, ap.Time, activeStatuses,
			).
			Find(&conflicts).Error; err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return httperr.ErrBusiness(domain.ReasonAlreadyBooked)
		}

		// Queue numbers are per calendar date across all barbers.
		var maxQueue int64
		if err := tx.
			Model(&models.Appointment{}).
			Where("date = ?", ap.Date).
			Select("COALESCE(MAX(queue_number), 0)").
			Scan(&maxQueue).Error; err != nil {
			return err
		}
		ap.QueueNumber = int(maxQueue) + 1

		return tx.Create(ap).Error
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(domain.ReasonAlreadyBooked)
		}
		return err
	}

	return nil
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness(domain.ReasonAlreadyBooked)
	}
	return err
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsByDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		Where("date = ?", date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAllAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		Order("date DESC, time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsInRange(
	ctx context.Context,
	from string,
	to string,
	customerID uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		Where("date >= ? AND date <= ?", from, to)

	if customerID != 0 {
		q = q.Where("customer_id = ?", customerID)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *BookingGormRepository) GetPayment(
	ctx context.Context,
	appointmentID uint,
) (*models.Payment, error) {

	var payment models.Payment
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		First(&payment).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
