package booking

import (
	"context"
	"fmt"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

// fakeRepo is an in-memory Repository with the same conflict semantics
// as the gorm implementation: exact-slot collision among active rows and
// per-date queue numbering.
type fakeRepo struct {
	barbers      map[uint]*models.Barber
	services     map[uint]*models.Service
	avail        map[string]*models.BarberAvailability // "barberID:weekday"
	appointments map[uint]*models.Appointment
	payments     map[uint]*models.Payment // by appointment id

	nextID    uint
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		barbers:      map[uint]*models.Barber{},
		services:     map[uint]*models.Service{},
		avail:        map[string]*models.BarberAvailability{},
		appointments: map[uint]*models.Appointment{},
		payments:     map[uint]*models.Payment{},
	}
}

func availKey(barberID uint, weekday int) string {
	return fmt.Sprintf("%d:%d", barberID, weekday)
}

func (f *fakeRepo) addBarber(id uint, active bool) {
	f.barbers[id] = &models.Barber{ID: id, Name: fmt.Sprintf("Barber %d", id), Active: active}
}

func (f *fakeRepo) addService(id uint, active bool) {
	f.services[id] = &models.Service{ID: id, Name: fmt.Sprintf("Service %d", id), DurationMinutes: 30, Price: 150, Active: active}
}

func (f *fakeRepo) addAvailability(barberID uint, weekday int, start, end string) {
	f.avail[availKey(barberID, weekday)] = &models.BarberAvailability{
		BarberID:  barberID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Enabled:   true,
	}
}

func (f *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = &ap
	return &ap
}

func (f *fakeRepo) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	b, ok := f.barbers[id]
	if !ok {
		return nil, fmt.Errorf("barber %d not found", id)
	}
	return b, nil
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service %d not found", id)
	}
	return s, nil
}

func (f *fakeRepo) GetAvailability(ctx context.Context, barberID uint, weekday int) (*models.BarberAvailability, error) {
	return f.avail[availKey(barberID, weekday)], nil
}

func (f *fakeRepo) ListBookedTimes(ctx context.Context, barberID uint, date string) ([]string, error) {
	var out []string
	for _, ap := range f.appointments {
		if ap.BarberID == barberID && ap.Date == date && domain.Status(ap.Status).Active() {
			out = append(out, ap.Time)
		}
	}
	return out, nil
}

func (f *fakeRepo) CountActiveAt(ctx context.Context, barberID uint, date, timeOfDay string, excludeID uint) (int64, error) {
	var n int64
	for _, ap := range f.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.BarberID == barberID && ap.Date == date && ap.Time == timeOfDay && domain.Status(ap.Status).Active() {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}

	count, _ := f.CountActiveAt(ctx, ap.BarberID, ap.Date, ap.Time, 0)
	if count > 0 {
		return httperr.ErrBusiness(domain.ReasonAlreadyBooked)
	}

	queue := 0
	for _, other := range f.appointments {
		if other.Date == ap.Date && other.QueueNumber > queue {
			queue = other.QueueNumber
		}
	}
	ap.QueueNumber = queue + 1

	f.nextID++
	ap.ID = f.nextID

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, fmt.Errorf("appointment %d not found", id)
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return fmt.Errorf("appointment %d not found", ap.ID)
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) ListAppointmentsForCustomer(ctx context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.CustomerID == customerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date == date {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAllAppointments(ctx context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsInRange(ctx context.Context, from, to string, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date < from || ap.Date > to {
			continue
		}
		if customerID != 0 && ap.CustomerID != customerID {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (f *fakeRepo) GetPayment(ctx context.Context, appointmentID uint) (*models.Payment, error) {
	p, ok := f.payments[appointmentID]
	if !ok {
		return nil, fmt.Errorf("payment for appointment %d not found", appointmentID)
	}
	return p, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeLocker runs the callback inline, or refuses when err is set.
type fakeLocker struct {
	err   error
	calls int
	keys  []string
}

func (l *fakeLocker) WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	l.calls++
	l.keys = append(l.keys, key)
	if l.err != nil {
		return l.err
	}
	return fn(ctx)
}
