package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/models"
)

func calendarRepo() *fakeRepo {
	repo := newFakeRepo()

	repo.addAppointment(models.Appointment{
		CustomerID: 100,
		BarberID:   1,
		Date:       "2026-09-07",
		Time:       "10:00",
		Status:     string(domain.StatusConfirmed),
		Customer:   models.User{Name: "Ana"},
		Barber:     models.Barber{Name: "Marco"},
		Service:    models.Service{Name: "Haircut", DurationMinutes: 30},
	})
	repo.addAppointment(models.Appointment{
		CustomerID: 200,
		BarberID:   1,
		Date:       "2026-09-08",
		Time:       "11:00",
		Status:     string(domain.StatusPending),
		Customer:   models.User{Name: "Ben"},
		Barber:     models.Barber{Name: "Marco"},
		Service:    models.Service{Name: "Shave", DurationMinutes: 45},
	})
	repo.addAppointment(models.Appointment{
		CustomerID: 100,
		BarberID:   1,
		Date:       "2026-10-01",
		Time:       "09:00",
		Status:     string(domain.StatusPending),
		Service:    models.Service{Name: "Haircut", DurationMinutes: 30},
	})

	return repo
}

func TestCalendarEventsCustomerScope(t *testing.T) {
	uc := NewListCalendarEvents(calendarRepo())

	events, err := uc.Execute(context.Background(), 100, false, "2026-09-01", "2026-09-30")
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "Haircut", ev.Title)
	assert.Equal(t, "Marco", ev.Barber)
	assert.Empty(t, ev.Customer)
	assert.Equal(t, "#27ae60", ev.Color)
	assert.Contains(t, ev.Start, "2026-09-07T10:00:00")
	assert.Contains(t, ev.End, "2026-09-07T10:30:00")
}

func TestCalendarEventsStaffScope(t *testing.T) {
	uc := NewListCalendarEvents(calendarRepo())

	events, err := uc.Execute(context.Background(), 1, true, "2026-09-01", "2026-09-30")
	require.NoError(t, err)
	require.Len(t, events, 2)

	titles := []string{events[0].Title, events[1].Title}
	assert.Contains(t, titles, "Ana: Haircut")
	assert.Contains(t, titles, "Ben: Shave")

	for _, ev := range events {
		assert.NotEmpty(t, ev.Customer)
	}
}

func TestCalendarEventsEndFromServiceDuration(t *testing.T) {
	uc := NewListCalendarEvents(calendarRepo())

	events, err := uc.Execute(context.Background(), 200, false, "2026-09-08", "2026-09-08")
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Contains(t, events[0].Start, "11:00:00")
	assert.Contains(t, events[0].End, "11:45:00")
	assert.Equal(t, "#f39c12", events[0].Color)
}
