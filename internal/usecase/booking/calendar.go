package booking

import (
	"context"
	"time"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/dto"
	"github.com/fadeandco/barbershop-api/internal/timezone"
)

var statusColors = map[string]string{
	string(domain.StatusPending):   "#f39c12",
	string(domain.StatusConfirmed): "#27ae60",
	string(domain.StatusCompleted): "#2980b9",
	string(domain.StatusCancelled): "#c0392b",
	string(domain.StatusDeclined):  "#7f8c8d",
}

const defaultEventColor = "#34495e"

type ListCalendarEvents struct {
	repo domain.Repository
}

func NewListCalendarEvents(repo domain.Repository) *ListCalendarEvents {
	return &ListCalendarEvents{repo: repo}
}

// Execute returns appointments in [from, to] as calendar events.
// Customers only see their own; staff see everyone's. Event end times
// are derived from service duration for display, which is the only
// place duration participates in scheduling output.
func (uc *ListCalendarEvents) Execute(
	ctx context.Context,
	actorID uint,
	isStaff bool,
	from string,
	to string,
) ([]dto.CalendarEventDTO, error) {

	scope := actorID
	if isStaff {
		scope = 0
	}

	appointments, err := uc.repo.ListAppointmentsInRange(ctx, from, to, scope)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(timezone.DefaultTimezone)

	events := make([]dto.CalendarEventDTO, 0, len(appointments))
	for _, ap := range appointments {
		start, err := ap.StartsAt(loc)
		if err != nil {
			continue
		}
		end := start.Add(time.Duration(ap.Service.DurationMinutes) * time.Minute)

		color, ok := statusColors[ap.Status]
		if !ok {
			color = defaultEventColor
		}

		ev := dto.CalendarEventDTO{
			ID:     ap.ID,
			Title:  ap.Service.Name,
			Start:  start.Format(time.RFC3339),
			End:    end.Format(time.RFC3339),
			Color:  color,
			Status: ap.Status,
			Barber: ap.Barber.Name,
		}
		if isStaff {
			ev.Title = ap.Customer.Name + ": " + ev.Title
			ev.Customer = ap.Customer.Name
		}

		events = append(events, ev)
	}

	return events, nil
}
