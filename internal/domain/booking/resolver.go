package booking

import (
	"context"
	"time"

	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

// Resolver answers "what is open for barber B on date D" and "may slot
// (B, D, T) be booked". It combines the canonical slot sequence, the
// barber's weekly window and the ledger of active appointments.
//
// Known limitation, kept on purpose: collision is by exact start-time
// equality, not by interval overlap against service duration. Two
// services of different lengths starting one slot apart are both
// accepted. Interval exclusivity would be a deliberate policy change,
// not a bug fix.
type Resolver struct {
	repo Repository
}

func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveDaySlots marks every canonical slot of the day as available or
// not, with the reason when not. The result is advisory; the bookable
// check runs again at commit time.
func (r *Resolver) ResolveDaySlots(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]Slot, error) {

	all := DefaultSlots()

	avail, err := r.repo.GetAvailability(ctx, barberID, models.WeekdayOf(date))
	if err != nil {
		return nil, err
	}
	if avail == nil || !avail.Enabled {
		out := make([]Slot, 0, len(all))
		for _, t := range all {
			out = append(out, Slot{Time: t, Reason: ReasonBarberNotWorking})
		}
		return out, nil
	}

	booked, err := r.repo.ListBookedTimes(ctx, barberID, date.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, t := range booked {
		taken[t] = struct{}{}
	}

	out := make([]Slot, 0, len(all))
	for _, t := range all {
		switch {
		case t < avail.StartTime || t >= avail.EndTime:
			out = append(out, Slot{Time: t, Reason: ReasonOutsideWorkingHours})
		default:
			if _, ok := taken[t]; ok {
				out = append(out, Slot{Time: t, Reason: ReasonAlreadyBooked})
			} else {
				out = append(out, Slot{Time: t, Available: true})
			}
		}
	}

	return out, nil
}

// CheckSlotBookable is the authoritative per-slot check. It must be
// re-run at the moment of booking or reschedule commit; earlier
// day-slot reads may be stale.
func (r *Resolver) CheckSlotBookable(
	ctx context.Context,
	barberID uint,
	date string,
	timeOfDay string,
	now time.Time,
) error {
	return r.CheckSlotBookableExcluding(ctx, barberID, date, timeOfDay, now, 0)
}

// CheckSlotBookableExcluding is CheckSlotBookable ignoring one existing
// appointment, so a reschedule does not collide with itself.
func (r *Resolver) CheckSlotBookableExcluding(
	ctx context.Context,
	barberID uint,
	date string,
	timeOfDay string,
	now time.Time,
	excludeID uint,
) error {

	day, err := time.ParseInLocation(models.DateLayout, date, now.Location())
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := time.Parse(models.TimeLayout, timeOfDay); err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}

	today := now.Format(models.DateLayout)
	switch {
	case date < today:
		return httperr.ErrBusiness(ReasonInPast)
	case date == today && timeOfDay <= now.Format(models.TimeLayout):
		return httperr.ErrBusiness(ReasonSlotPassed)
	}

	avail, err := r.repo.GetAvailability(ctx, barberID, models.WeekdayOf(day))
	if err != nil {
		return err
	}
	if avail == nil || !avail.Enabled {
		return httperr.ErrBusiness(ReasonBarberNotWorking)
	}

	if timeOfDay < avail.StartTime || timeOfDay >= avail.EndTime {
		return httperr.ErrBusiness(ReasonOutsideWorkingHours)
	}

	count, err := r.repo.CountActiveAt(ctx, barberID, date, timeOfDay, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness(ReasonAlreadyBooked)
	}

	return nil
}
