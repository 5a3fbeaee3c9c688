package booking

import (
	"fmt"
	"time"

	"github.com/fadeandco/barbershop-api/internal/models"
)

// Business-day defaults. Every bookable slot the shop offers comes out of
// GenerateSlots with these values; a barber's weekly window then narrows
// them down.
const (
	DefaultOpenTime    = "09:00"
	DefaultCloseTime   = "18:00"
	DefaultSlotMinutes = 30

	LunchStart = "12:00"
	LunchEnd   = "13:00"
)

// Slot unavailability reasons, surfaced to callers as business codes.
const (
	ReasonInPast              = "in_past"
	ReasonSlotPassed          = "slot_passed"
	ReasonBarberNotWorking    = "barber_not_working"
	ReasonOutsideWorkingHours = "outside_working_hours"
	ReasonAlreadyBooked       = "already_booked"
)

// Slot is one candidate time of day for a barber on a date.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// GenerateSlots produces the ordered candidate times for a business day:
// start, start+interval, ... strictly before end. With excludeLunch, times
// falling in [LunchStart, LunchEnd) are skipped, not shifted.
//
// Pure and deterministic; "HH:MM" strings compare correctly as text.
func GenerateSlots(startTime, endTime string, intervalMinutes int, excludeLunch bool) []string {
	start, err := minutesOfDay(startTime)
	if err != nil {
		return nil
	}
	end, err := minutesOfDay(endTime)
	if err != nil {
		return nil
	}
	if intervalMinutes <= 0 {
		return nil
	}

	lunchFrom, _ := minutesOfDay(LunchStart)
	lunchTo, _ := minutesOfDay(LunchEnd)

	var slots []string
	for m := start; m < end; m += intervalMinutes {
		if excludeLunch && m >= lunchFrom && m < lunchTo {
			continue
		}
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// DefaultSlots is the canonical slot sequence for any business day.
func DefaultSlots() []string {
	return GenerateSlots(DefaultOpenTime, DefaultCloseTime, DefaultSlotMinutes, true)
}

func minutesOfDay(hm string) (int, error) {
	t, err := time.Parse(models.TimeLayout, hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
