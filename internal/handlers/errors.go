package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
)

var businessMessages = map[string]string{
	"invalid_date_or_time":            "Invalid date or time.",
	domain.ReasonInPast:               "Cannot book appointments in the past.",
	domain.ReasonSlotPassed:           "That time slot has already passed.",
	domain.ReasonBarberNotWorking:     "The barber is not working on that day.",
	domain.ReasonOutsideWorkingHours:  "Outside the barber's working hours.",
	domain.ReasonAlreadyBooked:        "That time slot is already booked. Please choose another.",
	"invalid_state":                   "The appointment cannot change to that state.",
	"payment_required":                "Cannot complete the appointment until payment is recorded.",
	"reschedule_not_allowed":          "Too close to the appointment time, or already completed/cancelled.",
	"forbidden":                       "You do not have permission to do that.",
	"appointment_not_found":           "Appointment not found.",
	"barber_not_found":                "Barber not found.",
	"service_not_found":               "Service not found.",
}

// writeBookingError turns a business error into the matching HTTP
// response. Anything that is not a business error is a real failure.
func writeBookingError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Request rejected."
	}

	switch code {
	case "forbidden":
		httperr.Forbidden(c, code, msg)
	case "appointment_not_found", "barber_not_found", "service_not_found":
		httperr.NotFound(c, code, msg)
	case domain.ReasonAlreadyBooked:
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
