package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fadeandco/barbershop-api/internal/httperr"
	ucBooking "github.com/fadeandco/barbershop-api/internal/usecase/booking"
)

type AvailabilityHandler struct {
	daySlotsUC *ucBooking.GetDayAvailability
}

func NewAvailabilityHandler(daySlotsUC *ucBooking.GetDayAvailability) *AvailabilityHandler {
	return &AvailabilityHandler{daySlotsUC: daySlotsUC}
}

// DaySlots answers "what is open for this barber on this date" as
// time/available/reason tuples for the booking form.
func (h *AvailabilityHandler) DaySlots(c *gin.Context) {
	barberIDStr := c.Query("barber_id")
	dateStr := c.Query("date")

	if barberIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barber and date are required.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.daySlotsUC.Execute(c.Request.Context(), uint(barberID), date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}
