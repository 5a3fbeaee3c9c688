package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/middleware"
	ucBooking "github.com/fadeandco/barbershop-api/internal/usecase/booking"
)

type CalendarHandler struct {
	eventsUC *ucBooking.ListCalendarEvents
}

func NewCalendarHandler(eventsUC *ucBooking.ListCalendarEvents) *CalendarHandler {
	return &CalendarHandler{eventsUC: eventsUC}
}

// Events serves the calendar range query. Customers get their own
// appointments; staff get everyone's.
func (h *CalendarHandler) Events(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	from, okFrom := parseRangeDate(c.Query("start"))
	to, okTo := parseRangeDate(c.Query("end"))
	if !okFrom || !okTo || to < from {
		httperr.BadRequest(c, "invalid_range", "Missing or invalid start/end parameters.")
		return
	}

	events, err := h.eventsUC.Execute(
		c.Request.Context(),
		actorID,
		middleware.IsStaff(c),
		from,
		to,
	)
	if err != nil {
		httperr.Internal(c, "calendar_failed", "Could not load calendar events.")
		return
	}

	c.JSON(http.StatusOK, events)
}
