package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/httpresp"
	"github.com/fadeandco/barbershop-api/internal/middleware"
	ucBooking "github.com/fadeandco/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucBooking.CreateAppointment
	approveUC    *ucBooking.ApproveAppointment
	declineUC    *ucBooking.DeclineAppointment
	cancelUC     *ucBooking.CancelAppointment
	completeUC   *ucBooking.CompleteAppointment
	rescheduleUC *ucBooking.RescheduleAppointment
	listUC       *ucBooking.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	approveUC *ucBooking.ApproveAppointment,
	declineUC *ucBooking.DeclineAppointment,
	cancelUC *ucBooking.CancelAppointment,
	completeUC *ucBooking.CompleteAppointment,
	rescheduleUC *ucBooking.RescheduleAppointment,
	listUC *ucBooking.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		approveUC:    approveUC,
		declineUC:    declineUC,
		cancelUC:     cancelUC,
		completeUC:   completeUC,
		rescheduleUC: rescheduleUC,
		listUC:       listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	ServiceID uint   `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
	Notes     string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		CustomerID: customerID,
		BarberID:   req.BarberID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Time:       req.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST (customer)
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	out, err := h.listUC.ForCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST BY DATE (staff)
// ======================================================

// ListByDate returns the day's queue; without a date it returns the
// full history.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		out, err := h.listUC.All(c.Request.Context())
		if err != nil {
			httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
			return
		}
		httpresp.List(c, out)
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	out, err := h.listUC.ByDate(c.Request.Context(), date.Format("2006-01-02"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not list appointments.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// DETAIL
// ======================================================

func (h *AppointmentHandler) Detail(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.listUC.Detail(c.Request.Context(), actorID, middleware.IsStaff(c), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Approve(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.approveUC.Execute(c.Request.Context(), staffID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Decline(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.declineUC.Execute(c.Request.Context(), staffID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), staffID, id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), actorID, middleware.IsStaff(c), id)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucBooking.RescheduleAppointmentInput{
		ActorID:       actorID,
		IsStaff:       middleware.IsStaff(c),
		AppointmentID: id,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// HELPERS
// ======================================================

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}
