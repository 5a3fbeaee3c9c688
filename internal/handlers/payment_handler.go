package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadeandco/barbershop-api/internal/audit"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/middleware"
	"github.com/fadeandco/barbershop-api/internal/models"
	"github.com/fadeandco/barbershop-api/internal/timezone"
)

// PaymentHandler records how an appointment will be paid and lets staff
// verify payment. It never drives appointment state; the completion
// guard reads payment status through the booking core.
type PaymentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewPaymentHandler(db *gorm.DB, auditD *audit.Dispatcher) *PaymentHandler {
	return &PaymentHandler{db: db, audit: auditD}
}

type SubmitPaymentRequest struct {
	Method          string `json:"method" binding:"required,oneof=pay_after gcash"`
	ReferenceNumber string `json:"reference_number"`
}

// Submit creates or updates the payment record for the caller's
// appointment. Amount always comes from the service price. GCash
// submissions stay pending until staff verifies the reference.
func (h *PaymentHandler) Submit(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, ok := paramID(c)
	if !ok {
		return
	}

	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Method == models.PaymentMethodGcash && req.ReferenceNumber == "" {
		httperr.BadRequest(c, "missing_reference", "Please provide a GCash reference number.")
		return
	}

	var ap models.Appointment
	if err := h.db.
		Preload("Service").
		First(&ap, appointmentID).Error; err != nil {

		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	if !middleware.IsStaff(c) && ap.CustomerID != customerID {
		httperr.Forbidden(c, "forbidden", "You do not have permission to do that.")
		return
	}

	var payment models.Payment
	err := h.db.Where("appointment_id = ?", appointmentID).First(&payment).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			httperr.Internal(c, "payment_lookup_failed", "Could not load payment.")
			return
		}
		payment = models.Payment{
			AppointmentID: appointmentID,
			Status:        models.PaymentStatusPending,
		}
	}

	if payment.Status == models.PaymentStatusPaid {
		httperr.BadRequest(c, "already_paid", "Payment is already recorded as paid.")
		return
	}

	payment.Method = req.Method
	payment.Amount = ap.Service.Price
	payment.GcashReference = req.ReferenceNumber

	if err := h.db.Save(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_save_payment", "Could not save payment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "payment_submitted",
		Entity:   "payment",
		EntityID: &payment.ID,
		Metadata: map[string]any{"method": payment.Method, "amount": payment.Amount},
	})

	c.JSON(http.StatusOK, payment)
}

// MarkPaid is the staff verification step required before completion.
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	paymentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || paymentID == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid payment id.")
		return
	}

	var payment models.Payment
	if err := h.db.First(&payment, paymentID).Error; err != nil {
		httperr.NotFound(c, "payment_not_found", "Payment not found.")
		return
	}

	now := timezone.Now()
	payment.Status = models.PaymentStatusPaid
	payment.PaidAt = &now

	if err := h.db.Save(&payment).Error; err != nil {
		httperr.Internal(c, "failed_to_save_payment", "Could not save payment.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "payment_marked_paid",
		Entity:   "payment",
		EntityID: &payment.ID,
	})

	c.JSON(http.StatusOK, payment)
}

// ActiveQR returns the QR code customers scan for GCash payments.
func (h *PaymentHandler) ActiveQR(c *gin.Context) {
	var qr models.GcashQRCode
	if err := h.db.
		Where("active = true").
		Order("id ASC").
		First(&qr).Error; err != nil {

		httperr.NotFound(c, "qr_not_found", "No active GCash QR code.")
		return
	}

	c.JSON(http.StatusOK, qr)
}
