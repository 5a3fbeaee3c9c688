package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadeandco/barbershop-api/internal/audit"
	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/middleware"
	"github.com/fadeandco/barbershop-api/internal/models"
	"github.com/fadeandco/barbershop-api/internal/storage"
)

const maxUploadBytes = 10 << 20

// UploadHandler covers the staff media endpoints: barber photos,
// service images and GCash QR codes.
type UploadHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewUploadHandler(db *gorm.DB, uploader *storage.Uploader, auditD *audit.Dispatcher) *UploadHandler {
	return &UploadHandler{db: db, uploader: uploader, audit: auditD}
}

func (h *UploadHandler) openImage(c *gin.Context) (multipart.File, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return nil, false
	}
	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be 10MB or smaller.")
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read uploaded image.")
		return nil, false
	}
	return f, true
}

// BarberPhoto replaces the photo of an existing barber.
func (h *UploadHandler) BarberPhoto(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || barberID == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid barber id.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, barberID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber not found.")
		return
	}

	f, ok := h.openImage(c)
	if !ok {
		return
	}
	defer f.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), "barbers", f)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	barber.PhotoURL = url
	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_save_barber", "Could not update barber.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "barber_photo_updated",
		Entity:   "barber",
		EntityID: &barber.ID,
	})

	c.JSON(http.StatusOK, barber)
}

// ServiceImage replaces the image of an existing service.
func (h *UploadHandler) ServiceImage(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || serviceID == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid service id.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, serviceID).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	f, ok := h.openImage(c)
	if !ok {
		return
	}
	defer f.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), "services", f)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_save_service", "Could not update service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "service_image_updated",
		Entity:   "service",
		EntityID: &service.ID,
	})

	c.JSON(http.StatusOK, service)
}

// CreateQR uploads a new GCash QR code and makes it the active one.
// Only one QR is active at a time.
func (h *UploadHandler) CreateQR(c *gin.Context) {
	staffID := c.MustGet(middleware.ContextUserID).(uint)

	name := c.PostForm("name")
	if name == "" {
		httperr.BadRequest(c, "missing_name", "A name for the QR code is required.")
		return
	}

	f, ok := h.openImage(c)
	if !ok {
		return
	}
	defer f.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), "gcash-qr", f)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	qr := models.GcashQRCode{
		Name:          name,
		ImageURL:      url,
		AccountName:   c.PostForm("account_name"),
		AccountNumber: c.PostForm("account_number"),
		Active:        true,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GcashQRCode{}).
			Where("active = true").
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Create(&qr).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_qr", "Could not save QR code.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &staffID,
		Action:   "gcash_qr_created",
		Entity:   "gcash_qr",
		EntityID: &qr.ID,
	})

	c.JSON(http.StatusCreated, qr)
}
