package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

// HoursHandler manages a barber's recurring weekly windows. Staff only;
// the scheduling core reads these but never writes them.
type HoursHandler struct {
	db *gorm.DB
}

func NewHoursHandler(db *gorm.DB) *HoursHandler {
	return &HoursHandler{db: db}
}

type WeeklyWindowConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Enabled   bool   `json:"enabled"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type HoursUpdateRequest struct {
	Days []WeeklyWindowConfig `json:"days" binding:"required"`
}

func (h *HoursHandler) Get(c *gin.Context) {
	barberID, ok := barberParam(c)
	if !ok {
		return
	}

	var hours []models.BarberAvailability
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_hours", "Could not load availability.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the barber's whole weekly configuration at once.
func (h *HoursHandler) Update(c *gin.Context) {
	barberID, ok := barberParam(c)
	if !ok {
		return
	}

	var req HoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := normalizeWindows(req.Days); err != nil {
		httperr.BadRequest(c, httperr.BusinessCode(err), "Invalid working hours.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.BarberAvailability{}).Error; err != nil {
			return err
		}

		var toCreate []models.BarberAvailability
		for _, d := range req.Days {
			toCreate = append(toCreate, models.BarberAvailability{
				BarberID:  barberID,
				Weekday:   d.Weekday,
				Enabled:   d.Enabled,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			})
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_hours", "Could not save availability.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// normalizeWindows validates each window's times against the 24h HH:MM
// layout and rewrites them in canonical form, so "8:00" is stored as
// "08:00". The scheduling core compares these strings lexically and
// depends on that form.
func normalizeWindows(days []WeeklyWindowConfig) error {
	for i, d := range days {
		if !d.Enabled && d.StartTime == "" && d.EndTime == "" {
			continue
		}

		start, err := time.Parse(models.TimeLayout, d.StartTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_time")
		}
		end, err := time.Parse(models.TimeLayout, d.EndTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_time")
		}

		days[i].StartTime = start.Format(models.TimeLayout)
		days[i].EndTime = end.Format(models.TimeLayout)

		if d.Enabled && days[i].StartTime >= days[i].EndTime {
			return httperr.ErrBusiness("invalid_window")
		}
	}
	return nil
}

func barberParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "Invalid barber id.")
		return 0, false
	}
	return uint(id), true
}
