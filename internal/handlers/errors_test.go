package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domain "github.com/fadeandco/barbershop-api/internal/domain/booking"
	"github.com/fadeandco/barbershop-api/internal/httperr"
)

func TestWriteBookingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"slot conflict", httperr.ErrBusiness(domain.ReasonAlreadyBooked), http.StatusConflict},
		{"not the owner", httperr.ErrBusiness("forbidden"), http.StatusForbidden},
		{"missing appointment", httperr.ErrBusiness("appointment_not_found"), http.StatusNotFound},
		{"missing barber", httperr.ErrBusiness("barber_not_found"), http.StatusNotFound},
		{"past slot", httperr.ErrBusiness(domain.ReasonInPast), http.StatusBadRequest},
		{"bad transition", httperr.ErrBusiness("invalid_state"), http.StatusBadRequest},
		{"unpaid", httperr.ErrBusiness("payment_required"), http.StatusBadRequest},
		{"unexpected failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeBookingError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestParseRangeDate(t *testing.T) {
	got, ok := parseRangeDate("2026-09-07")
	assert.True(t, ok)
	assert.Equal(t, "2026-09-07", got)

	got, ok = parseRangeDate("2026-09-07T00:00:00+08:00")
	assert.True(t, ok)
	assert.Equal(t, "2026-09-07", got)

	_, ok = parseRangeDate("next week")
	assert.False(t, ok)

	_, ok = parseRangeDate("")
	assert.False(t, ok)
}
