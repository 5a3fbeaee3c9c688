package handlers

import (
	"time"

	"github.com/fadeandco/barbershop-api/internal/models"
	"github.com/fadeandco/barbershop-api/internal/timezone"
)

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		models.DateLayout,
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

// parseRangeDate accepts either a plain date or an ISO8601 datetime, the
// two shapes calendar frontends send, and normalizes to YYYY-MM-DD.
func parseRangeDate(s string) (string, bool) {
	if len(s) >= 10 {
		if d, err := parseDate(s[:10]); err == nil {
			return d.Format(models.DateLayout), true
		}
	}
	return "", false
}
