package models

import "time"

// BarberAvailability is one recurring weekly window: the hours a barber
// takes bookings on a given weekday. Unique per (barber, weekday).
type BarberAvailability struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_barber_weekday" json:"barber_id"`

	// Weekday uses Monday=0 .. Sunday=6.
	Weekday int `gorm:"uniqueIndex:idx_barber_weekday" json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Enabled   bool   `gorm:"default:true" json:"enabled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeekdayOf converts a date to the Monday=0 numbering used by
// BarberAvailability rows.
func WeekdayOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
