package models

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Date and Time identify the booked slot. Collision checking is by
	// exact equality of this pair, not by service-duration overlap.
	Date string `gorm:"size:10;index" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// QueueNumber is the ticket position among all appointments created
	// for the same calendar date. Display only.
	QueueNumber int    `json:"queue_number"`
	Notes       string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StartsAt combines Date and Time into a wall-clock instant in loc.
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, a.Date+" "+a.Time, loc)
}

// EndTimeFor returns the display end time derived from a service duration.
func (a *Appointment) EndTimeFor(durationMinutes int) string {
	t, err := time.Parse(TimeLayout, a.Time)
	if err != nil {
		return a.Time
	}
	return t.Add(time.Duration(durationMinutes) * time.Minute).Format(TimeLayout)
}

// SlotKey is the identity used for per-slot locking.
func (a *Appointment) SlotKey() string {
	return SlotKey(a.BarberID, a.Date, a.Time)
}

func SlotKey(barberID uint, date, timeOfDay string) string {
	return fmt.Sprintf("%d:%s:%s", barberID, date, timeOfDay)
}
