package models

import "time"

type Barber struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `json:"user_id"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Bio            string `gorm:"size:500" json:"bio"`
	Specialization string `gorm:"size:200" json:"specialization"`
	PhotoURL       string `gorm:"size:255" json:"photo_url"`
	Active         bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
