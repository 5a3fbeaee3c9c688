package models

import "time"

const (
	PaymentMethodPayAfter = "pay_after"
	PaymentMethodGcash    = "gcash"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Method         string  `gorm:"size:20" json:"method"`
	Amount         float64 `json:"amount"`
	Status         string  `gorm:"size:20;default:'pending'" json:"status"`
	GcashReference string  `gorm:"size:100" json:"gcash_reference"`

	PaidAt    *time.Time `json:"paid_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// GcashQRCode is the QR customers scan when paying through GCash.
type GcashQRCode struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	ImageURL      string `gorm:"size:255" json:"image_url"`
	AccountName   string `gorm:"size:100" json:"account_name"`
	AccountNumber string `gorm:"size:50" json:"account_number"`
	Active        bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
