package booking

import (
	"time"

	"github.com/fadeandco/barbershop-api/internal/httperr"
	"github.com/fadeandco/barbershop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Actions mutate the appointment in memory after their guards pass.
// Persisting the change is the caller's job.

// RescheduleLeadTime is the minimum interval before an appointment's start
// below which rescheduling is no longer allowed.
const RescheduleLeadTime = 2 * time.Hour

func Approve(ap *models.Appointment) error {
	if err := CanApprove(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Decline(ap *models.Appointment) error {
	if err := CanDecline(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDeclined)
	return nil
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	return nil
}

// Complete requires a recorded paid payment. This is the one cross-entity
// guard enforced here regardless of who calls.
func Complete(ap *models.Appointment, paymentStatus string) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	if paymentStatus != models.PaymentStatusPaid {
		return httperr.ErrBusiness("payment_required")
	}

	ap.Status = string(StatusCompleted)
	return nil
}

// CanReschedule reports whether the appointment may still be moved:
// not completed or cancelled, start strictly in the future, and more than
// RescheduleLeadTime away. now must carry the location Date/Time are
// interpreted in.
func CanReschedule(ap *models.Appointment, now time.Time) bool {
	s := Status(ap.Status)
	if s == StatusCompleted || s == StatusCancelled {
		return false
	}

	startsAt, err := ap.StartsAt(now.Location())
	if err != nil {
		return false
	}
	if !startsAt.After(now) {
		return false
	}

	return startsAt.Sub(now) > RescheduleLeadTime
}

// Reschedule moves the appointment to a new slot, keeping its status.
// Slot legality for the target is checked separately by the resolver.
func Reschedule(ap *models.Appointment, date, timeOfDay string, now time.Time) error {
	if !CanReschedule(ap, now) {
		return httperr.ErrBusiness("reschedule_not_allowed")
	}

	ap.Date = date
	ap.Time = timeOfDay
	return nil
}
