package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadeandco/barbershop-api/internal/httperr"
)

func TestStatusActive(t *testing.T) {
	assert.True(t, StatusPending.Active())
	assert.True(t, StatusConfirmed.Active())

	assert.False(t, StatusCompleted.Active())
	assert.False(t, StatusCancelled.Active())
	assert.False(t, StatusDeclined.Active())
}

func TestTransitionGuards(t *testing.T) {
	tests := []struct {
		name    string
		guard   func(Status) error
		current Status
		allowed bool
	}{
		{"approve pending", CanApprove, StatusPending, true},
		{"approve confirmed again", CanApprove, StatusConfirmed, false},
		{"approve cancelled", CanApprove, StatusCancelled, false},
		{"approve declined", CanApprove, StatusDeclined, false},

		{"decline pending", CanDecline, StatusPending, true},
		{"decline declined again", CanDecline, StatusDeclined, false},
		{"decline confirmed", CanDecline, StatusConfirmed, false},

		{"cancel pending", CanCancel, StatusPending, true},
		{"cancel confirmed", CanCancel, StatusConfirmed, true},
		{"cancel completed", CanCancel, StatusCompleted, false},
		{"cancel cancelled again", CanCancel, StatusCancelled, false},
		{"cancel declined", CanCancel, StatusDeclined, false},

		{"complete confirmed", CanComplete, StatusConfirmed, true},
		{"complete pending", CanComplete, StatusPending, false},
		{"complete completed again", CanComplete, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard(tt.current)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, "invalid_state", httperr.BusinessCode(err))
			}
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
	assert.True(t, InitialStatus().Valid())
}
