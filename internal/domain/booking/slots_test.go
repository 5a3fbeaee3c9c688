package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name         string
		start, end   string
		interval     int
		excludeLunch bool
		want         []string
	}{
		{
			name:     "morning window no lunch",
			start:    "09:00",
			end:      "11:00",
			interval: 30,
			want:     []string{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:         "lunch hour skipped not shifted",
			start:        "11:00",
			end:          "14:00",
			interval:     30,
			excludeLunch: true,
			want:         []string{"11:00", "11:30", "13:00", "13:30"},
		},
		{
			name:         "lunch kept when not excluded",
			start:        "11:30",
			end:          "13:30",
			interval:     30,
			excludeLunch: false,
			want:         []string{"11:30", "12:00", "12:30", "13:00"},
		},
		{
			name:     "end time is exclusive",
			start:    "17:00",
			end:      "18:00",
			interval: 30,
			want:     []string{"17:00", "17:30"},
		},
		{
			name:     "hour interval",
			start:    "09:00",
			end:      "12:00",
			interval: 60,
			want:     []string{"09:00", "10:00", "11:00"},
		},
		{
			name:     "empty window",
			start:    "09:00",
			end:      "09:00",
			interval: 30,
			want:     nil,
		},
		{
			name:     "invalid start time",
			start:    "9am",
			end:      "18:00",
			interval: 30,
			want:     nil,
		},
		{
			name:     "zero interval",
			start:    "09:00",
			end:      "18:00",
			interval: 0,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.start, tt.end, tt.interval, tt.excludeLunch)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultSlots(t *testing.T) {
	slots := DefaultSlots()

	// 09:00 through 17:30 every 30 minutes, minus the two lunch slots.
	require.Len(t, slots, 16)

	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "17:30", slots[len(slots)-1])

	assert.NotContains(t, slots, "12:00")
	assert.NotContains(t, slots, "12:30")
	assert.Contains(t, slots, "11:30")
	assert.Contains(t, slots, "13:00")
	assert.NotContains(t, slots, "18:00")

	// Sorted and stable across calls.
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
	assert.Equal(t, slots, DefaultSlots())
}
