package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("Asia/Manila"))
	assert.True(t, IsValid("UTC"))

	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
	assert.Equal(t, DefaultTimezone, Location("nonsense").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}

func TestNowUsesShopClock(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Now().Location().String())
}
