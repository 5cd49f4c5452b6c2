package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileAxisSelection(t *testing.T) {
	ds3 := ProfileFor(DualShock3)
	assert.Equal(t, uint8(0), ds3.Steering)
	assert.Equal(t, uint8(4), ds3.AccelBrake)

	ds4 := ProfileFor(DualShock4)
	assert.Equal(t, uint8(0), ds4.Steering)
	assert.Equal(t, uint8(5), ds4.AccelBrake)
}

func TestProfileForUnknownFamilyFallsBack(t *testing.T) {
	assert.Equal(t, ProfileFor(DualShock3), ProfileFor(Family(42)))
}
