//go:build linux

package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRescaleAxis(t *testing.T) {
	// 8-bit pads (DualShock 3 over evdev reports 0..255)
	assert.Equal(t, int16(-32768), rescaleAxis(0, 0, 255))
	assert.Equal(t, int16(32767), rescaleAxis(255, 0, 255))

	// already full range
	assert.Equal(t, int16(-32768), rescaleAxis(-32768, -32768, 32767))
	assert.Equal(t, int16(32767), rescaleAxis(32767, -32768, 32767))

	// out of range values clamp instead of wrapping
	assert.Equal(t, int16(32767), rescaleAxis(300, 0, 255))
	assert.Equal(t, int16(-32768), rescaleAxis(-5, 0, 255))

	// degenerate range
	assert.Equal(t, int16(0), rescaleAxis(10, 5, 5))
}
