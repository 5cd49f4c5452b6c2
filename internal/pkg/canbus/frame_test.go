package canbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.einride.tech/can"
)

func TestMarshalActuationRequest(t *testing.T) {
	ar := ActuationRequest{Acceleration: 12.25, Steering: -3.5, Valid: true}
	f := Marshal(0x4A1, ar)

	assert.Equal(t, uint32(0x4A1), f.ID)
	assert.Equal(t, uint8(5), f.Length)

	// acceleration 12.25 / 0.01 = 1225, steering -3.5 / 0.01 = -350
	assert.Equal(t, byte(0xC9), f.Data[0])
	assert.Equal(t, byte(0x04), f.Data[1])
	assert.Equal(t, byte(0xA2), f.Data[2])
	assert.Equal(t, byte(0xFE), f.Data[3])
	assert.Equal(t, byte(0x01), f.Data[4])

	got, err := Unmarshal(f)
	assert.NoError(t, err)
	assert.Equal(t, ar, got)
}

func TestMarshalInvalidFlag(t *testing.T) {
	f := Marshal(DefaultFrameID, ActuationRequest{Acceleration: 50, Valid: false})

	got, err := Unmarshal(f)
	assert.NoError(t, err)
	assert.False(t, got.Valid)
	assert.Equal(t, float32(50), got.Acceleration)
}

func TestMarshalClampsOutOfRangeValues(t *testing.T) {
	f := Marshal(DefaultFrameID, ActuationRequest{Acceleration: 1e6, Steering: -1e6, Valid: true})

	got, err := Unmarshal(f)
	assert.NoError(t, err)
	assert.Equal(t, float32(327.67), got.Acceleration)
	assert.Equal(t, float32(-327.68), got.Steering)
}

func TestUnmarshalRejectsShortFrame(t *testing.T) {
	_, err := Unmarshal(can.Frame{ID: DefaultFrameID, Length: 2})
	assert.Error(t, err)
}
