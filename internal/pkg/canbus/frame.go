package canbus

import (
	"fmt"

	"go.einride.tech/can"
)

// DefaultFrameID is the actuation request frame identifier unless the caller
// configures another one.
const DefaultFrameID = 0x4A1

const actuationDLC = 5

// ActuationRequest is the published actuation command.
type ActuationRequest struct {
	Acceleration float32
	Steering     float32
	Valid        bool
}

var (
	sigAcceleration = Signal{Name: "acceleration", Start: 0, Length: 16, Signed: true, Factor: 0.01, Min: -327.68, Max: 327.67}
	sigSteering     = Signal{Name: "steering", Start: 16, Length: 16, Signed: true, Factor: 0.01, Min: -327.68, Max: 327.67}
	sigValid        = Signal{Name: "is_valid", Start: 32, Length: 1, Factor: 1, Max: 1}
)

// Marshal packs an actuation request into a frame with the given identifier.
func Marshal(id uint32, ar ActuationRequest) can.Frame {
	var payload uint64
	payload = sigAcceleration.pack(payload, float64(ar.Acceleration))
	payload = sigSteering.pack(payload, float64(ar.Steering))

	var valid float64
	if ar.Valid {
		valid = 1
	}
	payload = sigValid.pack(payload, valid)

	f := can.Frame{ID: id, Length: actuationDLC}
	for i := 0; i < actuationDLC; i++ {
		f.Data[i] = byte(payload >> (8 * i))
	}
	return f
}

// Unmarshal decodes a frame produced by Marshal.
func Unmarshal(f can.Frame) (ActuationRequest, error) {
	if f.Length < actuationDLC {
		return ActuationRequest{}, fmt.Errorf("actuation frame expects %d data bytes, got %d", actuationDLC, f.Length)
	}

	var payload uint64
	for i := 0; i < actuationDLC; i++ {
		payload |= uint64(f.Data[i]) << (8 * i)
	}

	return ActuationRequest{
		Acceleration: float32(sigAcceleration.unpack(payload)),
		Steering:     float32(sigSteering.unpack(payload)),
		Valid:        sigValid.unpack(payload) != 0,
	}, nil
}
