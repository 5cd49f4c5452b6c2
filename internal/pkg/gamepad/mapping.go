package gamepad

import "math"

// Raw axis values as reported by the kernel joystick interface.
const (
	MinAxisValue = -32768
	MaxAxisValue = 32767
)

// Range holds the caller-supplied physical output ranges. No ordering between
// min and max is enforced, the mapping stays linear either way.
type Range struct {
	AccelMin, AccelMax       float32
	DecelMin, DecelMax       float32
	SteeringMin, SteeringMax float32
}

// Percent normalizes a raw axis value over its whole span into [0, 100].
func Percent(v int16) float32 {
	return float32(int32(v)-MinAxisValue) / float32(MaxAxisValue-MinAxisValue) * 100.0
}

// Steering maps a raw steering-axis value into the configured steering range.
// Stick-right reports negative raw values, so the result is negated to keep
// positive steering meaning the configured positive direction.
func (r Range) Steering(v int16) float32 {
	percent := Percent(v)
	steering := percent/100.0*(r.SteeringMax-r.SteeringMin) + r.SteeringMin
	steering *= -1.0
	return Quantize(steering)
}

// Acceleration maps a raw accel/brake-axis value into the configured ranges.
// A pulled stick (negative raw value) accelerates, a pushed one brakes; the
// two branches scale over independently configured ranges, with DecelMin
// acting only as the offset span of the brake branch.
func (r Range) Acceleration(v int16) float32 {
	percent := Percent(v)

	var acceleration float32
	if v < 0 {
		acceleration = (100.0-2.0*percent)/100.0*(r.AccelMax-r.AccelMin) + r.AccelMin
	} else {
		acceleration = (2.0*percent - 100.0) / 100.0 * (r.DecelMax - r.DecelMin)
	}
	return Quantize(acceleration)
}

// Quantize rounds to the nearest 0.25 and snaps near-zero results to exactly
// zero so that "-0" never surfaces downstream.
func Quantize(x float32) float32 {
	x = float32(math.Round(float64(4.0*x))) / 4.0
	if x < 0.001 && x > -0.001 {
		x = 0
	}
	return x
}
