package gamepad

import (
	"errors"
	"time"
)

// EventKind distinguishes the three record kinds of the joystick interface.
type EventKind uint8

const (
	KindAxis EventKind = iota
	KindButton
	KindInit
)

func (k EventKind) String() string {
	switch k {
	case KindAxis:
		return "axis"
	case KindButton:
		return "button"
	case KindInit:
		return "init"
	default:
		return "unknown"
	}
}

// Event is one raw input record. Value spans [MinAxisValue, MaxAxisValue]
// for axis events.
type Event struct {
	Kind  EventKind
	Axis  uint8
	Value int16
}

// ErrNoEvent is returned by ReadEvent when the device queue is drained.
var ErrNoEvent = errors.New("no event available")

// Device is a pollable, non-blocking source of raw input events. Readable
// waits at most timeout for data. ReadEvent returns ErrNoEvent once the
// queue is empty; any other error is unrecoverable.
type Device interface {
	Name() string
	Readable(timeout time.Duration) (bool, error)
	ReadEvent() (Event, error)
	Close() error
}
