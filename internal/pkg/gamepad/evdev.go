//go:build linux

package gamepad

import (
	"fmt"
	"strings"
	"time"

	"github.com/holoplot/go-evdev"
)

// Controllers usually expose an evdev node next to the legacy jsN one. The
// evdev backend translates EV_ABS codes back to joystick axis numbering so
// the same profiles apply to both.
var absToAxis = map[evdev.EvCode]uint8{
	evdev.ABS_X:  0,
	evdev.ABS_Y:  1,
	evdev.ABS_Z:  2,
	evdev.ABS_RX: 3,
	evdev.ABS_RY: 4,
	evdev.ABS_RZ: 5,
}

// EvdevDevice adapts an event-interface node to the Device contract. A
// background goroutine owns the blocking ReadOne loop and feeds a channel;
// Readable and ReadEvent drain that channel.
type EvdevDevice struct {
	dev  *evdev.InputDevice
	name string
	abs  map[evdev.EvCode]evdev.AbsInfo

	events  chan Event
	pending *Event
	readErr error
}

// OpenEvdev opens an eventN node and starts reading from it.
func OpenEvdev(path string) (*EvdevDevice, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	name, err := dev.Name()
	if err != nil {
		name = "Unknown"
	}
	name = strings.Trim(name, "\x00")

	abs, err := dev.AbsInfos()
	if err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("querying axis ranges of %s: %w", path, err)
	}

	if err := dev.NonBlock(); err != nil {
		_ = dev.Close()
		return nil, fmt.Errorf("enabling non-blocking reads on %s: %w", path, err)
	}

	d := &EvdevDevice{
		dev:    dev,
		name:   name,
		abs:    abs,
		events: make(chan Event, 64),
	}
	go d.readLoop()

	return d, nil
}

func (d *EvdevDevice) readLoop() {
	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			d.readErr = err
			close(d.events)
			return
		}

		out, ok := d.translate(ev)
		if !ok {
			continue
		}
		d.events <- out
	}
}

func (d *EvdevDevice) translate(ev *evdev.InputEvent) (Event, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		axis, ok := absToAxis[ev.Code]
		if !ok {
			return Event{}, false
		}
		info := d.abs[ev.Code]
		return Event{
			Kind:  KindAxis,
			Axis:  axis,
			Value: rescaleAxis(ev.Value, info.Minimum, info.Maximum),
		}, true
	case evdev.EV_KEY:
		if ev.Value == 2 { // key repeat
			return Event{}, false
		}
		return Event{Kind: KindButton, Axis: uint8(ev.Code)}, true
	default:
		return Event{}, false
	}
}

// rescaleAxis stretches a device-specific axis range onto the 16-bit span
// the mapper expects.
func rescaleAxis(v, min, max int32) int16 {
	if max <= min {
		return 0
	}
	scaled := int64(v-min)*(MaxAxisValue-MinAxisValue)/int64(max-min) + MinAxisValue
	if scaled < MinAxisValue {
		scaled = MinAxisValue
	}
	if scaled > MaxAxisValue {
		scaled = MaxAxisValue
	}
	return int16(scaled)
}

func (d *EvdevDevice) Name() string { return d.name }

// Readable waits at most timeout for one event and stashes it for ReadEvent.
func (d *EvdevDevice) Readable(timeout time.Duration) (bool, error) {
	if d.pending != nil {
		return true, nil
	}

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case ev, ok := <-d.events:
		if !ok {
			return false, d.readErr
		}
		d.pending = &ev
		return true, nil
	case <-t.C:
		return false, nil
	}
}

func (d *EvdevDevice) ReadEvent() (Event, error) {
	if d.pending != nil {
		ev := *d.pending
		d.pending = nil
		return ev, nil
	}

	select {
	case ev, ok := <-d.events:
		if !ok {
			return Event{}, d.readErr
		}
		return ev, nil
	default:
		return Event{}, ErrNoEvent
	}
}

func (d *EvdevDevice) Close() error {
	return d.dev.Close()
}
