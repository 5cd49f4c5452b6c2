//go:build linux

package gamepad

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// linux/joystick.h
const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80

	jsiocgaxes    = 0x80016a11 // _IOR('j', 0x11, __u8)
	jsiocgbuttons = 0x80016a12 // _IOR('j', 0x12, __u8)
	jsiocgname    = 0x80006a13 // _IOC(_IOC_READ, 'j', 0x13, len), len in bits 16..29

	jsEventSize = 8
)

// JoystickDevice reads the legacy /dev/input/jsN interface with non-blocking
// reads and select-based readability waits.
type JoystickDevice struct {
	fd   int
	path string
	name string

	axes    int
	buttons int
}

// OpenJoystick opens a jsN node, queries its capabilities and switches the
// descriptor to non-blocking reads.
func OpenJoystick(path string) (*JoystickDevice, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	d := &JoystickDevice{fd: fd, path: path}

	var count uint8
	if err := ioctl(fd, jsiocgaxes, unsafe.Pointer(&count)); err == nil {
		d.axes = int(count)
	}
	if err := ioctl(fd, jsiocgbuttons, unsafe.Pointer(&count)); err == nil {
		d.buttons = int(count)
	}

	var name [80]byte
	req := uint(jsiocgname) | uint(len(name))<<16
	if err := ioctl(fd, req, unsafe.Pointer(&name[0])); err != nil {
		d.name = "Unknown"
	} else {
		d.name = strings.TrimRight(string(name[:]), "\x00")
	}

	return d, nil
}

func ioctl(fd int, req uint, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(req), uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

func (d *JoystickDevice) Name() string { return d.name }

func (d *JoystickDevice) Axes() int { return d.axes }

func (d *JoystickDevice) Buttons() int { return d.buttons }

// Readable waits at most timeout for the descriptor to become readable.
func (d *JoystickDevice) Readable(timeout time.Duration) (bool, error) {
	var set unix.FdSet
	set.Zero()
	set.Set(d.fd)

	// the timeval must be rebuilt on every call, select may modify it
	tv := unix.NsecToTimeval(timeout.Nanoseconds())

	n, err := unix.Select(d.fd+1, &set, nil, nil, &tv)
	if err != nil {
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0 && set.IsSet(d.fd), nil
}

// ReadEvent reads one 8-byte js_event record. ErrNoEvent signals a drained
// queue, every other failure is a hard device error.
func (d *JoystickDevice) ReadEvent() (Event, error) {
	var buf [jsEventSize]byte
	n, err := unix.Read(d.fd, buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return Event{}, ErrNoEvent
		}
		return Event{}, err
	}
	if n < jsEventSize {
		return Event{}, fmt.Errorf("short joystick event read: %d bytes", n)
	}
	return parseJoystickEvent(buf), nil
}

// parseJoystickEvent decodes struct js_event { __u32 time; __s16 value;
// __u8 type; __u8 number; }.
func parseJoystickEvent(buf [jsEventSize]byte) Event {
	value := int16(binary.LittleEndian.Uint16(buf[4:6]))
	typ := buf[6]
	number := buf[7]

	var kind EventKind
	switch {
	case typ&jsEventInit != 0:
		kind = KindInit
	case typ&jsEventAxis != 0:
		kind = KindAxis
	default:
		kind = KindButton
	}

	return Event{Kind: kind, Axis: number, Value: value}
}

func (d *JoystickDevice) Close() error {
	return unix.Close(d.fd)
}
