package gamepad

// Family selects one of the two supported controller generations. They report
// the same left stick but differ in which raw axis carries the right one.
type Family int

const (
	DualShock3 Family = iota
	DualShock4
)

func (f Family) String() string {
	switch f {
	case DualShock3:
		return "DualShock 3"
	case DualShock4:
		return "DualShock 4"
	default:
		return "Unknown"
	}
}

// Profile maps logical control roles to raw axis indices.
type Profile struct {
	Steering   uint8 // left analog stick, horizontal
	AccelBrake uint8 // right analog stick, vertical
}

var profiles = map[Family]Profile{
	DualShock3: {Steering: 0, AccelBrake: 4},
	DualShock4: {Steering: 0, AccelBrake: 5},
}

// ProfileFor returns the axis profile of the given controller family.
func ProfileFor(f Family) Profile {
	p, ok := profiles[f]
	if !ok {
		return profiles[DualShock3]
	}
	return p
}
