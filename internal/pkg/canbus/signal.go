package canbus

import "math"

// Signal describes one little-endian signal inside a frame payload, scaled
// by factor and offset between raw and physical representation.
type Signal struct {
	Name     string
	Start    int
	Length   int
	Signed   bool
	Factor   float64
	Offset   float64
	Min, Max float64
}

func (s Signal) pack(payload uint64, phys float64) uint64 {
	phys = clamp(phys, s.Min, s.Max)

	raw := int64(math.Round((phys - s.Offset) / s.Factor))
	raw = clampRaw(raw, s.Length, s.Signed)

	return setBits(payload, s.Start, s.Length, rawToUnsigned(raw, s.Length))
}

func (s Signal) unpack(payload uint64) float64 {
	raw := unsignedToRaw(getBits(payload, s.Start, s.Length), s.Length, s.Signed)
	return float64(raw)*s.Factor + s.Offset
}

func getBits(payload uint64, start, length int) uint64 {
	mask := uint64(1)<<length - 1
	return (payload >> start) & mask
}

func setBits(payload uint64, start, length int, value uint64) uint64 {
	mask := uint64(1)<<length - 1
	payload &^= mask << start
	payload |= (value & mask) << start
	return payload
}

func unsignedToRaw(u uint64, length int, signed bool) int64 {
	if !signed || u&(1<<(length-1)) == 0 {
		return int64(u)
	}
	mask := uint64(1)<<length - 1
	return -int64((^u + 1) & mask)
}

func rawToUnsigned(raw int64, length int) uint64 {
	if raw >= 0 {
		return uint64(raw)
	}
	mask := uint64(1)<<length - 1
	return (^uint64(-raw) + 1) & mask
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampRaw(raw int64, length int, signed bool) int64 {
	if !signed {
		max := int64(1)<<length - 1
		if raw < 0 {
			return 0
		}
		if raw > max {
			return max
		}
		return raw
	}
	min := -int64(1) << (length - 1)
	max := int64(1)<<(length-1) - 1
	if raw < min {
		return min
	}
	if raw > max {
		return max
	}
	return raw
}
