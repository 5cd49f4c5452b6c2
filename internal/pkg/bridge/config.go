package bridge

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gethiox/padbridge/internal/pkg/gamepad"
	"github.com/go-ini/ini"
)

// Config is the immutable process configuration, assembled once at startup
// and passed by reference into the sampler and the publish loop.
type Config struct {
	Device string
	Freq   float64
	Range  gamepad.Range
	Family gamepad.Family

	Interface string
	FrameID   uint32

	PollInterval time.Duration
	Verbose      bool
}

// LoadFile overlays optional bridge defaults from an ini file:
//
//	[input]
//	poll_rate = 50      ; readability polls per second
//
//	[can]
//	frame_id = 0x4A1
func LoadFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	input := cfg.Section("input")
	if key, err := input.GetKey("poll_rate"); err == nil {
		rate, err := key.Int()
		if err != nil || rate <= 0 {
			return fmt.Errorf("invalid poll_rate %q", key.String())
		}
		c.PollInterval = time.Second / time.Duration(rate)
	}

	canSection := cfg.Section("can")
	if key, err := canSection.GetKey("frame_id"); err == nil {
		id, err := strconv.ParseUint(key.String(), 0, 32)
		if err != nil {
			return fmt.Errorf("invalid frame_id %q", key.String())
		}
		c.FrameID = uint32(id)
	}

	return nil
}
