//go:build linux

package gamepad

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Open picks the backend matching the device node: eventN nodes go through
// evdev, everything else through the legacy joystick interface.
func Open(path string, log *zap.Logger) (Device, error) {
	if strings.HasPrefix(filepath.Base(path), "event") {
		dev, err := OpenEvdev(path)
		if err != nil {
			return nil, err
		}
		log.Info("found controller",
			zap.String("name", dev.Name()),
			zap.String("device", path),
			zap.String("backend", "evdev"),
		)
		return dev, nil
	}

	dev, err := OpenJoystick(path)
	if err != nil {
		return nil, err
	}
	log.Info("found controller",
		zap.String("name", dev.Name()),
		zap.String("device", path),
		zap.Int("axes", dev.Axes()),
		zap.Int("buttons", dev.Buttons()),
	)
	return dev, nil
}
