package gamepad

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultPollInterval bounds how long a single readability wait may take,
// which gives roughly 50 Hz input polling independent of the publish rate.
const DefaultPollInterval = 20 * time.Millisecond

// Sampler drains raw events from a Device and keeps the shared State current.
// It runs until the context is done or the device fails hard; a failed device
// is never reopened.
type Sampler struct {
	dev     Device
	state   *State
	rng     Range
	profile Profile
	poll    time.Duration
	log     *zap.Logger
}

func NewSampler(dev Device, state *State, rng Range, profile Profile, poll time.Duration, log *zap.Logger) *Sampler {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Sampler{
		dev:     dev,
		state:   state,
		rng:     rng,
		profile: profile,
		poll:    poll,
		log:     log,
	}
}

// Run samples the device until ctx is done or a hard read error occurs. On a
// hard error the shared state is invalidated before returning, and sampling
// stops permanently.
func (s *Sampler) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		readable, err := s.dev.Readable(s.poll)
		if err != nil {
			s.state.Invalidate()
			return fmt.Errorf("waiting for %s: %w", s.dev.Name(), err)
		}
		if !readable {
			continue
		}

		var hard error
		s.state.Update(func(a *Actuation) {
			for {
				ev, err := s.dev.ReadEvent()
				if errors.Is(err, ErrNoEvent) {
					return
				}
				if err != nil {
					a.Valid = false
					hard = err
					return
				}
				s.apply(ev, a)
			}
		})
		if hard != nil {
			return fmt.Errorf("reading %s: %w", s.dev.Name(), hard)
		}
	}
}

// apply folds one raw event into the shared record. Only the two tracked axes
// change anything, each overwriting its own output field; everything else is
// read purely to drain the queue.
func (s *Sampler) apply(ev Event, a *Actuation) {
	if ev.Kind != KindAxis {
		return
	}

	// not exclusive branches, both tracked roles may sit on distinct axes
	if ev.Axis == s.profile.Steering {
		a.Steering = s.rng.Steering(ev.Value)
		s.logSteering(ev.Value)
	}
	if ev.Axis == s.profile.AccelBrake {
		a.Acceleration = s.rng.Acceleration(ev.Value)
		s.logAcceleration(ev.Value)
	}
}

func (s *Sampler) logSteering(v int16) {
	percent := Percent(v)
	if percent > 49.95 && percent < 50.05 {
		s.log.Debug("going straight")
		return
	}
	direction := "right"
	deflection := 2.0*percent - 100.0
	if v < 0 {
		direction = "left"
		deflection = 100.0 - 2.0*percent
	}
	s.log.Debug("turning", zap.String("direction", direction), zap.Float32("percent", deflection))
}

func (s *Sampler) logAcceleration(v int16) {
	percent := Percent(v)
	if v < 0 {
		s.log.Debug("accelerating", zap.Float32("percent", 100.0-2.0*percent))
	} else {
		s.log.Debug("braking", zap.Float32("percent", 2.0*percent-100.0))
	}
}
