package gamepad

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeDevice serves a scripted event queue and optionally fails hard once
// the queue is drained.
type fakeDevice struct {
	mu      sync.Mutex
	queue   []Event
	hardErr error
}

func (d *fakeDevice) Name() string { return "fake" }

func (d *fakeDevice) Readable(timeout time.Duration) (bool, error) {
	d.mu.Lock()
	ready := len(d.queue) > 0 || d.hardErr != nil
	d.mu.Unlock()
	if !ready {
		time.Sleep(timeout)
	}
	return ready, nil
}

func (d *fakeDevice) ReadEvent() (Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.queue) == 0 {
		if d.hardErr != nil {
			return Event{}, d.hardErr
		}
		return Event{}, ErrNoEvent
	}
	ev := d.queue[0]
	d.queue = d.queue[1:]
	return ev, nil
}

func (d *fakeDevice) Close() error { return nil }

var testRange = Range{AccelMin: 0, AccelMax: 50, DecelMin: 0, DecelMax: -10, SteeringMin: -10, SteeringMax: 10}

func runSampler(t *testing.T, dev Device) (*State, context.CancelFunc, <-chan error) {
	t.Helper()
	state := NewState()
	sampler := NewSampler(dev, state, testRange, ProfileFor(DualShock3), time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sampler.Run(ctx)
	}()
	return state, cancel, done
}

func TestSamplerLastValueWins(t *testing.T) {
	dev := &fakeDevice{queue: []Event{
		{Kind: KindAxis, Axis: 4, Value: -16384},
		{Kind: KindAxis, Axis: 4, Value: MinAxisValue},
	}}

	state, cancel, done := runSampler(t, dev)
	defer cancel()

	assert.Eventually(t, func() bool {
		return state.Snapshot().Acceleration == 50
	}, time.Second, time.Millisecond, "only the later event survives a drain cycle")

	cancel()
	assert.NoError(t, <-done)
}

func TestSamplerTrackedAxesAreIndependent(t *testing.T) {
	dev := &fakeDevice{queue: []Event{
		{Kind: KindAxis, Axis: 0, Value: MinAxisValue},
		{Kind: KindAxis, Axis: 4, Value: MinAxisValue},
	}}

	state, cancel, done := runSampler(t, dev)
	defer cancel()

	assert.Eventually(t, func() bool {
		a := state.Snapshot()
		return a.Steering == 10 && a.Acceleration == 50
	}, time.Second, time.Millisecond, "an accel event must not reset steering")

	cancel()
	assert.NoError(t, <-done)
}

func TestSamplerIgnoresButtonsInitAndUntrackedAxes(t *testing.T) {
	dev := &fakeDevice{queue: []Event{
		{Kind: KindAxis, Axis: 0, Value: MinAxisValue},
		{Kind: KindButton, Axis: 0, Value: 1},
		{Kind: KindInit, Axis: 0, Value: MaxAxisValue},
		{Kind: KindAxis, Axis: 2, Value: MaxAxisValue},
	}}

	state, cancel, done := runSampler(t, dev)
	defer cancel()

	assert.Eventually(t, func() bool {
		return state.Snapshot().Steering == 10
	}, time.Second, time.Millisecond)

	a := state.Snapshot()
	assert.Equal(t, float32(0), a.Acceleration)
	assert.True(t, a.Valid)

	cancel()
	assert.NoError(t, <-done)
}

func TestSamplerHardErrorInvalidatesAndStops(t *testing.T) {
	readErr := errors.New("no such device")
	dev := &fakeDevice{
		queue:   []Event{{Kind: KindAxis, Axis: 4, Value: MinAxisValue}},
		hardErr: readErr,
	}

	state, cancel, done := runSampler(t, dev)
	defer cancel()

	err := <-done
	assert.ErrorIs(t, err, readErr)

	a := state.Snapshot()
	assert.False(t, a.Valid, "hard error latches the error flag")
	assert.Equal(t, float32(50), a.Acceleration, "events before the error still apply")
}
