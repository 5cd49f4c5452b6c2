package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/gethiox/padbridge/internal/pkg/canbus"
	"github.com/gethiox/padbridge/internal/pkg/gamepad"
	"go.uber.org/zap"
)

// Publisher is the transport side of the bridge, satisfied by canbus.Transport.
type Publisher interface {
	Send(ctx context.Context, ar canbus.ActuationRequest) error
}

// Bridge runs the fixed-frequency publish loop over the shared actuation
// state and owns the final neutral command on the way out.
type Bridge struct {
	state *gamepad.State
	pub   Publisher
	freq  float64
	log   *zap.Logger
}

func New(state *gamepad.State, pub Publisher, freq float64, log *zap.Logger) (*Bridge, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("publish frequency must be positive, got %v", freq)
	}
	return &Bridge{state: state, pub: pub, freq: freq, log: log}, nil
}

// Run publishes the current state at the configured frequency until the
// context is done or the state turns invalid. The first invalid tick is
// still published, then the loop stops. Exactly one neutral command follows,
// regardless of why the loop stopped.
func (b *Bridge) Run(ctx context.Context) error {
	interval := time.Duration(float64(time.Second) / b.freq)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			a := b.state.Snapshot()
			ar := canbus.ActuationRequest{
				Acceleration: a.Acceleration,
				Steering:     a.Steering,
				Valid:        a.Valid,
			}
			if err := b.pub.Send(ctx, ar); err != nil {
				b.log.Warn("publish failed", zap.Error(err))
			}
			if !a.Valid {
				b.log.Warn("input sampling failed, stopping publish loop")
				break loop
			}
		}
	}

	// The neutral command must go out even when the context is already
	// canceled, hence the fresh context.
	neutral := canbus.ActuationRequest{Valid: true}
	if err := b.pub.Send(context.Background(), neutral); err != nil {
		return fmt.Errorf("sending neutral command: %w", err)
	}
	b.log.Info("neutral command sent")
	return nil
}
