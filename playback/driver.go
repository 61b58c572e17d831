package playback

import (
	"context"
	"time"

	"github.com/katalvlaran/algoreplay/trace"
)

// Clock delivers a signal after a delay.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// RealClock is the wall clock.
type RealClock struct{}

// After implements Clock.
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Run ticks c on clk until c stops playing (end of trace or Pause from an
// OnAdvance hook) or ctx is done. On cancellation it pauses c and returns
// ctx.Err(). A nil clk selects RealClock. Run never starts goroutines.
func Run[S trace.Snapshot](ctx context.Context, c *Controller[S], clk Clock) error {
	if clk == nil {
		clk = RealClock{}
	}
	for c.IsPlaying() {
		select {
		case <-ctx.Done():
			c.Pause()
			return ctx.Err()
		case <-clk.After(c.Interval()):
			c.Tick()
		}
	}
	return nil
}
