package playback

import (
	"fmt"
	"time"

	"github.com/katalvlaran/algoreplay/trace"
)

// Default intervals.
const (
	DefaultShort = 120 * time.Millisecond
	DefaultLong  = 450 * time.Millisecond

	// MinInterval bounds how fast scaled pacing may get.
	MinInterval = 10 * time.Millisecond
)

// Speed factor bounds shared by configuration and interactive players.
const (
	MinSpeed = 0.25
	MaxSpeed = 16.0
)

// Pacing maps Step kinds to tick intervals.
type Pacing struct {
	// Short applies to bookkeeping steps.
	Short time.Duration
	// Long applies to state-changing steps.
	Long time.Duration
}

// DefaultPacing returns DefaultShort and DefaultLong.
func DefaultPacing() Pacing { return Pacing{Short: DefaultShort, Long: DefaultLong} }

// Interval returns how long the Step of kind k stays on screen.
func (p Pacing) Interval(k trace.Kind) time.Duration {
	switch k {
	case trace.KindScan, trace.KindRecord, trace.KindUndo, trace.KindStart:
		return p.Short
	default:
		return p.Long
	}
}

// Scaled returns p sped up by factor (2 = twice as fast), clamped at
// MinInterval. A non-positive factor returns p unchanged.
func (p Pacing) Scaled(factor float64) Pacing {
	if factor <= 0 {
		return p
	}
	scale := func(d time.Duration) time.Duration {
		v := time.Duration(float64(d) / factor)
		if v < MinInterval {
			return MinInterval
		}
		return v
	}
	return Pacing{Short: scale(p.Short), Long: scale(p.Long)}
}

// Validate checks 0 < Short <= Long.
func (p Pacing) Validate() error {
	if p.Short <= 0 || p.Long <= 0 {
		return fmt.Errorf("%w: intervals must be positive (short=%s, long=%s)", ErrOptionViolation, p.Short, p.Long)
	}
	if p.Short > p.Long {
		return fmt.Errorf("%w: short interval %s exceeds long interval %s", ErrOptionViolation, p.Short, p.Long)
	}
	return nil
}
