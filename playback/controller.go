package playback

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/trace"
)

var (
	// ErrEmptyTrace is returned by Bind for a nil or empty trace.
	ErrEmptyTrace = fmt.Errorf("%w: playback: cannot bind an empty trace", trace.ErrContractViolation)
	// ErrOptionViolation is returned by New for invalid options.
	ErrOptionViolation = fmt.Errorf("%w: playback: invalid option", trace.ErrInvalidInput)
)

// State is the controller's coarse playback state.
type State int

const (
	// Idle: no trace bound.
	Idle State = iota
	// Ready: trace bound, paused before the last Step.
	Ready
	// Playing: advancing on ticks.
	Playing
	// Finished: paused on the last Step.
	Finished
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Option configures a Controller.
type Option func(*Options)

// Options holds controller settings.
type Options struct {
	Pacing Pacing
	Logger *zap.Logger

	err error
}

// WithPacing sets the tick intervals. Invalid pacing surfaces as
// ErrOptionViolation from New.
func WithPacing(p Pacing) Option {
	return func(o *Options) {
		if err := p.Validate(); err != nil {
			o.err = err
			return
		}
		o.Pacing = p
	}
}

// WithLogger installs a zap logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Controller replays one trace at a time.
type Controller[S trace.Snapshot] struct {
	tr      *trace.Trace[S]
	index   int
	running bool

	pacing    Pacing
	log       *zap.Logger
	onAdvance func(index int, s S)
}

// New returns an Idle controller.
func New[S trace.Snapshot](opts ...Option) (*Controller[S], error) {
	o := Options{Pacing: DefaultPacing(), Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Controller[S]{pacing: o.Pacing, log: o.Logger}, nil
}

// OnAdvance registers fn to run after every index change caused by Step,
// Tick or Reset. Passing nil removes the hook.
func (c *Controller[S]) OnAdvance(fn func(index int, s S)) { c.onAdvance = fn }

// Bind discards any previous trace and binds tr at index 0, paused.
// Returns ErrEmptyTrace if tr is nil or has no Steps.
func (c *Controller[S]) Bind(tr *trace.Trace[S]) error {
	if tr.Len() == 0 {
		return ErrEmptyTrace
	}
	c.tr, c.index, c.running = tr, 0, false
	c.log.Debug("trace bound", zap.Int("steps", tr.Len()))
	return nil
}

// Unbind returns the controller to Idle.
func (c *Controller[S]) Unbind() {
	c.tr, c.index, c.running = nil, 0, false
}

// Play starts playback. No-op while Idle or at the last index.
func (c *Controller[S]) Play() {
	if c.tr == nil || c.IsAtEnd() {
		return
	}
	if !c.running {
		c.running = true
		c.log.Debug("play", zap.Int("index", c.index))
	}
}

// Pause stops playback. Idempotent.
func (c *Controller[S]) Pause() {
	if c.running {
		c.running = false
		c.log.Debug("pause", zap.Int("index", c.index))
	}
}

// Toggle switches between Play and Pause.
func (c *Controller[S]) Toggle() {
	if c.running {
		c.Pause()
		return
	}
	c.Play()
}

// Step advances by exactly one Step, whether playing or paused. At the last
// index it only stops playback.
func (c *Controller[S]) Step() { c.advance() }

// Tick is called by the clock. It advances while playing and stops playback
// on reaching the last index. Ticks while paused are ignored.
func (c *Controller[S]) Tick() {
	if !c.running {
		return
	}
	c.advance()
}

// Reset returns to index 0 and pauses. The trace is untouched.
func (c *Controller[S]) Reset() {
	if c.tr == nil {
		return
	}
	moved := c.index != 0
	c.index, c.running = 0, false
	if moved {
		c.notify()
	}
}

func (c *Controller[S]) advance() {
	if c.tr == nil {
		return
	}
	if c.IsAtEnd() {
		c.running = false
		return
	}
	c.index++
	if c.IsAtEnd() && c.running {
		c.running = false
		c.log.Debug("playback finished", zap.Int("index", c.index))
	}
	c.notify()
}

func (c *Controller[S]) notify() {
	if c.onAdvance != nil {
		c.onAdvance(c.index, c.tr.At(c.index))
	}
}

// SetPacing replaces the tick intervals.
func (c *Controller[S]) SetPacing(p Pacing) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.pacing = p
	return nil
}

// Pacing returns the current tick intervals.
func (c *Controller[S]) Pacing() Pacing { return c.pacing }

// Current returns the Step at the current index; false while Idle. The Step
// shares storage with the bound Trace and must not be written.
func (c *Controller[S]) Current() (S, bool) {
	if c.tr == nil {
		var zero S
		return zero, false
	}
	return c.tr.At(c.index), true
}

// Trace returns the bound trace, or nil.
func (c *Controller[S]) Trace() *trace.Trace[S] { return c.tr }

// Index returns the current index (0 while Idle).
func (c *Controller[S]) Index() int { return c.index }

// Len returns the bound trace length (0 while Idle).
func (c *Controller[S]) Len() int { return c.tr.Len() }

// IsAtEnd reports whether the current index is the last one.
func (c *Controller[S]) IsAtEnd() bool { return c.tr != nil && c.index == c.tr.Len()-1 }

// IsPlaying reports whether the controller advances on ticks.
func (c *Controller[S]) IsPlaying() bool { return c.running }

// State returns the coarse playback state.
func (c *Controller[S]) State() State {
	switch {
	case c.tr == nil:
		return Idle
	case c.running:
		return Playing
	case c.IsAtEnd():
		return Finished
	default:
		return Ready
	}
}

// Interval returns how long to wait before the next Tick, based on the
// current Step's kind. Zero while Idle.
func (c *Controller[S]) Interval() time.Duration {
	s, ok := c.Current()
	if !ok {
		return 0
	}
	return c.pacing.Interval(s.StepKind())
}
