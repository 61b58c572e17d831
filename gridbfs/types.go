package gridbfs

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/grid"
	"github.com/katalvlaran/algoreplay/trace"
)

// Sentinel errors.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: gridbfs: invalid option", trace.ErrInvalidInput)
	// ErrGridTooLarge is returned when a grid exceeds MaxCells. It is the
	// same error grid.Parse returns for text beyond grid.CellCeiling.
	ErrGridTooLarge = grid.ErrTooLarge
	// ErrUnexpectedState is returned for a pre-built grid with cells in a
	// state the simulation does not accept.
	ErrUnexpectedState = fmt.Errorf("%w: gridbfs: unexpected cell state", trace.ErrInvalidInput)
)

const (
	// DefaultMaxCells bounds the grid size when no option is given.
	DefaultMaxCells = 400
	// CellCeiling is the largest MaxCells accepted.
	CellCeiling = grid.CellCeiling
	// SnapshotBudget bounds worst-case Steps × cells, the number of grid
	// cells a trace may hold across all its snapshots. At 16 bytes per
	// cell that caps grid memory at 64 MiB.
	SnapshotBudget = 1 << 22
)

// Outcome summarises where a simulation stands at a Step.
type Outcome string

const (
	// Running marks every non-terminal Step.
	Running Outcome = "running"
	// Finished marks a terminal Step where every reachable cell was reached.
	Finished Outcome = "finished"
	// Incomplete marks a terminal Step with unreachable cells left over.
	Incomplete Outcome = "incomplete"
)

// Region is one connected land region, numbered in scan order from 1.
type Region struct {
	ID   int        `yaml:"id"`
	Root grid.Coord `yaml:"root"`
}

// Round is one completed spreading round.
type Round struct {
	Number   int `yaml:"number"`
	Infected int `yaml:"infected"`
}

// Step is one grid snapshot. R is the result type: Region or Round.
type Step[R any] struct {
	trace.Meta `yaml:",inline"`

	// Grid is a full copy of every cell at this instant.
	Grid grid.Grid `yaml:"grid"`
	// Frontier holds the cells active this tick.
	Frontier []grid.Coord `yaml:"frontier,flow"`
	// Changed holds the cells whose state changed this tick.
	Changed []grid.Coord `yaml:"changed,flow"`
	// Region is the region being filled (Islands) or 0.
	Region int `yaml:"region,omitempty"`
	// Elapsed counts completed spreading rounds (Spread).
	Elapsed int `yaml:"elapsed"`
	// Remaining counts Open cells not yet reached.
	Remaining int     `yaml:"remaining"`
	Outcome   Outcome `yaml:"outcome"`
	// Results is the accumulated result list as of this Step.
	Results []R `yaml:"results"`
}

// ResultCount implements trace.Snapshot.
func (s Step[R]) ResultCount() int { return len(s.Results) }

// IslandStep is a Step of the Islands simulation.
type IslandStep = Step[Region]

// SpreadStep is a Step of the Spread simulation.
type SpreadStep = Step[Round]

// Option configures a generator via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when the generator runs.
type Option func(*Options)

// Options holds generator limits and the logger.
type Options struct {
	// MaxCells bounds Rows×Cols.
	MaxCells int
	// MaxSteps bounds the trace length.
	MaxSteps int
	// Logger receives debug events. Never nil after DefaultOptions.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns DefaultMaxCells, trace.DefaultMaxSteps and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxCells: DefaultMaxCells,
		MaxSteps: trace.DefaultMaxSteps,
		Logger:   zap.NewNop(),
	}
}

// WithMaxCells sets the cell ceiling.
//
//	0 < n <= CellCeiling: use n
//	otherwise:            ErrOptionViolation
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n <= 0 || n > CellCeiling {
			o.err = fmt.Errorf("%w: MaxCells must be in [1,%d] (%d)", ErrOptionViolation, CellCeiling, n)
			return
		}
		o.MaxCells = n
	}
}

// WithMaxSteps sets the step ceiling; 0 selects trace.DefaultMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		v, err := trace.ClampSteps(n)
		if err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.MaxSteps = v
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

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// checkCeiling validates g against the options before any Step exists.
// worstSteps is the generator's upper bound on trace length for g.
func checkCeiling(g grid.Grid, o Options, worstSteps int) error {
	if g.Size() > o.MaxCells {
		return fmt.Errorf("%w: %d×%d = %d cells, limit %d", ErrGridTooLarge, g.Rows, g.Cols, g.Size(), o.MaxCells)
	}
	if worstSteps > o.MaxSteps {
		return fmt.Errorf("%w: up to %d steps, limit %d", trace.ErrTraceTooLarge, worstSteps, o.MaxSteps)
	}
	if worstSteps*g.Size() > SnapshotBudget {
		return fmt.Errorf("%w: up to %d steps of %d cells, snapshot budget %d cells",
			trace.ErrTraceTooLarge, worstSteps, g.Size(), SnapshotBudget)
	}
	return nil
}

// VerifyDimensions checks that every grid snapshot in tr has the shape of
// the first one.
func VerifyDimensions[R any](tr *trace.Trace[Step[R]]) error {
	if err := trace.Verify(tr); err != nil {
		return err
	}
	first := tr.First().Grid
	for i, s := range tr.All() {
		if !s.Grid.SameShape(first) {
			return trace.Violation("step %d grid is %d×%d, want %d×%d", i, s.Grid.Rows, s.Grid.Cols, first.Rows, first.Cols)
		}
	}
	return nil
}
