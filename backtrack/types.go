package backtrack

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/trace"
)

// Sentinel errors for problem construction and generation.
var (
	// ErrNilProblem is returned when Generate receives a nil Problem.
	ErrNilProblem = fmt.Errorf("%w: backtrack: problem is nil", trace.ErrInvalidInput)
	// ErrDuplicateChoice is returned when a choice appears twice.
	ErrDuplicateChoice = fmt.Errorf("%w: backtrack: duplicate choice", trace.ErrInvalidInput)
	// ErrInvalidChoice is returned for an empty choice label.
	ErrInvalidChoice = fmt.Errorf("%w: backtrack: invalid choice", trace.ErrInvalidInput)
	// ErrTooManyChoices is returned when the input exceeds MaxChoices.
	ErrTooManyChoices = fmt.Errorf("%w: backtrack: too many choices", trace.ErrInvalidInput)
	// ErrPairsOutOfRange is returned for a pair count outside [0, MaxPairs].
	ErrPairsOutOfRange = fmt.Errorf("%w: backtrack: pair count out of range", trace.ErrInvalidInput)
	// ErrInvalidDigit is returned for a digit with no keypad letters.
	ErrInvalidDigit = fmt.Errorf("%w: backtrack: invalid digit", trace.ErrInvalidInput)
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: backtrack: invalid option", trace.ErrInvalidInput)
)

// Input bounds enforced by the problem constructors.
const (
	MaxChoices = 12
	MaxPairs   = 10
	MaxDigits  = 8
)

// NodeStatus is the state of a tree node at one instant.
type NodeStatus string

const (
	// Active nodes lie on the current path.
	Active NodeStatus = "active"
	// Backtracked nodes have been fully explored and left.
	Backtracked NodeStatus = "backtracked"
)

// Node is one vertex of the explored call tree. Node 0 is the root; Parent
// is -1 for the root. A Node never changes after it is created; its state at
// a given Step comes from Step.Status and Step.Collected.
type Node struct {
	ID     int    `yaml:"id"`
	Parent int    `yaml:"parent"`
	Depth  int    `yaml:"depth"`
	Label  string `yaml:"label"`
	// Path is the full choice sequence from the root.
	Path []string `yaml:"path,flow"`
	// CollectedAt is the sequence number of the Step that collects this
	// node's path, or -1 when the path is not a result.
	CollectedAt int `yaml:"collected_at"`
}

// Result is one collected path.
type Result struct {
	Path []string `yaml:"path,flow"`
	Text string   `yaml:"text"`
}

// Step is one snapshot of a backtracking search.
type Step struct {
	trace.Meta `yaml:",inline"`

	// Path is the choice sequence at this instant.
	Path []string `yaml:"path,flow"`
	// Focus is the id of the node the Step concerns.
	Focus int `yaml:"focus"`
	// Tree holds every node discovered so far, indexed by ID. It is a prefix
	// of one node list shared by all Steps of the trace.
	Tree []Node `yaml:"tree"`
	// Active lists the node ids on the current path, root first. Empty on
	// the final Step.
	Active []int `yaml:"active,flow"`
	// Results is the accumulated result list as of this Step, a prefix of
	// one list shared by all Steps.
	Results []Result `yaml:"results"`
}

// ResultCount implements trace.Snapshot.
func (s Step) ResultCount() int { return len(s.Results) }

// Status returns the state of node id at this Step: Active while it lies on
// the current path, Backtracked once explored and left.
func (s Step) Status(id int) NodeStatus {
	d := s.Tree[id].Depth
	if d < len(s.Active) && s.Active[d] == id {
		return Active
	}
	return Backtracked
}

// Collected reports whether node id's path is among Results at this Step.
func (s Step) Collected(id int) bool {
	at := s.Tree[id].CollectedAt
	return at >= 0 && at <= s.Seq
}

// Problem describes a search space for Generate. Implementations must be
// deterministic and must not retain or modify the path slices they receive.
type Problem interface {
	// Name identifies the problem in logs and descriptions.
	Name() string
	// Branches lists the choices available after path, in visiting order.
	Branches(path []string) []string
	// Accept reports whether path is a result to collect.
	Accept(path []string) bool
	// Format renders path for descriptions and Result.Text.
	Format(path []string) string
}

// Option configures Generate.
type Option func(*Options)

// Options holds the step ceiling and logger.
type Options struct {
	MaxSteps int
	Logger   *zap.Logger

	err error
}

// DefaultOptions returns trace.DefaultMaxSteps and a no-op logger.
func DefaultOptions() Options {
	return Options{MaxSteps: trace.DefaultMaxSteps, Logger: zap.NewNop()}
}

// WithMaxSteps sets the step ceiling; 0 selects trace.DefaultMaxSteps.
// Negative values or values above trace.HardStepCeiling are violations.
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
