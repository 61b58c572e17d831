package trace

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every error produced by algoreplay wraps exactly one
// of them, so callers can branch with errors.Is.
var (
	// ErrInvalidInput marks input rejected at the API boundary.
	ErrInvalidInput = errors.New("trace: invalid input")

	// ErrContractViolation marks a broken invariant: an empty trace, a
	// non-monotonic sequence id, or retracted results.
	ErrContractViolation = errors.New("trace: contract violation")

	// ErrTraceTooLarge is returned when the estimated trace length exceeds
	// the configured step ceiling.
	ErrTraceTooLarge = fmt.Errorf("%w: trace exceeds step ceiling", ErrInvalidInput)
)

// Size ceilings shared by all generators.
const (
	// DefaultMaxSteps bounds a trace when the caller does not choose a limit.
	DefaultMaxSteps = 2048

	// HardStepCeiling is the largest limit any generator accepts.
	HardStepCeiling = 16384
)

// Kind labels the transition a Step records.
type Kind string

// Transition kinds used across algorithm families.
const (
	KindStart      Kind = "start"
	KindChoose     Kind = "choose"
	KindCollect    Kind = "collect"
	KindUndo       Kind = "undo"
	KindScan       Kind = "scan"
	KindFound      Kind = "found"
	KindExpand     Kind = "expand"
	KindRecord     Kind = "record"
	KindDone       Kind = "done"
	KindImpossible Kind = "impossible"
)

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Terminal reports whether k ends a trace.
func (k Kind) Terminal() bool { return k == KindDone || k == KindImpossible }

// Snapshot is implemented by every family Step.
type Snapshot interface {
	// Sequence returns the zero-based position of the Step in its trace.
	Sequence() int
	// StepKind returns the transition label.
	StepKind() Kind
	// Describe returns the human-readable explanation fixed at generation time.
	Describe() string
	// ResultCount returns len(resultsSoFar).
	ResultCount() int
}

// Meta holds the fields common to every Step. Embed it by value.
type Meta struct {
	Seq         int    `yaml:"seq"`
	Kind        Kind   `yaml:"kind"`
	Description string `yaml:"description"`
}

// Sequence implements Snapshot.
func (m Meta) Sequence() int { return m.Seq }

// StepKind implements Snapshot.
func (m Meta) StepKind() Kind { return m.Kind }

// Describe implements Snapshot.
func (m Meta) Describe() string { return m.Description }

// Violation builds an error wrapping ErrContractViolation.
func Violation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrContractViolation, fmt.Sprintf(format, args...))
}

// ClampSteps validates a requested step ceiling. Zero selects
// DefaultMaxSteps; negative values or values above HardStepCeiling are
// rejected with ErrInvalidInput.
func ClampSteps(n int) (int, error) {
	switch {
	case n == 0:
		return DefaultMaxSteps, nil
	case n < 0:
		return 0, fmt.Errorf("%w: max steps cannot be negative (%d)", ErrInvalidInput, n)
	case n > HardStepCeiling:
		return 0, fmt.Errorf("%w: max steps %d above hard ceiling %d", ErrInvalidInput, n, HardStepCeiling)
	default:
		return n, nil
	}
}
