package trace

import "iter"

// Trace is the finished, immutable record of one run. Its Steps, and every
// slice they reference, must be treated as read-only by all consumers:
// generators share never-rewritten storage between Steps, so writing through
// one Step can change others. Clone what you need to modify.
type Trace[S Snapshot] struct {
	steps []S
}

// Len returns the number of Steps. A nil Trace has length 0.
func (t *Trace[S]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

// At returns the Step at index i. It panics if i is out of range, like a
// slice index. The Step shares storage with the Trace and must not be
// written.
func (t *Trace[S]) At(i int) S { return t.steps[i] }

// First returns the opening Step.
func (t *Trace[S]) First() S { return t.steps[0] }

// Last returns the terminal Step.
func (t *Trace[S]) Last() S { return t.steps[len(t.steps)-1] }

// Steps returns a copy of the Step slice. The Steps themselves are not
// deep-copied.
func (t *Trace[S]) Steps() []S {
	out := make([]S, len(t.steps))
	copy(out, t.steps)
	return out
}

// All iterates over (index, Step) pairs in order.
func (t *Trace[S]) All() iter.Seq2[int, S] {
	return func(yield func(int, S) bool) {
		for i, s := range t.steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Count returns how many Steps carry kind k.
func (t *Trace[S]) Count(k Kind) int {
	n := 0
	for _, s := range t.steps {
		if s.StepKind() == k {
			n++
		}
	}
	return n
}

// Verify checks the trace invariants: non-empty, gap-free zero-based
// sequence ids and non-decreasing result counts.
// Returns an error wrapping ErrContractViolation on the first failure.
func Verify[S Snapshot](t *Trace[S]) error {
	if t.Len() == 0 {
		return Violation("empty trace")
	}
	prev := 0
	for i, s := range t.steps {
		if s.Sequence() != i {
			return Violation("step %d has sequence %d", i, s.Sequence())
		}
		if n := s.ResultCount(); n < prev {
			return Violation("step %d retracts results (%d < %d)", i, n, prev)
		}
		prev = s.ResultCount()
	}
	return nil
}
