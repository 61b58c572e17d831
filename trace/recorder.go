package trace

import "fmt"

// Recorder collects Steps while a generator runs. It is owned by exactly one
// generator call and is not safe for concurrent use.
type Recorder[S Snapshot] struct {
	steps   []S
	limit   int
	results int
}

// NewRecorder returns a Recorder that refuses to grow beyond limit Steps.
// Generators size-check their input first, so hitting the limit is a
// contract violation rather than an input error.
func NewRecorder[S Snapshot](limit int) *Recorder[S] {
	capHint := limit
	if capHint > 256 {
		capHint = 256
	}
	return &Recorder[S]{steps: make([]S, 0, capHint), limit: limit}
}

// Next returns the sequence id the next appended Step must carry.
func (r *Recorder[S]) Next() int { return len(r.steps) }

// Len returns the number of recorded Steps.
func (r *Recorder[S]) Len() int { return len(r.steps) }

// Meta builds the common header for the next Step.
func (r *Recorder[S]) Meta(kind Kind, format string, args ...any) Meta {
	return Meta{Seq: r.Next(), Kind: kind, Description: fmt.Sprintf(format, args...)}
}

// Append records s. It panics with an error wrapping ErrContractViolation if
// s is out of sequence, retracts results, or exceeds the recorder limit.
func (r *Recorder[S]) Append(s S) {
	if got, want := s.Sequence(), len(r.steps); got != want {
		panic(Violation("step sequence %d, want %d", got, want))
	}
	if n := s.ResultCount(); n < r.results {
		panic(Violation("step %d retracts results (%d < %d)", s.Sequence(), n, r.results))
	}
	if r.limit > 0 && len(r.steps) >= r.limit {
		panic(Violation("step %d exceeds recorder limit %d", s.Sequence(), r.limit))
	}
	r.results = s.ResultCount()
	r.steps = append(r.steps, s)
}

// Trace freezes the recorded Steps. The Recorder must not be used afterwards.
// An empty recording is a contract violation.
func (r *Recorder[S]) Trace() (*Trace[S], error) {
	if len(r.steps) == 0 {
		return nil, Violation("generator produced an empty trace")
	}
	steps := r.steps
	r.steps = nil

	return &Trace[S]{steps: steps}, nil
}
