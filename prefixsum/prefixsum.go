// Package prefixsum records the hash-map scan that counts contiguous
// subarrays summing to k.
//
// The scan keeps a running prefix sum and a table from prefix value to the
// indices where it occurred (index -1 stands for the empty prefix). At each
// index it emits a `scan` Step, one `collect` Step per earlier occurrence of
// prefix-k (each one a subarray ending here), then a `record` Step adding the
// current prefix to the table.
package prefixsum

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/trace"
)

var (
	// ErrTooManyNumbers is returned for inputs longer than MaxLen.
	ErrTooManyNumbers = fmt.Errorf("%w: prefixsum: too many numbers", trace.ErrInvalidInput)
	// ErrValueOutOfRange is returned for |v| > MaxAbsValue.
	ErrValueOutOfRange = fmt.Errorf("%w: prefixsum: value out of range", trace.ErrInvalidInput)
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("%w: prefixsum: invalid option", trace.ErrInvalidInput)
)

const (
	MaxLen      = 64
	MaxAbsValue = 1_000_000
)

// Entry is one row of the prefix table.
type Entry struct {
	Prefix    int   `yaml:"prefix"`
	Positions []int `yaml:"positions,flow"`
}

// Subarray is an inclusive index range summing to k.
type Subarray struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Step is one snapshot of the scan.
type Step struct {
	trace.Meta `yaml:",inline"`

	// Index is the position being processed, -1 before the first number.
	Index  int `yaml:"index"`
	Prefix int `yaml:"prefix"`
	// Lookup is the prefix value searched for at this index (Prefix-k).
	Lookup int `yaml:"lookup"`
	// Table is the prefix table sorted by prefix value.
	Table   []Entry    `yaml:"table"`
	Results []Subarray `yaml:"results,flow"`
}

// ResultCount implements trace.Snapshot.
func (s Step) ResultCount() int { return len(s.Results) }

// Option configures Generate.
type Option func(*Options)

// Options holds the step ceiling and logger.
type Options struct {
	MaxSteps int
	Logger   *zap.Logger

	err error
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

type scanner struct {
	k       int
	rec     *trace.Recorder[Step]
	table   map[int][]int
	results []Subarray
}

// Generate records the scan of nums for target k.
func Generate(nums []int, k int, opts ...Option) (*trace.Trace[Step], error) {
	o := Options{MaxSteps: trace.DefaultMaxSteps, Logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(nums) > MaxLen {
		return nil, fmt.Errorf("%w: %d numbers, limit %d", ErrTooManyNumbers, len(nums), MaxLen)
	}
	for i, v := range nums {
		if v > MaxAbsValue || v < -MaxAbsValue {
			return nil, fmt.Errorf("%w: %d at index %d", ErrValueOutOfRange, v, i)
		}
	}
	if k < -MaxLen*MaxAbsValue || k > MaxLen*MaxAbsValue {
		return nil, fmt.Errorf("%w: k=%d", ErrValueOutOfRange, k)
	}

	n := countSteps(nums, k)
	if n > o.MaxSteps {
		return nil, fmt.Errorf("%w: %d steps, limit %d", trace.ErrTraceTooLarge, n, o.MaxSteps)
	}

	s := &scanner{k: k, rec: trace.NewRecorder[Step](n), table: map[int][]int{0: {-1}}}
	s.emit(trace.KindStart, -1, 0, 0, "empty prefix 0 recorded at index -1, target %d", k)

	prefix := 0
	for i, v := range nums {
		prefix += v
		want := prefix - k
		s.emit(trace.KindScan, i, prefix, want, "index %d: add %d, prefix %d, look up %d", i, v, prefix, want)
		for _, pos := range s.table[want] {
			s.results = append(s.results, Subarray{Start: pos + 1, End: i})
			s.emit(trace.KindCollect, i, prefix, want, "subarray [%d..%d] sums to %d", pos+1, i, k)
		}
		s.table[prefix] = append(s.table[prefix], i)
		s.emit(trace.KindRecord, i, prefix, want, "record prefix %d at index %d", prefix, i)
	}
	s.emit(trace.KindDone, len(nums)-1, prefix, prefix-k, "%d subarray(s) sum to %d", len(s.results), k)

	tr, err := s.rec.Trace()
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("prefix-sum trace generated",
		zap.Int("len", len(nums)), zap.Int("k", k),
		zap.Int("results", len(s.results)), zap.Int("steps", tr.Len()))

	return tr, nil
}

func (s *scanner) emit(kind trace.Kind, index, prefix, lookup int, format string, args ...any) {
	keys := make([]int, 0, len(s.table))
	for p := range s.table {
		keys = append(keys, p)
	}
	sort.Ints(keys)
	table := make([]Entry, len(keys))
	for i, p := range keys {
		table[i] = Entry{Prefix: p, Positions: append([]int(nil), s.table[p]...)}
	}
	s.rec.Append(Step{
		Meta:    s.rec.Meta(kind, format, args...),
		Index:   index,
		Prefix:  prefix,
		Lookup:  lookup,
		Table:   table,
		Results: append([]Subarray(nil), s.results...),
	})
}

// countSteps returns the exact trace length: start, per index a scan, a
// record and one collect per match, then done.
func countSteps(nums []int, k int) int {
	seen := map[int]int{0: 1}
	n, prefix := 2, 0
	for _, v := range nums {
		prefix += v
		n += 2 + seen[prefix-k]
		seen[prefix]++
	}
	return n
}
