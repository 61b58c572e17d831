// Package trace defines the record-then-replay contract shared by every
// algorithm animation in algoreplay.
//
// What:
//
//   - Snapshot: the minimal interface a Step must satisfy (sequence id, kind,
//     description, result count). Family packages embed Meta to get it.
//   - Recorder[S]: an append-only collector used by generators while the
//     algorithm runs. It assigns sequence ids and enforces the trace invariants
//     as each Step arrives.
//   - Trace[S]: the finished, immutable, non-empty sequence of Steps.
//
// Invariants (checked on Append and by Verify):
//
//   - steps[i].Sequence() == i, no gaps;
//   - ResultCount() never decreases;
//   - a finished Trace is never empty.
//
// Errors:
//
//   - ErrInvalidInput: user input rejected before any Step is produced
//     (malformed grids, duplicates, size ceiling exceeded).
//   - ErrContractViolation: a programming error in a generator or a caller,
//     e.g. binding an empty trace or appending an out-of-order Step. Generators
//     fail fast: Recorder.Append panics with an error wrapping it.
//
// Complexity: Append is amortised O(1); Verify is O(N).
package trace
