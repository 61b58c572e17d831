// Package playback replays a recorded trace under user control.
//
// What:
//
//   - Controller[S]: a small state machine over one bound trace.
//     Idle (nothing bound) → Ready (index 0, paused) → Playing → Ready or
//     Finished (at the last index). It owns its index and running flag and
//     only reads the trace, so several controllers may replay the same trace
//     independently.
//   - Pacing: the tick interval is a function of the current Step's kind.
//     Bookkeeping kinds (scan, record, undo, start) use the Short interval,
//     state-changing kinds (choose, collect, found, expand, done, impossible)
//     the Long one.
//   - Run: a clock loop that calls Tick after each interval while the
//     controller is playing. It runs on the caller's goroutine.
//
// Operations never fail for out-of-range use: Step and Tick at the last
// index are no-ops that stop playback; calls while Idle do nothing. Binding a
// nil or empty trace is the only rejected input (ErrEmptyTrace, wrapping
// trace.ErrContractViolation).
//
// A Controller is not safe for concurrent use; give each view its own.
package playback
