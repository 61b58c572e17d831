// Package gridbfs records breadth-first grid simulations as replayable traces.
//
// What:
//
//   - Islands: row-major scan plus queue-based flood fill. One `scan` Step per
//     scanned cell, one `found` Step per new region (numbered 1, 2, ... in scan
//     order), one `expand` Step per cell the flood reaches, then `done`.
//   - Spread: multi-source simultaneous spreading ("rotting oranges"). A
//     seeding scan emits one `scan` Step per cell, then every round in which
//     the frontier reaches at least one fresh cell emits one `expand` Step.
//     The trace ends with `done` when nothing fresh remains, or with a single
//     `impossible` Step carrying the residual count when some cells can never
//     be reached. Partial coverage is an outcome, not an error.
//
// Every Step holds a full private copy of the grid, the frontier and the
// changed cells, so any Step can be rendered on its own. Results are shared
// between Steps as prefixes of one append-only list.
//
// Size ceiling:
//
//	A grid is rejected before any Step exists when it has more than
//	MaxCells cells, when its worst-case trace length exceeds MaxSteps, or
//	when worst-case Steps × cells exceeds SnapshotBudget (64 MiB of grid
//	copies). Worst-case length is cells + open cells + 1, so a fully open
//	grid is accepted up to 1447 cells and a grid with no open cells up to
//	2047 cells.
//
// Determinism:
//
//	Scanning is row-major and neighbors are visited N, E, S, W, so the same
//	input always yields the same trace.
//
// Options:
//
//   - WithMaxCells(n):  reject grids with more than n cells (default 400).
//   - WithMaxSteps(n):  reject grids whose trace could exceed n Steps.
//   - WithLogger(l):    debug logging via zap.
//
// Errors:
//
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular, grid.ErrBlankRow,
//     grid.ErrInvalidSymbol from parsing (row/column in *grid.ParseError);
//     IslandsGrid and SpreadGrid return the first two from grid.Validate.
//   - ErrGridTooLarge, trace.ErrTraceTooLarge for the size ceiling.
//   - ErrUnexpectedState for a pre-built grid holding states the simulation
//     does not read.
//   - ErrOptionViolation for invalid options.
//
// All of them wrap trace.ErrInvalidInput and are returned before any Step
// is produced.
//
// Complexity: O(W×H) algorithm work; O(W×H) memory per Step, O((W×H)²)
// total, capped by SnapshotBudget.
package gridbfs
