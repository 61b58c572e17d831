package gridbfs

import (
	"fmt"

	"github.com/katalvlaran/algoreplay/grid"
	"github.com/katalvlaran/algoreplay/trace"
)

// walker encapsulates the mutable simulation state shared by both
// generators. work is the only grid ever written; every Step gets a clone.
// results is append-only, so Steps share its prefix.
type walker[R any] struct {
	work      grid.Grid
	rec       *trace.Recorder[Step[R]]
	results   []R
	region    int
	elapsed   int
	remaining int
	all       []grid.Coord
	nbuf      []grid.Coord
}

func newWalker[R any](g grid.Grid, limit int) *walker[R] {
	return &walker[R]{
		work:      g.Clone(),
		rec:       trace.NewRecorder[Step[R]](limit),
		remaining: g.Count(grid.Open),
		all:       make([]grid.Coord, 0, 4),
		nbuf:      make([]grid.Coord, 0, 4),
	}
}

// emit snapshots the current state as a Step of the given kind.
func (w *walker[R]) emit(kind trace.Kind, outcome Outcome, frontier, changed []grid.Coord, format string, args ...any) {
	w.rec.Append(Step[R]{
		Meta:      w.rec.Meta(kind, format, args...),
		Grid:      w.work.Clone(),
		Frontier:  cloneCoords(frontier),
		Changed:   cloneCoords(changed),
		Region:    w.region,
		Elapsed:   w.elapsed,
		Remaining: w.remaining,
		Outcome:   outcome,
		Results:   w.results[:len(w.results):len(w.results)],
	})
}

// mark turns an Open cell into a Marked cell carrying label.
func (w *walker[R]) mark(c grid.Coord, label int) {
	w.work.Set(c, grid.Cell{State: grid.Marked, Label: label})
	w.remaining--
}

// openNeighbors returns the Open neighbors of c, N, E, S, W. The returned
// slice is reused by the next call.
func (w *walker[R]) openNeighbors(c grid.Coord) []grid.Coord {
	w.nbuf = w.nbuf[:0]
	w.all = w.work.Neighbors(w.all[:0], c)
	for _, n := range w.all {
		if w.work.At(n).State == grid.Open {
			w.nbuf = append(w.nbuf, n)
		}
	}
	return w.nbuf
}

func (w *walker[R]) finish() (*trace.Trace[Step[R]], error) {
	return w.rec.Trace()
}

func cloneCoords(cs []grid.Coord) []grid.Coord {
	if len(cs) == 0 {
		return nil
	}
	out := make([]grid.Coord, len(cs))
	copy(out, cs)
	return out
}

// requireStates rejects a pre-built grid holding states outside allowed.
func requireStates(g grid.Grid, allowed ...grid.CellState) error {
	for i, c := range g.Cells {
		ok := false
		for _, s := range allowed {
			if c.State == s {
				ok = true
				break
			}
		}
		if !ok {
			at := g.Coordinate(i)
			return fmt.Errorf("%w: %s at %s", ErrUnexpectedState, c.State, at)
		}
	}
	return nil
}

func cellWord(s grid.CellState, open, empty, marked string) string {
	switch s {
	case grid.Open:
		return open
	case grid.Marked:
		return marked
	default:
		return empty
	}
}
