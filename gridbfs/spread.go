package gridbfs

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/grid"
	"github.com/katalvlaran/algoreplay/trace"
)

// Spread parses raw with grid.SpreadAlphabet ('0' empty, '1' fresh,
// '2' rotten) and records the simultaneous-spread trace.
func Spread(raw string, opts ...Option) (*trace.Trace[SpreadStep], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	g, err := grid.Parse(raw, grid.SpreadAlphabet)
	if err != nil {
		return nil, err
	}
	return spread(g, o)
}

// SpreadGrid records the simultaneous-spread trace for a pre-built grid.
// Marked cells are the initial sources. g is not modified.
func SpreadGrid(g grid.Grid, opts ...Option) (*trace.Trace[SpreadStep], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := grid.Validate(g); err != nil {
		return nil, err
	}
	return spread(g, o)
}

func spread(g grid.Grid, o Options) (*trace.Trace[SpreadStep], error) {
	// scan per cell + at most one round per fresh cell + terminal
	worst := g.Size() + g.Count(grid.Open) + 1
	if err := checkCeiling(g, o, worst); err != nil {
		return nil, err
	}

	w := newWalker[Round](g, worst)

	// Seeding scan: every source joins the frontier in row-major order.
	var frontier []grid.Coord
	for idx := 0; idx < g.Size(); idx++ {
		c := w.work.Coordinate(idx)
		cell := w.work.At(c)
		if cell.State == grid.Marked {
			frontier = append(frontier, c)
			w.emit(trace.KindScan, Running, []grid.Coord{c}, nil,
				"seed %s: source joins the frontier (%d so far)", c, len(frontier))
			continue
		}
		w.emit(trace.KindScan, Running, []grid.Coord{c}, nil,
			"seed %s: %s", c, cellWord(cell.State, "fresh", "empty", ""))
	}

	// Rounds: every frontier cell spreads at once. Cells marked this round
	// only spread next round.
	for len(frontier) > 0 && w.remaining > 0 {
		var next []grid.Coord
		for _, u := range frontier {
			for _, v := range w.openNeighbors(u) {
				w.mark(v, w.elapsed+1)
				next = append(next, v)
			}
		}
		if len(next) == 0 {
			break
		}
		w.elapsed++
		w.results = append(w.results, Round{Number: w.elapsed, Infected: len(next)})
		w.emit(trace.KindExpand, Running, frontier, next,
			"round %d: %d cell(s) reached, %d remaining", w.elapsed, len(next), w.remaining)
		frontier = next
	}

	if w.remaining == 0 {
		w.emit(trace.KindDone, Finished, nil, nil,
			"finished: every cell reached after %d round(s)", w.elapsed)
	} else {
		w.emit(trace.KindImpossible, Incomplete, nil, nil,
			"stopped after %d round(s): %d cell(s) can never be reached", w.elapsed, w.remaining)
	}

	tr, err := w.finish()
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("spread trace generated",
		zap.Int("rows", g.Rows), zap.Int("cols", g.Cols),
		zap.Int("rounds", w.elapsed), zap.Int("remaining", w.remaining),
		zap.Int("steps", tr.Len()))

	return tr, nil
}
