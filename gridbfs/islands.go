package gridbfs

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/algoreplay/grid"
	"github.com/katalvlaran/algoreplay/trace"
)

// Islands parses raw with grid.IslandAlphabet ('0' water, '1' land) and
// records the region-counting trace.
func Islands(raw string, opts ...Option) (*trace.Trace[IslandStep], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	g, err := grid.Parse(raw, grid.IslandAlphabet)
	if err != nil {
		return nil, err
	}
	return islands(g, o)
}

// IslandsGrid records the region-counting trace for a pre-built grid of
// Empty and Open cells. g is not modified.
func IslandsGrid(g grid.Grid, opts ...Option) (*trace.Trace[IslandStep], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := grid.Validate(g); err != nil {
		return nil, err
	}
	if err = requireStates(g, grid.Empty, grid.Open); err != nil {
		return nil, err
	}
	return islands(g, o)
}

func islands(g grid.Grid, o Options) (*trace.Trace[IslandStep], error) {
	// scan per cell + found/expand per land cell + done
	worst := g.Size() + g.Count(grid.Open) + 1
	if err := checkCeiling(g, o, worst); err != nil {
		return nil, err
	}

	w := newWalker[Region](g, worst)
	queue := make([]grid.Coord, 0, g.Count(grid.Open))
	for idx := 0; idx < g.Size(); idx++ {
		c := w.work.Coordinate(idx)
		cell := w.work.At(c)
		w.region = 0
		if cell.State == grid.Marked {
			w.emit(trace.KindScan, Running, []grid.Coord{c}, nil,
				"scan %s: land already in region %d", c, cell.Label)
			continue
		}
		w.emit(trace.KindScan, Running, []grid.Coord{c}, nil,
			"scan %s: %s", c, cellWord(cell.State, "unvisited land", "water", ""))
		if cell.State != grid.Open {
			continue
		}

		// New root: number the region, then flood it breadth-first.
		id := len(w.results) + 1
		w.region = id
		w.mark(c, id)
		w.results = append(w.results, Region{ID: id, Root: c})
		w.emit(trace.KindFound, Running, []grid.Coord{c}, []grid.Coord{c},
			"found region %d at %s", id, c)

		queue = append(queue[:0], c)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range w.openNeighbors(u) {
				w.mark(v, id)
				queue = append(queue, v)
				w.emit(trace.KindExpand, Running, []grid.Coord{u}, []grid.Coord{v},
					"region %d grows from %s to %s", id, u, v)
			}
		}
	}
	w.region = 0
	w.emit(trace.KindDone, Finished, nil, nil, "scan complete: %d region(s)", len(w.results))

	tr, err := w.finish()
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("islands trace generated",
		zap.Int("rows", g.Rows), zap.Int("cols", g.Cols),
		zap.Int("regions", len(w.results)), zap.Int("steps", tr.Len()))

	return tr, nil
}
