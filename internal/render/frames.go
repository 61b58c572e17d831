package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoreplay/backtrack"
	"github.com/katalvlaran/algoreplay/grid"
	"github.com/katalvlaran/algoreplay/gridbfs"
	"github.com/katalvlaran/algoreplay/prefixsum"
)

// Backtrack draws the explored tree in pre-order, one node per line, then
// the current path and the results so far.
func (r Renderer) Backtrack(s backtrack.Step) string {
	var b strings.Builder
	for _, n := range s.Tree {
		label := n.Label
		if n.Parent < 0 {
			label = "root"
		}
		line := strings.Repeat("  ", n.Depth) + label
		if s.Collected(n.ID) {
			line += " *"
		}
		switch {
		case n.ID == s.Focus:
			line = r.Palette.Focus.Render(line)
		case s.Status(n.ID) == backtrack.Backtracked:
			line = r.Palette.Dim.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "path: [%s]\n", strings.Join(s.Path, ","))
	texts := make([]string, len(s.Results))
	for i, res := range s.Results {
		texts[i] = res.Text
	}
	b.WriteString("results: " + r.Palette.Result.Render(strings.Join(texts, " ")))
	return b.String()
}

// Islands draws the grid with each visited cell showing its region number.
func (r Renderer) Islands(s gridbfs.IslandStep) string {
	body := r.grid(s.Grid, s.Frontier, s.Changed, func(c grid.Cell) string {
		switch c.State {
		case grid.Open:
			return "#"
		case grid.Marked:
			return regionGlyph(c.Label)
		default:
			return "."
		}
	})
	return body + fmt.Sprintf("\nregions: %d", len(s.Results))
}

// Spread draws the grid with fresh cells as 'o' and reached cells as 'x'.
func (r Renderer) Spread(s gridbfs.SpreadStep) string {
	body := r.grid(s.Grid, s.Frontier, s.Changed, func(c grid.Cell) string {
		switch c.State {
		case grid.Open:
			return "o"
		case grid.Marked:
			return "x"
		default:
			return "."
		}
	})
	return body + fmt.Sprintf("\nelapsed: %d  remaining: %d  outcome: %s", s.Elapsed, s.Remaining, s.Outcome)
}

// Subarray draws the running prefix, the prefix table and the matches.
func (r Renderer) Subarray(s prefixsum.Step) string {
	var b strings.Builder
	if s.Index >= 0 {
		fmt.Fprintf(&b, "index: %d  prefix: %d  lookup: %d\n", s.Index, s.Prefix, s.Lookup)
	} else {
		fmt.Fprintf(&b, "prefix: %d\n", s.Prefix)
	}
	for _, e := range s.Table {
		line := fmt.Sprintf("%6d -> %v", e.Prefix, e.Positions)
		if s.Index >= 0 && e.Prefix == s.Lookup {
			line = r.Palette.Focus.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	ranges := make([]string, len(s.Results))
	for i, sa := range s.Results {
		ranges[i] = fmt.Sprintf("[%d..%d]", sa.Start, sa.End)
	}
	b.WriteString("results: " + r.Palette.Result.Render(strings.Join(ranges, " ")))
	return b.String()
}

func (r Renderer) grid(g grid.Grid, frontier, changed []grid.Coord, glyph func(grid.Cell) string) string {
	style := make(map[grid.Coord]int, len(frontier)+len(changed))
	for _, c := range frontier {
		style[c] = 1
	}
	for _, c := range changed {
		style[c] = 2
	}

	rows := make([]string, g.Rows)
	cells := make([]string, g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			c := grid.Coord{Row: row, Col: col}
			cell := g.At(c)
			text := glyph(cell)
			switch {
			case style[c] == 2:
				text = r.Palette.Changed.Render(text)
			case style[c] == 1:
				text = r.Palette.Focus.Render(text)
			case cell.State == grid.Empty:
				text = r.Palette.Dim.Render(text)
			}
			cells[col] = text
		}
		rows[row] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "\n")
}

// regionGlyph writes region ids in base 36, '*' beyond 35.
func regionGlyph(id int) string {
	if id <= 0 || id >= 36 {
		return "*"
	}
	return strconv.FormatInt(int64(id), 36)
}
