package grid

// New constructs a Grid from a non-empty, rectangular 2-D slice of states.
// It deep-copies the input. Returns ErrEmptyGrid or ErrNonRectangular.
// Complexity: O(Rows×Cols) time and memory.
func New(states [][]CellState) (Grid, error) {
	if len(states) == 0 || len(states[0]) == 0 {
		return Grid{}, &ParseError{Row: -1, Col: -1, Err: ErrEmptyGrid}
	}
	h, w := len(states), len(states[0])
	cells := make([]Cell, 0, h*w)
	for y, row := range states {
		if len(row) != w {
			return Grid{}, &ParseError{Row: y, Col: -1, Err: ErrNonRectangular}
		}
		for _, s := range row {
			cells = append(cells, Cell{State: s})
		}
	}

	g := Grid{Rows: h, Cols: w, Cells: cells}
	return g, Validate(g)
}

// Validate checks that g has positive dimensions and exactly Rows×Cols
// cells. Grid is an exported struct, so callers handing a Grid to a
// generator may have built it by hand.
func Validate(g Grid) error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return &ParseError{Row: -1, Col: -1, Err: ErrEmptyGrid}
	}
	if g.Rows > len(g.Cells) || g.Cols > len(g.Cells) || g.Rows*g.Cols != len(g.Cells) {
		return &ParseError{Row: -1, Col: -1, Err: ErrNonRectangular}
	}
	return nil
}

// Size returns Rows×Cols.
func (g Grid) Size() int { return g.Rows * g.Cols }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Index maps c to its row-major index.
func (g Grid) Index(c Coord) int { return c.Row*g.Cols + c.Col }

// Coordinate converts a row-major index back to a Coord.
func (g Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Cols, Col: idx % g.Cols}
}

// At returns the cell at c. It panics if c is out of bounds.
func (g Grid) At(c Coord) Cell { return g.Cells[g.Index(c)] }

// Set overwrites the cell at c. Only the owner of a working copy may call
// it; grids held by Steps are never written.
func (g Grid) Set(c Coord, cell Cell) { g.Cells[g.Index(c)] = cell }

// Neighbors appends the in-bounds orthogonal neighbors of c to dst in
// N, E, S, W order and returns the extended slice.
func (g Grid) Neighbors(dst []Coord, c Coord) []Coord {
	for _, d := range offsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Count returns the number of cells in state s.
func (g Grid) Count(s CellState) int {
	n := 0
	for _, c := range g.Cells {
		if c.State == s {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// Equal reports whether g and o have the same shape and cells.
func (g Grid) Equal(o Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols || len(g.Cells) != len(o.Cells) {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// SameShape reports whether g and o have equal dimensions.
func (g Grid) SameShape(o Grid) bool { return g.Rows == o.Rows && g.Cols == o.Cols }
