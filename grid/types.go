package grid

import (
	"fmt"

	"github.com/katalvlaran/algoreplay/trace"
)

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid: input must have at least one row and one column", trace.ErrInvalidInput)
	// ErrBlankRow indicates an empty row surrounded by non-empty rows.
	ErrBlankRow = fmt.Errorf("%w: grid: blank row", trace.ErrInvalidInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: grid: all rows must have the same length", trace.ErrInvalidInput)
	// ErrInvalidSymbol indicates a cell symbol outside the alphabet.
	ErrInvalidSymbol = fmt.Errorf("%w: grid: invalid symbol", trace.ErrInvalidInput)
	// ErrTooLarge indicates more cells than CellCeiling.
	ErrTooLarge = fmt.Errorf("%w: grid: grid exceeds cell ceiling", trace.ErrInvalidInput)
)

// CellCeiling is the largest grid, in cells, that Parse accepts.
const CellCeiling = 2500

// CellState is the coarse state of a cell.
type CellState uint8

const (
	// Empty cells never take part in a traversal (water, empty slot).
	Empty CellState = iota
	// Open cells can be reached (unvisited land, fresh orange).
	Open
	// Marked cells have been reached (visited land, rotten orange).
	Marked
)

// String implements fmt.Stringer.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Open:
		return "open"
	case Marked:
		return "marked"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// MarshalYAML writes the state by name.
func (s CellState) MarshalYAML() (any, error) { return s.String(), nil }

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// String formats c as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Cell is one grid position. Label is 0 until a generator assigns it.
type Cell struct {
	State CellState `yaml:"state"`
	Label int       `yaml:"label,omitempty"`
}

// Grid is a rectangular row-major grid. A Grid stored in a Step is a private
// copy and must be treated as read-only.
type Grid struct {
	Rows  int    `yaml:"rows"`
	Cols  int    `yaml:"cols"`
	Cells []Cell `yaml:"cells,flow"`
}

// offsets lists orthogonal neighbor deltas as (row, col) in N, E, S, W order.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// ParseError reports where parsing failed. Err is one of the package
// sentinels; Row and Col are zero-based, or -1 when not applicable.
type ParseError struct {
	Row    int
	Col    int
	Symbol rune
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	switch {
	case e.Row < 0:
		return e.Err.Error()
	case e.Col < 0:
		return fmt.Sprintf("%v (row %d)", e.Err, e.Row)
	case e.Symbol != 0:
		return fmt.Sprintf("%v %q (row %d, col %d)", e.Err, e.Symbol, e.Row, e.Col)
	default:
		return fmt.Sprintf("%v (row %d, col %d)", e.Err, e.Row, e.Col)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }
