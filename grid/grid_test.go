// File: grid/grid_test.go
package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoreplay/trace"
)

// TestParse_Islands checks a well-formed island grid and the row-major layout.
//
//	11000
//	11000
//	00100
//	00011
func TestParse_Islands(t *testing.T) {
	g, err := Parse("11000\n11000\n00100\n00011\n", IslandAlphabet)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, 7, g.Count(Open))
	assert.Equal(t, Open, g.At(Coord{Row: 2, Col: 2}).State)
	assert.Equal(t, Empty, g.At(Coord{Row: 0, Col: 4}).State)
	assert.Equal(t, []string{"11000", "11000", "00100", "00011"}, IslandAlphabet.Format(g))
}

// TestParse_Separators accepts commas, spaces, ';' and surrounding blank lines.
func TestParse_Separators(t *testing.T) {
	a, err := Parse("\n 2,1,0 \r\n0 1 1\n\n", SpreadAlphabet)
	require.NoError(t, err)
	b, err := Parse("210;011", SpreadAlphabet)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	assert.Equal(t, Marked, a.At(Coord{}).State)
}

// TestParse_Errors covers every rejection and the reported position.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		sentinel error
		row, col int
	}{
		{"empty", "", ErrEmptyGrid, -1, -1},
		{"whitespace only", " \n\t\n", ErrEmptyGrid, -1, -1},
		{"invalid symbol", "2x1", ErrInvalidSymbol, 0, 1},
		{"invalid on second row", "11\n1a", ErrInvalidSymbol, 1, 1},
		{"short row", "111\n11", ErrNonRectangular, 1, 2},
		{"long row", "11\n111", ErrNonRectangular, 1, 2},
		{"blank interior row", "11\n\n11", ErrBlankRow, 1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw, SpreadAlphabet)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.ErrorIs(t, err, trace.ErrInvalidInput)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.row, pe.Row)
			assert.Equal(t, tc.col, pe.Col)
		})
	}
}

func TestParseError_Message(t *testing.T) {
	_, err := Parse("2x1", SpreadAlphabet)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `'x'`)
	assert.Contains(t, err.Error(), "row 0, col 1")
}

func TestParseRows(t *testing.T) {
	g, err := ParseRows([]string{"2", "1"}, SpreadAlphabet)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 1, g.Cols)

	_, err = ParseRows(nil, SpreadAlphabet)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = ParseRows([]string{"1", ""}, SpreadAlphabet)
	assert.ErrorIs(t, err, ErrBlankRow)
}

// TestNeighbors_Order pins the N, E, S, W visiting order.
func TestNeighbors_Order(t *testing.T) {
	g, err := Parse("000\n000\n000", IslandAlphabet)
	require.NoError(t, err)

	got := g.Neighbors(nil, Coord{Row: 1, Col: 1})
	want := []Coord{{0, 1}, {1, 2}, {2, 1}, {1, 0}}
	assert.Equal(t, want, got)

	corner := g.Neighbors(nil, Coord{Row: 0, Col: 0})
	assert.Equal(t, []Coord{{0, 1}, {1, 0}}, corner)
}

func TestCloneAndEqual(t *testing.T) {
	g, err := New([][]CellState{{Open, Empty}, {Empty, Open}})
	require.NoError(t, err)

	c := g.Clone()
	require.True(t, g.Equal(c))
	c.Set(Coord{Row: 0, Col: 0}, Cell{State: Marked, Label: 1})
	assert.False(t, g.Equal(c))
	assert.Equal(t, Open, g.At(Coord{}).State, "clone must not alias the original")
	assert.True(t, g.SameShape(c))

	idx := g.Index(Coord{Row: 1, Col: 0})
	assert.Equal(t, 2, idx)
	assert.Equal(t, Coord{Row: 1, Col: 0}, g.Coordinate(idx))
	assert.False(t, g.InBounds(Coord{Row: 2, Col: 0}))
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = New([][]CellState{{Open}, {}})
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "CellState(9)", CellState(9).String())
	assert.Equal(t, '?', IslandAlphabet.Glyph(Marked))
	assert.Equal(t, '2', SpreadAlphabet.Glyph(Marked))
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		g    Grid
		want error
	}{
		{"zero value", Grid{}, ErrEmptyGrid},
		{"negative dimensions", Grid{Rows: -1, Cols: -1}, ErrEmptyGrid},
		{"too few cells", Grid{Rows: 2, Cols: 2, Cells: make([]Cell, 1)}, ErrNonRectangular},
		{"too many cells", Grid{Rows: 1, Cols: 2, Cells: make([]Cell, 3)}, ErrNonRectangular},
		{"overflowing product", Grid{Rows: 1 << 62, Cols: 4, Cells: make([]Cell, 0)}, ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.g)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, trace.ErrInvalidInput)
			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
	assert.NoError(t, Validate(Grid{Rows: 1, Cols: 2, Cells: make([]Cell, 2)}))
}

// TestParse_CellCeiling rejects oversized text from its shape alone.
func TestParse_CellCeiling(t *testing.T) {
	wide := strings.Repeat("1", CellCeiling+1)
	_, err := Parse(wide, IslandAlphabet)
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)

	// 51 rows of 50 cells: the first row is enough to know.
	row := strings.Repeat("0", 50)
	rows := strings.TrimSuffix(strings.Repeat(row+"\n", 51), "\n")
	_, err = Parse(rows, IslandAlphabet)
	assert.ErrorIs(t, err, ErrTooLarge)

	tall := strings.Repeat("1;", CellCeiling) + "1"
	_, err = Parse(tall, IslandAlphabet)
	assert.ErrorIs(t, err, ErrTooLarge)

	g, err := Parse(strings.TrimSuffix(strings.Repeat(row+"\n", 50), "\n"), IslandAlphabet)
	require.NoError(t, err)
	assert.Equal(t, CellCeiling, g.Size())
}
