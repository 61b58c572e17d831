package grid

import (
	"fmt"
	"strings"
)

// Alphabet maps input symbols to cell states.
type Alphabet struct {
	Name    string
	symbols map[rune]CellState
	glyphs  map[CellState]rune
}

// NewAlphabet builds an Alphabet from symbol/state pairs. The first symbol
// seen for a state is used when formatting.
func NewAlphabet(name string, pairs map[rune]CellState) Alphabet {
	a := Alphabet{Name: name, symbols: make(map[rune]CellState, len(pairs)), glyphs: make(map[CellState]rune, len(pairs))}
	for r, s := range pairs {
		a.symbols[r] = s
		if g, ok := a.glyphs[s]; !ok || r < g {
			a.glyphs[s] = r
		}
	}
	return a
}

// Predefined alphabets.
var (
	// IslandAlphabet reads '0' as water and '1' as land.
	IslandAlphabet = NewAlphabet("islands", map[rune]CellState{'0': Empty, '1': Open})
	// SpreadAlphabet reads '0' as empty, '1' as fresh and '2' as rotten.
	SpreadAlphabet = NewAlphabet("spread", map[rune]CellState{'0': Empty, '1': Open, '2': Marked})
)

// State returns the state for symbol r.
func (a Alphabet) State(r rune) (CellState, bool) {
	s, ok := a.symbols[r]
	return s, ok
}

// Glyph returns the canonical symbol for state s, or '?' if none.
func (a Alphabet) Glyph(s CellState) rune {
	if g, ok := a.glyphs[s]; ok {
		return g
	}
	return '?'
}

// Format renders g back into one string per row.
func (a Alphabet) Format(g Grid) []string {
	rows := make([]string, g.Rows)
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		b.Reset()
		for c := 0; c < g.Cols; c++ {
			b.WriteRune(a.Glyph(g.At(Coord{Row: r, Col: c}).State))
		}
		rows[r] = b.String()
	}
	return rows
}

// Parse reads raw grid text. Rows are separated by newlines or ';'. Cells are
// single symbols, optionally separated by commas, spaces or tabs. Leading and
// trailing blank lines are ignored; reported row numbers count from the first
// line of raw.
func Parse(raw string, a Alphabet) (Grid, error) {
	lines := splitRows(raw)

	first, last := -1, -1
	for i, l := range lines {
		if !blank(l) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return Grid{}, &ParseError{Row: -1, Col: -1, Err: ErrEmptyGrid}
	}

	return parseLines(lines[first:last+1], first, a)
}

// ParseRows reads one string per row. Unlike Parse, no row may be blank.
func ParseRows(rows []string, a Alphabet) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, &ParseError{Row: -1, Col: -1, Err: ErrEmptyGrid}
	}
	return parseLines(rows, 0, a)
}

// splitRows splits on newlines and ';', keeping empty rows so that row
// numbers in errors match the input.
func splitRows(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(strings.ReplaceAll(raw, ";", "\n"), "\n")
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', '\r':
		return true
	}
	return false
}

func blank(line string) bool {
	for _, r := range line {
		if !isSeparator(r) {
			return false
		}
	}
	return true
}

func countCells(line string) int {
	n := 0
	for _, r := range line {
		if !isSeparator(r) {
			n++
		}
	}
	return n
}

// parseLines rejects oversized input from the row count and the first row's
// width, before any cell is allocated.
func parseLines(lines []string, offset int, a Alphabet) (Grid, error) {
	if len(lines) > CellCeiling {
		return Grid{}, tooLarge(len(lines), 1)
	}
	width := -1
	var cells []Cell
	for i, l := range lines {
		row := offset + i
		n := countCells(l)
		if n == 0 {
			return Grid{}, &ParseError{Row: row, Col: -1, Err: ErrBlankRow}
		}
		if width < 0 {
			width = n
			if width > CellCeiling || width*len(lines) > CellCeiling {
				return Grid{}, tooLarge(len(lines), width)
			}
			cells = make([]Cell, 0, width*len(lines))
		} else if n != width {
			return Grid{}, &ParseError{Row: row, Col: min(n, width), Err: ErrNonRectangular}
		}
		col := 0
		for _, r := range l {
			if isSeparator(r) {
				continue
			}
			s, ok := a.State(r)
			if !ok {
				return Grid{}, &ParseError{Row: row, Col: col, Symbol: r, Err: ErrInvalidSymbol}
			}
			cells = append(cells, Cell{State: s})
			col++
		}
	}

	return Grid{Rows: len(lines), Cols: width, Cells: cells}, nil
}

func tooLarge(rows, cols int) error {
	return &ParseError{Row: -1, Col: -1, Err: fmt.Errorf("%w: %d×%d, limit %d cells", ErrTooLarge, rows, cols, CellCeiling)}
}
