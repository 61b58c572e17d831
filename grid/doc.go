// Package grid provides the 2-D cell grid the BFS trace generators work on.
//
// What:
//
//   - Grid: a rectangular, row-major grid of Cells with a small state enum
//     (Empty, Open, Marked) and an integer Label (region id, spread round).
//   - Alphabet: the mapping from input symbols to cell states. IslandAlphabet
//     reads '0'/'1'; SpreadAlphabet reads '0'/'1'/'2'.
//   - Parse / ParseRows: the one place user text reaches the core. Malformed
//     input fails loudly with a *ParseError naming the row and column.
//
// Connectivity is always orthogonal; Neighbors yields N, E, S, W in that
// fixed order, which is part of the observable trace order.
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrBlankRow:        an empty row between non-empty rows.
//   - ErrNonRectangular:  rows of differing lengths.
//   - ErrInvalidSymbol:   a symbol outside the alphabet.
//
// All of them wrap trace.ErrInvalidInput.
//
// Complexity: Parse, Clone and Equal are O(Rows×Cols).
package grid
