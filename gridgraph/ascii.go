package gridgraph

import (
	"fmt"
	"strings"
)

// ASCII symbols for each CellState, used by Parse and (*Grid).String.
const (
	SymbolEmpty    = '.'
	SymbolStart    = 'S'
	SymbolEnd      = 'E'
	SymbolBarrier  = '#'
	SymbolPath     = '*'
	SymbolChecking = '+'
)

// Symbol returns the ASCII character for s, or '?' for an unknown state.
func (s CellState) Symbol() rune {
	switch s {
	case Empty:
		return SymbolEmpty
	case Start:
		return SymbolStart
	case End:
		return SymbolEnd
	case Barrier:
		return SymbolBarrier
	case Path:
		return SymbolPath
	case Checking:
		return SymbolChecking
	default:
		return '?'
	}
}

// ParseSymbol maps an ASCII character to its CellState.
func ParseSymbol(r rune) (CellState, error) {
	switch r {
	case SymbolEmpty:
		return Empty, nil
	case SymbolStart:
		return Start, nil
	case SymbolEnd:
		return End, nil
	case SymbolBarrier:
		return Barrier, nil
	case SymbolPath:
		return Path, nil
	case SymbolChecking:
		return Checking, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
	}
}

// ParseCells decodes ASCII rows into a raw cell matrix without building a
// Grid. Surrounding whitespace on each row is ignored.
func ParseCells(rows []string) ([][]CellState, error) {
	cells := make([][]CellState, 0, len(rows))
	for r, line := range rows {
		line = strings.TrimSpace(line)
		row := make([]CellState, 0, len(line))
		for c, ch := range []rune(line) {
			s, err := ParseSymbol(ch)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", r, c, err)
			}
			row = append(row, s)
		}
		cells = append(cells, row)
	}
	return cells, nil
}

// Parse builds a Grid from ASCII rows, one string per grid row.
//
//	S..#
//	.#.E
func Parse(rows []string) (*Grid, error) {
	cells, err := ParseCells(rows)
	if err != nil {
		return nil, err
	}
	return NewGrid(cells)
}

// FormatCells renders a raw cell matrix as newline-separated ASCII rows.
func FormatCells(cells [][]CellState) string {
	var b strings.Builder
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, s := range row {
			b.WriteRune(s.Symbol())
		}
	}
	return b.String()
}

// String renders the grid in the ASCII form accepted by Parse.
func (g *Grid) String() string {
	return FormatCells(g.cells)
}
