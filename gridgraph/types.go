package gridgraph

import (
	"fmt"
	"math"
)

// CellState is the content of one grid cell. Values match the raw integers
// used by grid editors (Empty=0 … Checking=5).
type CellState int

const (
	// Empty is a free cell.
	Empty CellState = iota
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Barrier is the only impassable state.
	Barrier
	// Path marks a cell on a displayed shortest path.
	Path
	// Checking marks a cell visited by an animated search.
	Checking
)

// Valid reports whether s is one of the declared states.
func (s CellState) Valid() bool { return s >= Empty && s <= Checking }

// Passable reports whether a search may enter a cell in state s.
func (s CellState) Passable() bool { return s != Barrier }

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case End:
		return "end"
	case Barrier:
		return "barrier"
	case Path:
		return "path"
	case Checking:
		return "checking"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Coordinate addresses a cell by row and column.
type Coordinate struct {
	Row, Column int
}

// String formats c as "(row,column)".
func (c Coordinate) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Column) }

// Step is one legal move out of a cell.
type Step struct {
	To   Coordinate // destination cell
	Cost float64    // Euclidean length of the move: 1 or √2
}

// Grid is an immutable rectangular snapshot of cell states.
// Rows and Columns define dimensions; cells[r][c] holds the state.
type Grid struct {
	Rows, Columns int
	cells         [][]CellState
}

// neighborOffsets lists the 8 moves in row-major order. The order fixes
// the expansion order and therefore the determinism of searches.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// stepCost returns the Euclidean length of a unit move (dr, dc).
func stepCost(dr, dc int) float64 {
	return math.Sqrt(float64(dr*dr + dc*dc))
}
