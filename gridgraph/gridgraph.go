package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular matrix.
// It deep-copies the input so later edits by the caller do not leak into
// the snapshot.
// Returns ErrEmptyGrid if cells has no rows or no columns, ErrNonRectangular
// if any row length differs, ErrUnknownState for an undeclared state.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]CellState) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	copied := make([][]CellState, rows)
	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, s := range row {
			if !s.Valid() {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownState, int(s), r, c)
			}
		}
		copied[r] = make([]CellState, cols)
		copy(copied[r], row)
	}
	return &Grid{Rows: rows, Columns: cols, cells: copied}, nil
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Column >= 0 && c.Column < g.Columns
}

// CheckBounds returns ErrOutOfBounds (with context) when c is outside the grid.
func (g *Grid) CheckBounds(c Coordinate) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not within %dx%d", ErrOutOfBounds, c, g.Rows, g.Columns)
	}
	return nil
}

// Size returns the number of cells, which is also the size of the ID space.
func (g *Grid) Size() int { return g.Rows * g.Columns }

// ID maps c to its row-major identity: Row*Columns + Column.
// Complexity: O(1).
func (g *Grid) ID(c Coordinate) int {
	return c.Row*g.Columns + c.Column
}

// Coordinate converts a row-major identity back to its cell. It is the
// inverse of ID for every id in [0, Size()).
// Complexity: O(1).
func (g *Grid) Coordinate(id int) Coordinate {
	return Coordinate{Row: id / g.Columns, Column: id % g.Columns}
}

// At returns the state of cell c. c must be in bounds.
func (g *Grid) At(c Coordinate) CellState {
	return g.cells[c.Row][c.Column]
}

// Passable reports whether c is in bounds and not a barrier.
func (g *Grid) Passable(c Coordinate) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Column].Passable()
}

// Cells returns a deep copy of the underlying matrix.
func (g *Grid) Cells() [][]CellState {
	out := make([][]CellState, g.Rows)
	for r := range g.cells {
		out[r] = make([]CellState, g.Columns)
		copy(out[r], g.cells[r])
	}
	return out
}

// Find returns every cell holding state s in row-major order.
func (g *Grid) Find(s CellState) []Coordinate {
	var out []Coordinate
	for r, row := range g.cells {
		for c, v := range row {
			if v == s {
				out = append(out, Coordinate{Row: r, Column: c})
			}
		}
	}
	return out
}

// CanStep reports whether a single move from one cell to an adjacent one
// is legal: both cells are in bounds, to is passable, and a diagonal move
// does not cut between two barriers.
func (g *Grid) CanStep(from, to Coordinate) bool {
	dr, dc := to.Row-from.Row, to.Column-from.Column
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
		return false
	}
	if !g.InBounds(from) || !g.Passable(to) {
		return false
	}
	if dr != 0 && dc != 0 &&
		g.cells[from.Row+dr][from.Column] == Barrier &&
		g.cells[from.Row][from.Column+dc] == Barrier {
		return false
	}
	return true
}

// AppendNeighbors appends the legal moves out of c to dst and returns the
// extended slice. Moves are produced in row-major offset order.
// Complexity: O(1).
func (g *Grid) AppendNeighbors(dst []Step, c Coordinate) []Step {
	for _, d := range neighborOffsets {
		to := Coordinate{Row: c.Row + d[0], Column: c.Column + d[1]}
		if !g.CanStep(c, to) {
			continue
		}
		dst = append(dst, Step{To: to, Cost: stepCost(d[0], d[1])})
	}
	return dst
}

// Neighbors returns the legal moves out of c.
func (g *Grid) Neighbors(c Coordinate) []Step {
	return g.AppendNeighbors(make([]Step, 0, len(neighborOffsets)), c)
}
