package scenario

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Size returns the board dimensions for a viewport of width×height pixels
// when minAxisTiles tiles span the shorter side. Tiles stay square, so the
// longer side gets round(minAxisTiles × long/short) tiles.
func Size(minAxisTiles, width, height int) (rows, cols int) {
	if minAxisTiles <= 0 || width <= 0 || height <= 0 {
		return 0, 0
	}
	portrait := width < height
	short, long := width, height
	if !portrait {
		short, long = height, width
	}
	alongLong := int(math.Round(float64(minAxisTiles) * float64(long) / float64(short)))
	if portrait {
		return alongLong, minAxisTiles
	}
	return minAxisTiles, alongLong
}

// Layout returns the default start and end cells for a rows×cols board.
// On a portrait (or square) board they sit in the middle column, two rows
// in from the top and bottom edges. A landscape board is the transpose.
func Layout(rows, cols int) (start, end gridgraph.Coordinate) {
	if rows >= cols {
		start = gridgraph.Coordinate{Row: min(rows-1, 2), Column: cols / 2}
		end = gridgraph.Coordinate{Row: max(rows-3, 0), Column: cols / 2}
		return start, end
	}
	start = gridgraph.Coordinate{Row: rows / 2, Column: min(cols-1, 2)}
	end = gridgraph.Coordinate{Row: rows / 2, Column: max(cols-3, 0)}
	return start, end
}

// Default builds an empty rows×cols board with start and end placed by
// Layout. On boards too small to separate them, end wins the shared cell.
func Default(rows, cols int) ([][]gridgraph.CellState, gridgraph.Coordinate, gridgraph.Coordinate, error) {
	if rows <= 0 || cols <= 0 {
		return nil, gridgraph.Coordinate{}, gridgraph.Coordinate{}, fmt.Errorf("%w: %dx%d", ErrBadSize, rows, cols)
	}
	cells := make([][]gridgraph.CellState, rows)
	for r := range cells {
		cells[r] = make([]gridgraph.CellState, cols)
	}
	start, end := Layout(rows, cols)
	cells[start.Row][start.Column] = gridgraph.Start
	cells[end.Row][end.Column] = gridgraph.End
	return cells, start, end, nil
}
