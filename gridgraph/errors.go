package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUnknownState indicates a cell value outside the CellState range.
	ErrUnknownState = errors.New("gridgraph: unknown cell state")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrUnknownSymbol indicates an ASCII character with no cell state.
	ErrUnknownSymbol = errors.New("gridgraph: unknown grid symbol")
)
