// Package gridgraph treats a rectangular matrix of cell states as an
// implicit 8-connected graph, the shape used by the pathfinder.
//
// What:
//
//   - Grid wraps a deep-copied, rectangular [][]CellState snapshot.
//   - Coordinates linearize to dense integer IDs (row*Columns + column)
//     and back; the two mappings are exact inverses for in-bounds cells.
//   - Neighbors expands the up-to-8 moves out of a cell, skipping barriers
//     and diagonal moves that would cut between two barrier corners.
//   - Reachable and Components flood-fill under the same movement rule.
//   - Parse and (*Grid).String convert to and from a compact ASCII form.
//
// Movement rule:
//
//   - Orthogonal step cost 1, diagonal step cost √2 (Euclidean length of
//     the row/column delta).
//   - Barrier cells are never entered. Every other state is passable.
//   - A diagonal step C→D is forbidden when both cells adjacent to that
//     diagonal, (C.Row, D.Column) and (D.Row, C.Column), are barriers.
//
// Complexity:
//
//   - NewGrid, Parse, String:    O(R×C) time and memory.
//   - ID, Coordinate, InBounds:  O(1).
//   - Neighbors:                 O(1) (at most 8 moves).
//   - Reachable, Components:     O(R×C×8), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownState:   a cell holds a value outside the CellState range.
//   - ErrOutOfBounds:    a coordinate lies outside the grid.
//   - ErrUnknownSymbol:  Parse met a character with no CellState.
package gridgraph
