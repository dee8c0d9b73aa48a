// Package pathfinder finds least-cost routes between two cells of a
// gridgraph.Grid and reports the order in which cells were visited.
//
// Overview:
//
//   - Search runs a uniform-cost (Dijkstra) search over the implicit
//     8-connected grid graph: orthogonal moves cost 1, diagonal moves √2,
//     barriers are impassable and diagonal corner cutting between two
//     barriers is forbidden.
//   - The open set is a uheap.Heap keyed by cell ID, so a tentative
//     distance can be looked up in O(1) and improved in O(log n) by
//     replacing the queued item.
//   - Finder wraps Search in a background goroutine per request. Issuing a
//     new request supersedes the previous one: the old search stops at its
//     next extraction step and its continuation never runs.
//
// Result:
//
//   - Path:  start → finish inclusive, or nil when finish is unreachable
//     (not an error).
//   - Steps: every cell popped from the open set, in visitation order, up
//     to completion or cancellation. Used for animation.
//   - Cost:  Euclidean length of Path.
//
// Supersession:
//
//   - Every request carries a generation number. The Finder stores the
//     current generation; a running search checks "is my generation still
//     current" at the top of each extraction step. Bumping the generation,
//     cancelling the previous request and installing the new one happen
//     under one mutex, so two requests are never current at once.
//   - Results are handed to a Dispatcher (the caller's execution context).
//     A result is dropped, and its request marked Cancelled, if a newer
//     request was issued before the continuation was invoked.
//
// Determinism:
//
//   - Neighbours are expanded in a fixed order and uheap breaks ties by
//     array position, so the same grid, start and finish always produce the
//     same Path and Steps.
//
// Complexity:
//
//   - Time:  O(V log V) with V = Rows×Columns (each cell has ≤ 8 moves).
//   - Space: O(V) for the visited flags, parent map and heap.
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrFinishOutOfBounds, ErrNilCallback:
//     contract violations, reported synchronously before any work starts.
//   - gridgraph.ErrEmptyGrid / gridgraph.ErrNonRectangular from Finder when
//     the raw matrix is malformed.
//   - ErrCancelled: Search was interrupted (never seen by Finder callers).
package pathfinder
