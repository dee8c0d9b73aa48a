// Package gridpath finds shortest paths on small, dense, 8-connected grids
// and keeps them up to date while the grid is being edited.
//
// The module is organised bottom-up:
//
//	uheap/      — indexed binary min-heap with insert-or-replace by identity
//	gridgraph/  — immutable grid snapshot: cell states, neighbour rules, ASCII codec
//	pathfinder/ — Dijkstra search, cancellable asynchronous Finder, dispatchers
//	scenario/   — YAML/HCL scenario files and the default board layout
//	board/      — editable grid with gestures, live path overlay and playback
//	cmd/        — gridpath (one-shot CLI) and gridpath-view (ebiten window)
//
// Movement is 8-directional. Orthogonal steps cost 1 and diagonal steps √2.
// A diagonal step is refused when both orthogonal cells beside it are
// barriers, so paths never squeeze through a sealed corner.
//
// A Finder runs one search at a time: issuing a new request supersedes the
// previous one, and a superseded request never delivers its result.
//
// Quick start:
//
//	g, _ := gridgraph.Parse([]string{
//		"S.#.",
//		"..#.",
//		"...E",
//	})
//	res, _ := pathfinder.Search(g, gridgraph.Coordinate{}, gridgraph.Coordinate{Row: 2, Column: 3})
//	fmt.Println(res.Path, res.Cost)
package gridpath
