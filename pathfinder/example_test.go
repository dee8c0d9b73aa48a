package pathfinder_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// ExampleSearch finds a route around a wall.
func ExampleSearch() {
	g, _ := gridgraph.Parse([]string{
		"S.#.",
		"..#.",
		"...E",
	})
	res, err := pathfinder.Search(g, gridgraph.Coordinate{Row: 0, Column: 0}, gridgraph.Coordinate{Row: 2, Column: 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Printf("cost: %.3f\n", res.Cost)
	// Output:
	// path: [(0,0) (1,1) (2,2) (2,3)]
	// cost: 3.828
}

// ExampleFinder_FindMinPath delivers the result on a caller-owned queue.
func ExampleFinder_FindMinPath() {
	q := pathfinder.NewMainQueue()
	f := pathfinder.NewFinder(pathfinder.WithDispatcher(q))

	cells := [][]gridgraph.CellState{
		{gridgraph.Start, gridgraph.Barrier, gridgraph.End},
		{gridgraph.Empty, gridgraph.Empty, gridgraph.Empty},
	}
	_, err := f.FindMinPath(
		gridgraph.Coordinate{Row: 0, Column: 0},
		gridgraph.Coordinate{Row: 0, Column: 2},
		cells,
		func(r pathfinder.Result) {
			fmt.Println("found:", r.Found(), "path:", r.Path)
		})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	f.Wait()
	q.Drain()
	// Output: found: true path: [(0,0) (1,1) (0,2)]
}
