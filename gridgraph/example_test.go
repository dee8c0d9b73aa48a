package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleGrid_Neighbors lists the legal moves from the top-left cell of a
// grid where a diagonal would cut between two barriers.
func ExampleGrid_Neighbors() {
	g, _ := gridgraph.Parse([]string{
		"S#.",
		"#..",
		"..E",
	})
	fmt.Println("moves from S:", len(g.Neighbors(gridgraph.Coordinate{})))
	for _, s := range g.Neighbors(gridgraph.Coordinate{Row: 1, Column: 1}) {
		fmt.Printf("%v %.3f\n", s.To, s.Cost)
	}
	// Output:
	// moves from S: 0
	// (0,2) 1.414
	// (1,2) 1.000
	// (2,0) 1.414
	// (2,1) 1.000
	// (2,2) 1.414
}

// ExampleGrid_ID shows the row-major linearization and its inverse.
func ExampleGrid_ID() {
	g, _ := gridgraph.Parse([]string{"....", "....", "...."})
	id := g.ID(gridgraph.Coordinate{Row: 2, Column: 1})
	fmt.Println(id, g.Coordinate(id))
	// Output: 9 (2,1)
}
