package pathfinder_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// BenchmarkSearch_Open measures a corner-to-corner search on an open 50×50
// grid, the size of an interactive board.
func BenchmarkSearch_Open(b *testing.B) {
	g, err := gridgraph.NewGrid(openCells(50, 50))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfinder.Search(g, coord{0, 0}, coord{49, 49})
	}
}

// BenchmarkSearch_Random measures searches on a 50×50 grid with 30% walls.
func BenchmarkSearch_Random(b *testing.B) {
	g, err := gridgraph.NewGrid(randomCells(50, 50, 0.3, 42))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pathfinder.Search(g, coord{0, 0}, coord{49, 49})
	}
}
