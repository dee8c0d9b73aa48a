package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// randomCells builds an n×n matrix with roughly 25% barriers.
func randomCells(n int, seed int64) [][]gridgraph.CellState {
	rng := rand.New(rand.NewSource(seed))
	cells := make([][]gridgraph.CellState, n)
	for r := range cells {
		cells[r] = make([]gridgraph.CellState, n)
		for c := range cells[r] {
			if rng.Intn(4) == 0 {
				cells[r][c] = gridgraph.Barrier
			}
		}
	}
	return cells
}

// BenchmarkComponents measures region labelling on a 200×200 grid.
// Complexity: O(R×C×8)
func BenchmarkComponents(b *testing.B) {
	g, err := gridgraph.NewGrid(randomCells(200, 42))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}
