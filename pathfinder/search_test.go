// Package pathfinder_test contains unit tests for the synchronous search and
// the superseding Finder.
package pathfinder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coord = gridgraph.Coordinate

func mustParse(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.Parse(rows)
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_ContractViolations(t *testing.T) {
	g := mustParse(t, "...", "...")

	_, err := pathfinder.Search(nil, coord{}, coord{})
	assert.ErrorIs(t, err, pathfinder.ErrNilGrid)

	_, err = pathfinder.Search(g, coord{Row: -1}, coord{})
	assert.ErrorIs(t, err, pathfinder.ErrStartOutOfBounds)
	assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds)

	_, err = pathfinder.Search(g, coord{}, coord{Row: 0, Column: 3})
	assert.ErrorIs(t, err, pathfinder.ErrFinishOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Concrete scenarios
// ------------------------------------------------------------------------

// TestSearch_OpenDiagonal: 3×3 empty grid, (0,0)→(2,2) goes straight
// through (1,1) at cost 2√2.
func TestSearch_OpenDiagonal(t *testing.T) {
	g := mustParse(t, "...", "...", "...")

	res, err := pathfinder.Search(g, coord{0, 0}, coord{2, 2})
	require.NoError(t, err)
	require.True(t, res.Found())
	assert.Equal(t, []coord{{0, 0}, {1, 1}, {2, 2}}, res.Path)
	assert.InDelta(t, 2*math.Sqrt2, res.Cost, 1e-12)
	assert.Equal(t, coord{0, 0}, res.Steps[0])
	assert.Equal(t, coord{2, 2}, res.Steps[len(res.Steps)-1])
}

// TestSearch_CornerCuttingBlocked: the four orthogonal neighbours of the
// centre are walls, so every diagonal out of (0,0) cuts between two walls
// and the finish is unreachable.
func TestSearch_CornerCuttingBlocked(t *testing.T) {
	for _, centre := range []string{".", "#"} {
		g := mustParse(t,
			".#.",
			"#"+centre+"#",
			".#.",
		)
		res, err := pathfinder.Search(g, coord{0, 0}, coord{2, 2})
		require.NoError(t, err)
		assert.False(t, res.Found())
		assert.Nil(t, res.Path)
		assert.Zero(t, res.Cost)
		assert.Equal(t, []coord{{0, 0}}, res.Steps)
	}
}

// TestSearch_SingleWallAllowsDiagonal: one wall beside the diagonal does
// not block it.
func TestSearch_SingleWallAllowsDiagonal(t *testing.T) {
	g := mustParse(t,
		".#",
		"..",
	)
	res, err := pathfinder.Search(g, coord{0, 0}, coord{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []coord{{0, 0}, {1, 1}}, res.Path)
	assert.InDelta(t, math.Sqrt2, res.Cost, 1e-12)
}

func TestSearch_DetourAroundWall(t *testing.T) {
	g := mustParse(t,
		"S.#..",
		"..#..",
		"..#..",
		"....E",
	)
	res, err := pathfinder.Search(g, coord{0, 0}, coord{3, 4})
	require.NoError(t, err)
	require.True(t, res.Found())
	assertValidPath(t, g, res, coord{0, 0}, coord{3, 4})
	// The only gap in the wall is (3,2): 2√2+1 to reach it, then 2 east.
	assert.InDelta(t, 2*math.Sqrt2+3, res.Cost, 1e-9)
	assert.Contains(t, res.Path, coord{3, 2})
}

func TestSearch_StartEqualsFinish(t *testing.T) {
	g := mustParse(t, "...", "...")
	res, err := pathfinder.Search(g, coord{1, 1}, coord{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []coord{{1, 1}}, res.Path)
	assert.Equal(t, []coord{{1, 1}}, res.Steps)
	assert.Zero(t, res.Cost)
}

// TestSearch_UnreachableVisitsRegion checks that an exhausted search has
// visited exactly the region reachable from start.
func TestSearch_UnreachableVisitsRegion(t *testing.T) {
	g := mustParse(t,
		"S..#....",
		"...#....",
		"####....",
		".......E",
	)
	start, finish := coord{0, 0}, coord{3, 7}
	res, err := pathfinder.Search(g, start, finish)
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.ElementsMatch(t, g.Reachable(start), res.Steps)
}

// TestSearch_Interrupt cancels after three extraction steps.
func TestSearch_Interrupt(t *testing.T) {
	g := mustParse(t, "........", "........", "........")
	calls := 0
	res, err := pathfinder.Search(g, coord{0, 0}, coord{2, 7},
		pathfinder.WithInterrupt(func() bool {
			calls++
			return calls > 3
		}))
	assert.ErrorIs(t, err, pathfinder.ErrCancelled)
	assert.Nil(t, res.Path)
	assert.Len(t, res.Steps, 3)
}

func TestSearch_Deterministic(t *testing.T) {
	g, err := gridgraph.NewGrid(randomCells(30, 30, 0.3, 99))
	require.NoError(t, err)
	a, err := pathfinder.Search(g, coord{0, 0}, coord{29, 29})
	require.NoError(t, err)
	b, err := pathfinder.Search(g, coord{0, 0}, coord{29, 29})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// ------------------------------------------------------------------------
// 3. Optimality against an independent reference
// ------------------------------------------------------------------------

// TestSearch_MatchesReference compares costs on random grids against a
// Bellman-Ford relaxation over the same movement rule.
func TestSearch_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 60; trial++ {
		rows, cols := 2+rng.Intn(9), 2+rng.Intn(9)
		cells := randomCells(rows, cols, 0.35, rng.Int63())
		start := coord{rng.Intn(rows), rng.Intn(cols)}
		finish := coord{rng.Intn(rows), rng.Intn(cols)}
		cells[start.Row][start.Column] = gridgraph.Start
		cells[finish.Row][finish.Column] = gridgraph.End
		g, err := gridgraph.NewGrid(cells)
		require.NoError(t, err)

		res, err := pathfinder.Search(g, start, finish)
		require.NoError(t, err)

		want := referenceDistance(g, start, finish)
		if math.IsInf(want, 1) {
			assert.Nilf(t, res.Path, "trial %d: expected no path\n%s", trial, g)
			assert.ElementsMatch(t, g.Reachable(start), res.Steps)
			continue
		}
		require.Truef(t, res.Found(), "trial %d: expected a path\n%s", trial, g)
		assert.InDeltaf(t, want, res.Cost, 1e-9, "trial %d\n%s", trial, g)
		assertValidPath(t, g, res, start, finish)
	}
}

// assertValidPath checks endpoints, single legal steps and that Cost equals
// the summed step lengths.
func assertValidPath(t *testing.T, g *gridgraph.Grid, res pathfinder.Result, start, finish coord) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, finish, res.Path[len(res.Path)-1])
	total := 0.0
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		require.Truef(t, g.CanStep(a, b), "illegal step %v→%v", a, b)
		total += math.Hypot(float64(b.Row-a.Row), float64(b.Column-a.Column))
	}
	assert.InDelta(t, total, res.Cost, 1e-9)
}

// referenceDistance runs Bellman-Ford to a fixed point.
func referenceDistance(g *gridgraph.Grid, start, finish coord) float64 {
	dist := make([]float64, g.Size())
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[g.ID(start)] = 0
	for changed := true; changed; {
		changed = false
		for id := range dist {
			if math.IsInf(dist[id], 1) {
				continue
			}
			for _, s := range g.Neighbors(g.Coordinate(id)) {
				to := g.ID(s.To)
				if d := dist[id] + s.Cost; d < dist[to]-1e-12 {
					dist[to] = d
					changed = true
				}
			}
		}
	}
	return dist[g.ID(finish)]
}

// randomCells builds a rows×cols matrix where each cell is a barrier with
// probability p.
func randomCells(rows, cols int, p float64, seed int64) [][]gridgraph.CellState {
	rng := rand.New(rand.NewSource(seed))
	cells := make([][]gridgraph.CellState, rows)
	for r := range cells {
		cells[r] = make([]gridgraph.CellState, cols)
		for c := range cells[r] {
			if rng.Float64() < p {
				cells[r][c] = gridgraph.Barrier
			}
		}
	}
	return cells
}
