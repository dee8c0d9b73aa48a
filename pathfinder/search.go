package pathfinder

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/uheap"
)

// Search computes the least-cost route from start to finish on g.
//
// Returns:
//
//   - Result with Path (nil if unreachable), Steps and Cost.
//   - ErrNilGrid, ErrStartOutOfBounds, ErrFinishOutOfBounds (wrapping
//     gridgraph.ErrOutOfBounds) on contract violations.
//   - ErrCancelled together with the partial Steps when the Interrupt
//     option fired.
//
// An unreachable finish is not an error.
//
// Complexity:
//
//   - Time:  O(V log V), V = g.Size()
//   - Space: O(V)
func Search(g *gridgraph.Grid, start, finish gridgraph.Coordinate, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkEndpoints(g, start, finish); err != nil {
		return Result{}, err
	}

	r := newRunner(g, start, finish, cfg)
	r.init()
	if !r.process() {
		return Result{Steps: r.steps}, ErrCancelled
	}
	return r.result(), nil
}

// checkEndpoints validates the grid pointer and both coordinates.
func checkEndpoints(g *gridgraph.Grid, start, finish gridgraph.Coordinate) error {
	if g == nil {
		return ErrNilGrid
	}
	if err := g.CheckBounds(start); err != nil {
		return fmt.Errorf("%w: %w", ErrStartOutOfBounds, err)
	}
	if err := g.CheckBounds(finish); err != nil {
		return fmt.Errorf("%w: %w", ErrFinishOutOfBounds, err)
	}
	return nil
}

// runner holds the mutable state for a single search. Nothing in it
// outlives the call that created it.
type runner struct {
	g        *gridgraph.Grid
	options  Options
	startID  int
	finishID int
	visited  []bool           // indexed by cell ID
	parents  map[int]int      // cell ID → ID of the cell it was reached from
	open     *uheap.Heap[int] // tentative distances of frontier cells
	steps    []gridgraph.Coordinate
	buf      []gridgraph.Step // reused neighbour buffer
	reached  bool             // finish was extracted
	distance float64          // distance of finish when reached
}

func newRunner(g *gridgraph.Grid, start, finish gridgraph.Coordinate, cfg Options) *runner {
	return &runner{
		g:        g,
		options:  cfg,
		startID:  g.ID(start),
		finishID: g.ID(finish),
		visited:  make([]bool, g.Size()),
		parents:  make(map[int]int),
		open:     uheap.NewWithCapacity[int](g.Size()),
		buf:      make([]gridgraph.Step, 0, 8),
	}
}

// init seeds the open set with the start cell at distance 0.
func (r *runner) init() {
	r.open.InsertOrReplace(uheap.Item[int]{ID: r.startID, Key: 0})
}

// process is the extraction loop. It returns false if the search was
// interrupted and true once the open set is exhausted or finish is reached.
func (r *runner) process() bool {
	for {
		if r.options.Interrupt() {
			return false
		}

		node, ok := r.open.ExtractMin()
		if !ok {
			return true
		}

		r.steps = append(r.steps, r.g.Coordinate(node.ID))
		r.visited[node.ID] = true

		if node.ID == r.finishID {
			r.reached = true
			r.distance = node.Key
			return true
		}

		r.relax(node)
	}
}

// relax offers every unvisited neighbour of node a tentative distance
// through node, keeping only strict improvements.
func (r *runner) relax(node uheap.Item[int]) {
	from := r.g.Coordinate(node.ID)
	r.buf = r.g.AppendNeighbors(r.buf[:0], from)
	for _, s := range r.buf {
		id := r.g.ID(s.To)
		if r.visited[id] {
			continue
		}

		candidate := node.Key + s.Cost
		if queued, ok := r.open.Lookup(id); ok && queued.Key <= candidate {
			continue
		}

		r.open.InsertOrReplace(uheap.Item[int]{ID: id, Key: candidate})
		r.parents[id] = node.ID
	}
}

// result assembles the final Result, backtracking the path when finish was
// reached.
func (r *runner) result() Result {
	res := Result{Steps: r.steps}
	if !r.reached {
		return res
	}

	ids, err := backtrack(r.parents, r.startID, r.finishID, r.g.Size())
	if err != nil {
		r.options.Logger.Warn("pathfinder: discarding path",
			slog.Any("error", err),
			slog.Int("start", r.startID),
			slog.Int("finish", r.finishID))
		return res
	}
	if ids == nil {
		return res
	}

	res.Path = make([]gridgraph.Coordinate, len(ids))
	for i, id := range ids {
		res.Path[i] = r.g.Coordinate(id)
	}
	res.Cost = r.distance
	return res
}

// backtrack follows parents from finish back to start and returns the IDs
// in start→finish order. It returns nil if the chain ends anywhere other
// than start, and ErrBacktrackCycle if more than limit links are followed.
func backtrack(parents map[int]int, startID, finishID, limit int) ([]int, error) {
	ids := []int{finishID}
	at := finishID
	for at != startID {
		if len(ids) > limit {
			return nil, fmt.Errorf("%w: exceeded %d links from %d", ErrBacktrackCycle, limit, finishID)
		}
		prev, ok := parents[at]
		if !ok {
			return nil, nil
		}
		ids = append(ids, prev)
		at = prev
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids, nil
}
