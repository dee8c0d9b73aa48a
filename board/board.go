package board

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// ErrEndpointOutOfBounds indicates a start or end cell outside the grid.
var ErrEndpointOutOfBounds = errors.New("board: endpoint out of bounds")

// Option configures a Board.
type Option func(*config)

type config struct {
	finder   *pathfinder.Finder
	logger   *slog.Logger
	animated bool
	onChange func([]gridgraph.Coordinate)
	onResult func(pathfinder.Result)
}

// WithFinder sets the Finder used for searches. The default is a Finder
// delivering through pathfinder.Immediate.
func WithFinder(f *pathfinder.Finder) Option {
	return func(c *config) {
		if f != nil {
			c.finder = f
		}
	}
}

// WithLogger sets the board logger (default slog.Default).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAnimated sets the initial animation mode.
func WithAnimated(on bool) Option {
	return func(c *config) { c.animated = on }
}

// WithOnChange registers a hook receiving the cells whose state changed.
// A nil slice means the whole grid should be redrawn. The hook runs after
// the board lock is released and may call back into the Board.
func WithOnChange(fn func(cells []gridgraph.Coordinate)) Option {
	return func(c *config) { c.onChange = fn }
}

// WithOnResult registers a hook called after a search result is applied.
func WithOnResult(fn func(pathfinder.Result)) Option {
	return func(c *config) { c.onResult = fn }
}

// Board is an editable grid with a live shortest-path overlay.
type Board struct {
	mu     sync.Mutex
	cells  [][]gridgraph.CellState
	rows   int
	cols   int
	start  gridgraph.Coordinate
	end    gridgraph.Coordinate
	cfg    config
	issued uint64 // generation of the newest search requested by the board

	// gesture
	held      gridgraph.CellState
	holding   bool
	displaced gridgraph.CellState

	// overlay
	animated bool
	result   *pathfinder.Result
	cursor   int
	playing  bool
}

// New builds a Board over a copy of cells with the given endpoints and
// issues the first search. The endpoint cells are set to Start and End.
func New(cells [][]gridgraph.CellState, start, end gridgraph.Coordinate, opts ...Option) (*Board, error) {
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		return nil, err
	}
	for _, c := range [...]gridgraph.Coordinate{start, end} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrEndpointOutOfBounds, c, g.Rows, g.Columns)
		}
	}

	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.finder == nil {
		cfg.finder = pathfinder.NewFinder(pathfinder.WithFinderLogger(cfg.logger))
	}

	b := &Board{
		cells:    g.Cells(),
		rows:     g.Rows,
		cols:     g.Columns,
		start:    start,
		end:      end,
		cfg:      cfg,
		animated: cfg.animated,
	}
	b.cells[start.Row][start.Column] = gridgraph.Start
	b.cells[end.Row][end.Column] = gridgraph.End

	b.mu.Lock()
	err = b.requestLocked()
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Rows returns the number of grid rows.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of grid columns.
func (b *Board) Columns() int { return b.cols }

// Start returns the current start cell.
func (b *Board) Start() gridgraph.Coordinate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.start
}

// End returns the current end cell.
func (b *Board) End() gridgraph.Coordinate {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.end
}

// At returns the state of c, or Empty when c is outside the grid.
func (b *Board) At(c gridgraph.Coordinate) gridgraph.CellState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.inBounds(c) {
		return gridgraph.Empty
	}
	return b.cells[c.Row][c.Column]
}

// Snapshot returns a deep copy of the grid.
func (b *Board) Snapshot() [][]gridgraph.CellState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// String renders the grid in ASCII form.
func (b *Board) String() string {
	return gridgraph.FormatCells(b.Snapshot())
}

// Animated reports whether results are played back step by step.
func (b *Board) Animated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.animated
}

// Playing reports whether an animation is in progress.
func (b *Board) Playing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.playing
}

// Result returns the last applied result and whether there is one.
func (b *Board) Result() (pathfinder.Result, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.result == nil {
		return pathfinder.Result{}, false
	}
	return *b.result, true
}

// Close cancels the outstanding search. Results still queued on the
// dispatcher are dropped.
func (b *Board) Close() {
	b.cfg.finder.Cancel()
}

func (b *Board) inBounds(c gridgraph.Coordinate) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Column >= 0 && c.Column < b.cols
}

func (b *Board) snapshotLocked() [][]gridgraph.CellState {
	out := make([][]gridgraph.CellState, b.rows)
	for r, row := range b.cells {
		out[r] = append([]gridgraph.CellState(nil), row...)
	}
	return out
}

// requestLocked issues a search over the current grid. Holding the lock
// across FindMinPath keeps request order equal to edit order.
func (b *Board) requestLocked() error {
	gen := new(uint64)
	req, err := b.cfg.finder.FindMinPath(b.start, b.end, b.snapshotLocked(), func(res pathfinder.Result) {
		b.deliver(gen, res)
	})
	if err != nil {
		b.cfg.logger.Error("board: search request rejected", slog.Any("error", err))
		return err
	}
	*gen = req.Generation()
	b.issued = *gen
	return nil
}

// deliver applies res if it answers the newest request. gen is written
// under the lock by requestLocked and read here under the same lock.
func (b *Board) deliver(gen *uint64, res pathfinder.Result) {
	b.mu.Lock()
	if *gen != b.issued {
		stale := *gen
		b.mu.Unlock()
		b.cfg.logger.Debug("board: ignoring outdated result", slog.Uint64("generation", stale))
		return
	}
	changed := b.applyLocked(res)
	b.mu.Unlock()
	b.notify(changed)
	if b.cfg.onResult != nil {
		b.cfg.onResult(res)
	}
}

func (b *Board) notify(changed []gridgraph.Coordinate) {
	if b.cfg.onChange != nil {
		b.cfg.onChange(changed)
	}
}
