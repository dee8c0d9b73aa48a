package pathfinder

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Finder runs one search at a time in the background. A new request
// supersedes the previous one. Finder is safe for concurrent use.
type Finder struct {
	mu         sync.Mutex
	generation atomic.Uint64 // written under mu, read lock-free by searches
	current    *Request
	dispatcher Dispatcher
	logger     *slog.Logger
	wg         sync.WaitGroup
}

// FinderOption configures a Finder.
type FinderOption func(*Finder)

// WithDispatcher sets the execution context on which continuations run.
// The default runs them on the search goroutine. Nil is ignored.
func WithDispatcher(d Dispatcher) FinderOption {
	return func(f *Finder) {
		if d != nil {
			f.dispatcher = d
		}
	}
}

// WithFinderLogger sets the Finder's logger. Nil is ignored.
func WithFinderLogger(l *slog.Logger) FinderOption {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFinder returns an idle Finder.
func NewFinder(opts ...FinderOption) *Finder {
	f := &Finder{
		dispatcher: Immediate,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Request is the handle of one FindMinPath call.
type Request struct {
	generation uint64
	state      atomic.Int32
	done       chan struct{}
}

func newRequest(gen uint64) *Request {
	return &Request{generation: gen, done: make(chan struct{})}
}

// Generation returns the request's generation number.
func (r *Request) Generation() uint64 { return r.generation }

// State returns the current lifecycle state.
func (r *Request) State() RequestState { return RequestState(r.state.Load()) }

// Done is closed once the request is Cancelled, or Completed and its
// continuation has returned.
func (r *Request) Done() <-chan struct{} { return r.done }

// cancel moves a running request to Cancelled. It reports whether this
// call made the transition.
func (r *Request) cancel() bool {
	if r.state.CompareAndSwap(int32(Running), int32(Cancelled)) {
		close(r.done)
		return true
	}
	return false
}

// claim moves a running request to Completed. The caller that wins the
// claim must run the continuation and then close done.
func (r *Request) claim() bool {
	return r.state.CompareAndSwap(int32(Running), int32(Completed))
}

// FindMinPath starts a background search from start to finish over a
// snapshot of cells and returns its handle. Any request still running is
// cancelled first; its continuation will never be invoked.
//
// onComplete is called exactly once, through the Finder's Dispatcher, if
// the search completes before being superseded.
//
// Contract violations fail synchronously before any goroutine starts:
// ErrNilCallback, gridgraph.ErrEmptyGrid, gridgraph.ErrNonRectangular,
// gridgraph.ErrUnknownState, ErrStartOutOfBounds, ErrFinishOutOfBounds.
func (f *Finder) FindMinPath(
	start, finish gridgraph.Coordinate,
	cells [][]gridgraph.CellState,
	onComplete func(Result),
) (*Request, error) {
	if onComplete == nil {
		return nil, ErrNilCallback
	}
	g, err := gridgraph.NewGrid(cells)
	if err != nil {
		return nil, err
	}
	if err = checkEndpoints(g, start, finish); err != nil {
		return nil, err
	}

	f.mu.Lock()
	req := newRequest(f.generation.Add(1))
	prev := f.current
	f.current = req
	if prev != nil && prev.cancel() {
		f.logger.Debug("pathfinder: request superseded",
			slog.Uint64("generation", prev.generation),
			slog.Uint64("by", req.generation))
	}
	f.wg.Add(1)
	f.mu.Unlock()

	f.logger.Debug("pathfinder: request issued",
		slog.Uint64("generation", req.generation),
		slog.String("start", start.String()),
		slog.String("finish", finish.String()),
		slog.Int("rows", g.Rows),
		slog.Int("columns", g.Columns))

	go f.run(req, g, start, finish, onComplete)
	return req, nil
}

// Cancel supersedes the running request, if any, without issuing a new one.
func (f *Finder) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation.Add(1)
	if f.current != nil && f.current.cancel() {
		f.logger.Debug("pathfinder: request cancelled", slog.Uint64("generation", f.current.generation))
	}
	f.current = nil
}

// Current returns the generation of the most recent request or Cancel.
func (f *Finder) Current() uint64 { return f.generation.Load() }

// Wait blocks until every background search goroutine has exited. It does
// not wait for continuations queued on a Dispatcher.
func (f *Finder) Wait() { f.wg.Wait() }

// isCurrent reports whether gen is still the newest generation.
func (f *Finder) isCurrent(gen uint64) bool { return f.generation.Load() == gen }

// run executes one search and hands a completed result to the dispatcher.
func (f *Finder) run(req *Request, g *gridgraph.Grid, start, finish gridgraph.Coordinate, onComplete func(Result)) {
	defer f.wg.Done()

	res, err := Search(g, start, finish,
		WithInterrupt(func() bool { return !f.isCurrent(req.generation) }),
		WithLogger(f.logger))
	if err != nil {
		f.logger.Debug("pathfinder: search stopped",
			slog.Uint64("generation", req.generation),
			slog.Int("steps", len(res.Steps)),
			slog.Any("error", err))
		return
	}

	f.logger.Debug("pathfinder: search finished",
		slog.Uint64("generation", req.generation),
		slog.Int("steps", len(res.Steps)),
		slog.Bool("found", res.Found()),
		slog.Float64("cost", res.Cost))

	f.dispatcher.Dispatch(func() {
		if !f.isCurrent(req.generation) {
			if req.cancel() {
				f.logger.Debug("pathfinder: dropping stale result", slog.Uint64("generation", req.generation))
			}
			return
		}
		if !req.claim() {
			return
		}
		defer close(req.done)
		onComplete(res)
	})
}
