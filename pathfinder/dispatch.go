package pathfinder

import (
	"context"
	"sync"
)

// Dispatcher runs continuations on the caller's execution context.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts an ordinary function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Dispatch calls d(fn).
func (d DispatcherFunc) Dispatch(fn func()) { d(fn) }

// Immediate runs continuations synchronously on the goroutine that
// finished the search.
var Immediate Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// MainQueue is an unbounded FIFO of continuations drained by the goroutine
// that owns the caller state, for example a UI update loop. Dispatch never
// blocks.
type MainQueue struct {
	mu      sync.Mutex
	pending []func()
	notify  chan struct{}
}

// NewMainQueue returns an empty queue.
func NewMainQueue() *MainQueue {
	return &MainQueue{notify: make(chan struct{}, 1)}
}

// Dispatch enqueues fn and wakes a goroutine blocked in Run.
func (q *MainQueue) Dispatch(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// Len returns the number of queued continuations.
func (q *MainQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Notify returns a channel that receives a value after Dispatch.
func (q *MainQueue) Notify() <-chan struct{} { return q.notify }

// Drain runs every continuation queued so far on the calling goroutine, in
// FIFO order, and returns how many ran. Continuations dispatched while
// draining wait for the next call.
func (q *MainQueue) Drain() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Run drains the queue until ctx is done and returns ctx.Err().
func (q *MainQueue) Run(ctx context.Context) error {
	for {
		q.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.notify:
		}
	}
}
