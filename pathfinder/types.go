package pathfinder

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the pathfinder.
var (
	// ErrNilGrid indicates Search was called with a nil grid.
	ErrNilGrid = errors.New("pathfinder: grid is nil")

	// ErrStartOutOfBounds indicates the start coordinate is outside the grid.
	ErrStartOutOfBounds = errors.New("pathfinder: start coordinate out of bounds")

	// ErrFinishOutOfBounds indicates the finish coordinate is outside the grid.
	ErrFinishOutOfBounds = errors.New("pathfinder: finish coordinate out of bounds")

	// ErrNilCallback indicates FindMinPath was called without a continuation.
	ErrNilCallback = errors.New("pathfinder: completion callback is nil")

	// ErrCancelled indicates the search was interrupted before it finished.
	ErrCancelled = errors.New("pathfinder: search cancelled")

	// ErrBacktrackCycle indicates the parent chain looped instead of reaching
	// the start. It is logged and reported as "no path".
	ErrBacktrackCycle = errors.New("pathfinder: cycle in parent chain")
)

// Result is the outcome of one search.
type Result struct {
	// Path lists cells from start to finish inclusive; nil if unreachable
	// or if the search was cancelled before reaching finish.
	Path []gridgraph.Coordinate
	// Steps lists every cell extracted from the open set, in order.
	Steps []gridgraph.Coordinate
	// Cost is the Euclidean length of Path, 0 when Path is nil.
	Cost float64
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return r.Path != nil }

// Options configures a single Search.
//
// Interrupt – polled at the top of every extraction step; returning true
//
//	stops the search with ErrCancelled. Nil means never interrupted.
//
// Logger    – receives debug records; defaults to slog.Default().
type Options struct {
	Interrupt func() bool
	Logger    *slog.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithInterrupt installs a cancellation probe. Nil is ignored.
func WithInterrupt(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Interrupt = fn
		}
	}
}

// WithLogger sets the logger used for debug records. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no interrupt and the default logger.
func DefaultOptions() Options {
	return Options{
		Interrupt: func() bool { return false },
		Logger:    slog.Default(),
	}
}

// RequestState is the lifecycle state of a Finder request.
type RequestState int32

const (
	// Running covers searching and waiting for delivery on the dispatcher.
	Running RequestState = iota
	// Completed means the continuation was invoked.
	Completed
	// Cancelled means a newer request (or Cancel) superseded this one; its
	// continuation will never run.
	Cancelled
)

// String returns the state name.
func (s RequestState) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
