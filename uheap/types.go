package uheap

import "errors"

// ErrNaNKey is the panic value used when an Item with a NaN key is inserted.
var ErrNaNKey = errors.New("uheap: item key is NaN")

// ErrCorrupt indicates that the heap or its index violate an invariant.
// It is only produced by the internal consistency checker.
var ErrCorrupt = errors.New("uheap: heap invariant violated")

// Item is a single heap entry: a stable identity and its ordering key.
type Item[K comparable] struct {
	ID  K       // identity; unique within a Heap
	Key float64 // ordering key; smaller keys are extracted first
}

// Heap is an indexed binary min-heap holding at most one Item per ID.
// The zero value is not usable; construct with New or NewWithCapacity.
type Heap[K comparable] struct {
	items     []Item[K]
	positions map[K]int
}
