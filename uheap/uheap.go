package uheap

import (
	"fmt"
	"math"
)

// New returns an empty Heap.
func New[K comparable]() *Heap[K] {
	return NewWithCapacity[K](0)
}

// NewWithCapacity returns an empty Heap with room for n items before the
// backing array or the index need to grow.
func NewWithCapacity[K comparable](n int) *Heap[K] {
	if n < 0 {
		n = 0
	}
	return &Heap[K]{
		items:     make([]Item[K], 0, n),
		positions: make(map[K]int, n),
	}
}

// Len returns the number of items in the heap.
func (h *Heap[K]) Len() int { return len(h.items) }

// PeekMin returns the minimum item without removing it.
// The boolean is false when the heap is empty.
func (h *Heap[K]) PeekMin() (Item[K], bool) {
	if len(h.items) == 0 {
		return Item[K]{}, false
	}
	return h.items[0], true
}

// Lookup returns the item currently stored for id, if any. O(1).
func (h *Heap[K]) Lookup(id K) (Item[K], bool) {
	pos, ok := h.positions[id]
	if !ok {
		return Item[K]{}, false
	}
	return h.items[pos], true
}

// Contains reports whether an item with the given id is stored.
func (h *Heap[K]) Contains(id K) bool {
	_, ok := h.positions[id]
	return ok
}

// InsertOrReplace stores item. If an item with the same ID is present it is
// overwritten in place and the heap is repaired from that slot: first by
// sifting up and, if the item did not move, by sifting down. Otherwise the
// item is appended and sifted up.
//
// Panics with ErrNaNKey if item.Key is NaN.
// Complexity: O(log n).
func (h *Heap[K]) InsertOrReplace(item Item[K]) {
	if math.IsNaN(item.Key) {
		panic(fmt.Errorf("%w: id %v", ErrNaNKey, item.ID))
	}

	pos, ok := h.positions[item.ID]
	if ok {
		h.items[pos] = item
	} else {
		h.items = append(h.items, item)
		pos = len(h.items) - 1
		h.positions[item.ID] = pos
	}

	if h.up(pos) == pos {
		h.down(pos)
	}
}

// ExtractMin removes and returns the minimum item.
// The boolean is false when the heap is empty.
// Complexity: O(log n).
func (h *Heap[K]) ExtractMin() (Item[K], bool) {
	n := len(h.items)
	if n == 0 {
		return Item[K]{}, false
	}

	last := h.items[n-1]
	h.items = h.items[:n-1]
	if n == 1 {
		delete(h.positions, last.ID)
		return last, true
	}

	root := h.items[0]
	h.items[0] = last
	h.positions[last.ID] = 0
	delete(h.positions, root.ID)
	h.down(0)

	return root, true
}

// Reset removes all items, keeping allocated capacity.
func (h *Heap[K]) Reset() {
	h.items = h.items[:0]
	clear(h.positions)
}

// less orders slots i and j by key.
func (h *Heap[K]) less(i, j int) bool {
	return h.items[i].Key < h.items[j].Key
}

// swap exchanges slots i and j and keeps the index in step with the array.
func (h *Heap[K]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.positions[h.items[i].ID] = i
	h.positions[h.items[j].ID] = j
}

// up moves the item at i towards the root while it is smaller than its
// parent and returns its final position.
func (h *Heap[K]) up(i int) int {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
	return i
}

// down moves the item at i towards the leaves while a child is smaller.
func (h *Heap[K]) down(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.less(right, left) {
			smallest = right
		}
		if !h.less(smallest, i) {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// validate checks the heap property and that every index entry agrees with
// the array. It is used by tests.
func (h *Heap[K]) validate() error {
	if len(h.positions) != len(h.items) {
		return fmt.Errorf("%w: index has %d entries, array has %d", ErrCorrupt, len(h.positions), len(h.items))
	}
	for i, it := range h.items {
		if pos, ok := h.positions[it.ID]; !ok || pos != i {
			return fmt.Errorf("%w: id %v at slot %d indexed at %d (present=%v)", ErrCorrupt, it.ID, i, pos, ok)
		}
		if i > 0 && h.less(i, (i-1)/2) {
			return fmt.Errorf("%w: slot %d key %v below parent key %v", ErrCorrupt, i, it.Key, h.items[(i-1)/2].Key)
		}
	}
	return nil
}
