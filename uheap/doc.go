// Package uheap implements a "unique" binary min-heap: an indexed priority
// queue that holds at most one item per identity.
//
// What:
//
//   - Heap[K] stores Item[K]{ID, Key} values ordered by Key (ascending).
//   - An identity→position index gives O(1) Lookup and Contains.
//   - InsertOrReplace overwrites the stored item for an existing ID in place
//     and restores the heap from that slot, which is how decrease-key is
//     expressed without a separate removal.
//
// Why:
//
//   - Dijkstra-style searches need the current best tentative distance for a
//     vertex before deciding whether a relaxation improves it. The lazy
//     "push duplicates" strategy used by container/heap based queues cannot
//     answer that question in O(1).
//
// Complexity:
//
//   - PeekMin, Lookup, Contains, Len: O(1).
//   - InsertOrReplace, ExtractMin:    O(log n).
//   - Memory:                         O(n) for the array and the index.
//
// Ordering:
//
//   - Strict order by Key using "<". Ties are broken by array position, so
//     the extraction order is fully determined by the sequence of calls.
//   - NaN keys are rejected (panic with ErrNaNKey): they would make "<"
//     inconsistent and silently corrupt the heap.
//
// Thread safety:
//
//   - Heap is not safe for concurrent use. A single search owns its heap.
package uheap
