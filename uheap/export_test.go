package uheap

// Validate exposes the internal consistency checker to uheap_test.
func Validate[K comparable](h *Heap[K]) error { return h.validate() }
