// Package uheap_test contains unit tests for the indexed min-heap.
package uheap_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/gridpath/uheap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Empty heap behaviour
// ------------------------------------------------------------------------

func TestHeap_Empty(t *testing.T) {
	h := uheap.New[int]()

	_, ok := h.PeekMin()
	assert.False(t, ok, "PeekMin on empty heap")
	_, ok = h.ExtractMin()
	assert.False(t, ok, "ExtractMin on empty heap")
	_, ok = h.Lookup(7)
	assert.False(t, ok, "Lookup on empty heap")
	assert.Equal(t, 0, h.Len())
	require.NoError(t, uheap.Validate(h))
}

func TestHeap_SingleItem(t *testing.T) {
	h := uheap.New[string]()
	h.InsertOrReplace(uheap.Item[string]{ID: "a", Key: 3})

	got, ok := h.PeekMin()
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 1, h.Len(), "PeekMin must not mutate")

	got, ok = h.ExtractMin()
	require.True(t, ok)
	assert.Equal(t, uheap.Item[string]{ID: "a", Key: 3}, got)
	assert.False(t, h.Contains("a"), "identity mapping must be cleared")
	assert.Equal(t, 0, h.Len())
	require.NoError(t, uheap.Validate(h))
}

// ------------------------------------------------------------------------
// 2. Ordering
// ------------------------------------------------------------------------

func TestHeap_ExtractsInKeyOrder(t *testing.T) {
	keys := []float64{5, 1, 4, 2, 8, 0.5, 3, 7, 6}
	h := uheap.New[int]()
	for i, k := range keys {
		h.InsertOrReplace(uheap.Item[int]{ID: i, Key: k})
		require.NoError(t, uheap.Validate(h))
	}

	var got []float64
	for h.Len() > 0 {
		min, ok := h.PeekMin()
		require.True(t, ok)
		it, ok := h.ExtractMin()
		require.True(t, ok)
		assert.Equal(t, min, it, "PeekMin must agree with ExtractMin")
		got = append(got, it.Key)
		require.NoError(t, uheap.Validate(h))
	}

	want := append([]float64(nil), keys...)
	sort.Float64s(want)
	assert.Equal(t, want, got)

	_, ok := h.ExtractMin()
	assert.False(t, ok)
	_, ok = h.PeekMin()
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 3. Replace semantics
// ------------------------------------------------------------------------

func TestHeap_ReplaceDecreasesKey(t *testing.T) {
	h := uheap.New[int]()
	for i := 0; i < 6; i++ {
		h.InsertOrReplace(uheap.Item[int]{ID: i, Key: float64(10 + i)})
	}
	h.InsertOrReplace(uheap.Item[int]{ID: 5, Key: 1})
	require.NoError(t, uheap.Validate(h))
	assert.Equal(t, 6, h.Len(), "replace must not grow the heap")

	min, ok := h.PeekMin()
	require.True(t, ok)
	assert.Equal(t, 5, min.ID)
}

func TestHeap_ReplaceIncreasesKey(t *testing.T) {
	h := uheap.New[int]()
	for i := 0; i < 6; i++ {
		h.InsertOrReplace(uheap.Item[int]{ID: i, Key: float64(i)})
	}
	// The root moves down when its key grows.
	h.InsertOrReplace(uheap.Item[int]{ID: 0, Key: 100})
	require.NoError(t, uheap.Validate(h))

	min, _ := h.PeekMin()
	assert.Equal(t, 1, min.ID)

	got, ok := h.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, 100.0, got.Key)
}

func TestHeap_LookupReturnsLatestValue(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := uheap.New[int]()
	latest := map[int]float64{}

	for i := 0; i < 2000; i++ {
		id := rng.Intn(64)
		key := rng.Float64() * 100
		h.InsertOrReplace(uheap.Item[int]{ID: id, Key: key})
		latest[id] = key
	}
	require.NoError(t, uheap.Validate(h))
	require.Equal(t, len(latest), h.Len())

	for id, key := range latest {
		got, ok := h.Lookup(id)
		require.Truef(t, ok, "id %d missing", id)
		assert.Equal(t, key, got.Key)
	}

	prev := math.Inf(-1)
	for n := h.Len(); n > 0; n-- {
		it, ok := h.ExtractMin()
		require.True(t, ok)
		assert.GreaterOrEqual(t, it.Key, prev)
		assert.Equal(t, latest[it.ID], it.Key)
		prev = it.Key
	}
	assert.Equal(t, 0, h.Len())
}

// TestHeap_RandomOps interleaves inserts, replacements and extractions and
// checks the invariants after each operation.
func TestHeap_RandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := uheap.NewWithCapacity[int](16)
	shadow := map[int]float64{}

	for step := 0; step < 5000; step++ {
		if rng.Intn(3) == 0 && h.Len() > 0 {
			it, ok := h.ExtractMin()
			require.True(t, ok)
			for _, k := range shadow {
				require.LessOrEqual(t, it.Key, k)
			}
			delete(shadow, it.ID)
		} else {
			id := rng.Intn(40)
			key := float64(rng.Intn(50))
			h.InsertOrReplace(uheap.Item[int]{ID: id, Key: key})
			shadow[id] = key
		}
		require.NoError(t, uheap.Validate(h))
		require.Equal(t, len(shadow), h.Len())
	}
}

func TestHeap_Reset(t *testing.T) {
	h := uheap.New[int]()
	h.InsertOrReplace(uheap.Item[int]{ID: 1, Key: 1})
	h.InsertOrReplace(uheap.Item[int]{ID: 2, Key: 2})
	h.Reset()

	assert.Equal(t, 0, h.Len())
	assert.False(t, h.Contains(1))
	require.NoError(t, uheap.Validate(h))
}

func TestHeap_NaNKeyPanics(t *testing.T) {
	h := uheap.New[int]()
	assert.Panics(t, func() {
		h.InsertOrReplace(uheap.Item[int]{ID: 1, Key: math.NaN()})
	})
	assert.Equal(t, 0, h.Len())
}
