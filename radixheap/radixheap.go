package radixheap

import (
	"fmt"

	"github.com/negedge/graphsampler/weight"
)

// entry is one (key, value) pair held in a bucket.
type entry[T any, V any] struct {
	key T
	val V
}

// Heap is a monotone radix heap keyed by T (dispatched via O, a
// weight.Ops[T] witness) carrying values of type V.
type Heap[T any, V any, O weight.Ops[T]] struct {
	ops     O
	top     T
	length  int
	buckets [][]entry[T, V]
}

// New allocates a Heap with NumBits(T)+1 buckets, ready for use.
func New[T any, V any, O weight.Ops[T]]() *Heap[T, V, O] {
	var ops O
	h := &Heap[T, V, O]{
		ops:     ops,
		buckets: make([][]entry[T, V], ops.NumBits()+1),
	}
	h.Clear()
	return h
}

// Clear resets the heap to empty with top set back to the zero weight,
// reusing the already-allocated bucket slices (truncated, not reallocated).
func (h *Heap[T, V, O]) Clear() {
	h.top = h.ops.Zero()
	h.length = 0
	for i := range h.buckets {
		h.buckets[i] = h.buckets[i][:0]
	}
}

// Len reports the number of entries currently held.
func (h *Heap[T, V, O]) Len() int { return h.length }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[T, V, O]) IsEmpty() bool { return h.length == 0 }

// Top returns the current floor: the minimum key any future Push may carry.
func (h *Heap[T, V, O]) Top() T { return h.top }

// Push inserts (key, val). key must be >= Top(); a violation is a logic bug
// (see ErrMonotonicityViolation) and panics rather than returning an error.
func (h *Heap[T, V, O]) Push(key T, val V) {
	if h.ops.Less(key, h.top) {
		panic(fmt.Errorf("%w: key=%v top=%v", ErrMonotonicityViolation, key, h.top))
	}
	idx := h.ops.RadixDistance(key, h.top)
	h.buckets[idx] = append(h.buckets[idx], entry[T, V]{key: key, val: val})
	h.length++
}

// Pop removes and returns the minimum (key, val) pair. ok is false when the
// heap is empty.
func (h *Heap[T, V, O]) Pop() (key T, val V, ok bool) {
	if h.length == 0 {
		return key, val, false
	}
	if len(h.buckets[0]) == 0 {
		h.refill()
	}
	b := h.buckets[0]
	n := len(b)
	e := b[n-1]
	h.buckets[0] = b[:n-1]
	h.length--
	return e.key, e.val, true
}

// refill locates the lowest-indexed non-empty bucket beyond 0, promotes its
// minimum key to the new top, and redistributes every entry in that bucket
// into strictly lower-indexed buckets by radix distance to the new top.
func (h *Heap[T, V, O]) refill() {
	i := 1
	for i < len(h.buckets) && len(h.buckets[i]) == 0 {
		i++
	}
	if i >= len(h.buckets) {
		// No non-empty bucket beyond 0 and bucket 0 was already empty:
		// the heap is empty; Pop's length check makes this unreachable.
		return
	}

	// Find the minimum key within bucket i; it becomes the new top.
	src := h.buckets[i]
	minKey := src[0].key
	for _, e := range src[1:] {
		if h.ops.Less(e.key, minKey) {
			minKey = e.key
		}
	}
	h.top = minKey

	// Drain bucket i, re-bucketing every entry by its distance to the new
	// top. Every resulting index is strictly below i because the new top
	// is itself drawn from bucket i.
	h.buckets[i] = src[:0]
	for _, e := range src {
		idx := h.ops.RadixDistance(e.key, h.top)
		h.buckets[idx] = append(h.buckets[idx], e)
	}
}
