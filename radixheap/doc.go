// Package radixheap implements a monotone radix heap: a min-priority queue
// whose minimum key never decreases over the lifetime of a run. Dijkstra
// under non-negative edge weights pops keys in non-decreasing order, so a
// monotone heap never needs decrease-key and can bucket pending entries by
// their high-bit distance to the current floor instead of maintaining a
// binary-heap invariant.
//
// The heap is generic over a key type T and a weight.Ops[T] witness (see
// package weight); values stored alongside each key are an independent type
// parameter V.
//
// Lifecycle: New allocates NumBits(T)+1 buckets once; Clear resets top to
// zero and empties every bucket for reuse across MCMC steps without
// reallocating. Push requires key>=top. Pop removes and returns the
// minimum; when that empties bucket 0, refill() relocates the next
// non-empty bucket's contents into lower-indexed buckets by recomputed
// radix distance to the new top.
package radixheap
