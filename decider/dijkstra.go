package decider

import (
	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/radixheap"
	"github.com/negedge/graphsampler/weight"
)

// OneDirDijkstra is a single-directional shortest-path decider under reduced
// weights, with a zero-weight-chain chase: reduced weights are frequently
// exactly zero (especially right after an acceptance, by construction along
// the just-updated SP-tree), so long zero-weight chains are drained through
// an explicit LIFO stack rather than round-tripped through the heap.
//
// Workspace (heap, distance array, stack) is allocated once by New and
// reused across Run calls via Reset.
type OneDirDijkstra[T any, O weight.Ops[T]] struct {
	ops   O
	heap  *radixheap.Heap[T, int, O]
	dist  *distArray[T, O]
	stack []int
}

// NewOneDirDijkstra allocates decider workspace sized for an n-node graph.
func NewOneDirDijkstra[T any, O weight.Ops[T]](n int) *OneDirDijkstra[T, O] {
	var ops O
	return &OneDirDijkstra[T, O]{
		ops:  ops,
		heap: radixheap.New[T, int, O](),
		dist: newDistArray[T, O](n),
	}
}

// Run implements the Decider contract.
func (d *OneDirDijkstra[T, O]) Run(g *graph.Graph[T, O], source, target int, maxDistance T) Decision[T] {
	d.heap.Clear()
	d.dist.Reset()
	d.stack = d.stack[:0]

	if source == target {
		return Decision[T]{Rejected: true}
	}

	zero := d.ops.Zero()
	d.dist.Set(source, zero)
	d.heap.Push(zero, source)

	for !d.heap.IsEmpty() {
		popD, u, _ := d.heap.Pop()
		if d.ops.Less(d.dist.Get(u), popD) {
			continue // stale lazy-decrease-key entry
		}

		d.stack = append(d.stack, u)
		for len(d.stack) > 0 {
			x := d.stack[len(d.stack)-1]
			d.stack = d.stack[:len(d.stack)-1]
			dx := d.dist.Get(x)

			lo, hi := g.OutRange(x)
			for i := lo; i < hi; i++ {
				y := g.EdgeTarget(i)
				rw := g.ReducedWeight(i)
				// A strictly negative reduced weight violates the Johnson
				// invariant; clamp it to zero via RoundUp rather than let
				// it silently corrupt the search.
				rw = d.ops.RoundUp(rw, zero)

				if !d.ops.Less(zero, rw) && !d.ops.Less(rw, zero) {
					// rw == 0: zero-weight chain.
					if d.ops.Less(dx, d.dist.Get(y)) {
						d.dist.Set(y, dx)
						if y == target {
							if d.ops.Less(dx, maxDistance) {
								return Decision[T]{Rejected: true}
							}
						} else {
							d.stack = append(d.stack, y)
						}
					}
					continue
				}

				c := d.ops.Add(dx, rw)
				if d.ops.Less(maxDistance, c) {
					continue // c > maxDistance: no need to explore further
				}
				if y == target && d.ops.Less(c, maxDistance) {
					return Decision[T]{Rejected: true}
				}
				c = d.ops.RoundUp(c, d.heap.Top())
				if d.ops.Less(c, d.dist.Get(y)) {
					d.dist.Set(y, c)
					d.heap.Push(c, y)
				}
			}
		}
	}

	return Decision[T]{Settled: d.settled()}
}

func (d *OneDirDijkstra[T, O]) settled() []NodeDist[T] {
	touched := d.dist.Touched()
	out := make([]NodeDist[T], len(touched))
	for i, u := range touched {
		out[i] = NodeDist[T]{Node: u, Dist: d.dist.Get(u)}
	}
	return out
}
