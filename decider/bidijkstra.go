package decider

import (
	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/radixheap"
	"github.com/negedge/graphsampler/weight"
)

// BiDijkstra is the meet-in-the-middle bidirectional decider: a forward
// search from source and a backward search from target (following
// in-neighbors) under the same reduced weights, alternating pops one round
// at a time and rejecting as soon as a relaxation would label a node whose
// other-direction distance is still tentative and the combined length drops
// below maxDistance.
//
// Per-node state is the pair (df, db), each independently one of: unseen
// (MaxVal), a tentative-or-final distance, or the sentinel -1. Visiting
// (popping and relaxing) a node forward writes -1 into its db slot while
// preserving df; backward symmetrically writes -1 into df. The -1 both
// closes the node to the other direction's relaxations and marks, at
// collection time, which direction's distance is final. This is cheaper
// than a separate per-direction visited array.
type BiDijkstra[T any, O weight.Ops[T]] struct {
	ops     O
	negOne  T
	fwdHeap *radixheap.Heap[T, int, O]
	bwdHeap *radixheap.Heap[T, int, O]
	df      *distArray[T, O]
	db      *distArray[T, O]
}

// NewBiDijkstra allocates workspace for an n-node graph.
func NewBiDijkstra[T any, O weight.Ops[T]](n int) *BiDijkstra[T, O] {
	var ops O
	return &BiDijkstra[T, O]{
		ops:     ops,
		negOne:  ops.FromF64(-1),
		fwdHeap: radixheap.New[T, int, O](),
		bwdHeap: radixheap.New[T, int, O](),
		df:      newDistArray[T, O](n),
		db:      newDistArray[T, O](n),
	}
}

func (d *BiDijkstra[T, O]) isReal(v T) bool {
	return !d.eq(v, d.negOne) && !d.eq(v, d.ops.MaxVal())
}

func (d *BiDijkstra[T, O]) eq(a, b T) bool {
	return !d.ops.Less(a, b) && !d.ops.Less(b, a)
}

// Run implements the Decider contract. g must have been built with reverse
// adjacency (graph.New(..., withReverse=true)).
//
// Termination: after every pop the frontier sum Df+Db is checked against
// maxDistance; on stop the side that just popped is tightened to
// maxDistance-other, so the returned (Df, Db) always satisfy
// Df+Db == maxDistance. The explicit both-heaps-empty exit (with the same
// tightening) covers graphs where target is unreachable from source and
// neither frontier can grow to meet the bound.
func (d *BiDijkstra[T, O]) Run(g *graph.Graph[T, O], source, target int, maxDistance T) Decision[T] {
	d.fwdHeap.Clear()
	d.bwdHeap.Clear()
	d.df.Reset()
	d.db.Reset()

	if source == target {
		return Decision[T]{Rejected: true}
	}

	zero := d.ops.Zero()
	d.df.Set(source, zero)
	d.db.Set(target, zero)
	d.fwdHeap.Push(zero, source)
	d.bwdHeap.Push(zero, target)

	roundDf, roundDb := zero, zero

	for {
		if popD, x, ok := d.fwdHeap.Pop(); ok {
			roundDf = popD
			if !d.ops.Less(d.ops.Add(roundDf, roundDb), maxDistance) {
				roundDf = d.ops.Sub(maxDistance, roundDb)
				break
			}
			// Proceed only when this pop carries x's current label; a
			// smaller stored df means a stale entry, a stored -1 means
			// backward already visited x.
			if !d.ops.Less(d.df.Get(x), popD) {
				d.db.Set(x, d.negOne) // close x to backward; df[x] stays final
				if rejected := d.relaxForward(g, x, popD, maxDistance); rejected {
					return Decision[T]{Rejected: true}
				}
			}
		}

		if popD, y, ok := d.bwdHeap.Pop(); ok {
			roundDb = popD
			if !d.ops.Less(d.ops.Add(roundDf, roundDb), maxDistance) {
				roundDb = d.ops.Sub(maxDistance, roundDf)
				break
			}
			if !d.ops.Less(d.db.Get(y), popD) {
				d.df.Set(y, d.negOne) // close y to forward; db[y] stays final
				if rejected := d.relaxBackward(g, y, popD, maxDistance); rejected {
					return Decision[T]{Rejected: true}
				}
			}
		}

		if d.fwdHeap.IsEmpty() && d.bwdHeap.IsEmpty() {
			roundDf = d.ops.Sub(maxDistance, roundDb)
			break
		}
	}

	// Collect visited nodes only: a tentative label that was never popped is
	// not part of either shortest-path tree and must not shift a potential.
	// The two conditions below are mutually exclusive (a node is visited in
	// at most one direction), so no node is reported twice even when it was
	// labeled by both searches.
	n := g.NumNodes()
	settled := make([]NodeDist[T], 0, len(d.df.Touched())+len(d.db.Touched()))
	for _, u := range d.df.Touched() {
		if d.eq(d.db.Get(u), d.negOne) {
			settled = append(settled, NodeDist[T]{Node: u, Dist: d.df.Get(u)})
		}
	}
	for _, u := range d.db.Touched() {
		if d.eq(d.df.Get(u), d.negOne) {
			settled = append(settled, NodeDist[T]{Node: u + n, Dist: d.db.Get(u)})
		}
	}

	return Decision[T]{Settled: settled, Df: roundDf, Db: roundDb}
}

func (d *BiDijkstra[T, O]) relaxForward(g *graph.Graph[T, O], x int, dx T, maxDistance T) (rejected bool) {
	lo, hi := g.OutRange(x)
	for i := lo; i < hi; i++ {
		y := g.EdgeTarget(i)
		cost := d.ops.Add(dx, g.ReducedWeight(i))
		// The stored label, the heap key, and any later stale-pop comparison
		// must all see the same value, so round before anything else.
		cost = d.ops.RoundUp(cost, d.fwdHeap.Top())
		if !d.ops.Less(cost, d.df.Get(y)) {
			continue // not an improvement (or y already closed by backward)
		}
		if dbY := d.db.Get(y); d.isReal(dbY) && d.ops.Less(d.ops.Add(cost, dbY), maxDistance) {
			return true
		}
		d.df.Set(y, cost)
		d.fwdHeap.Push(cost, y)
	}
	return false
}

func (d *BiDijkstra[T, O]) relaxBackward(g *graph.Graph[T, O], y int, dy T, maxDistance T) (rejected bool) {
	lo, hi := g.InRange(y)
	for i := lo; i < hi; i++ {
		idx := g.InEdgeAt(i)
		x := g.EdgeSource(idx)
		cost := d.ops.Add(dy, g.ReducedWeight(idx))
		cost = d.ops.RoundUp(cost, d.bwdHeap.Top())
		if !d.ops.Less(cost, d.db.Get(x)) {
			continue
		}
		if dfX := d.df.Get(x); d.isReal(dfX) && d.ops.Less(d.ops.Add(cost, dfX), maxDistance) {
			return true
		}
		d.db.Set(x, cost)
		d.bwdHeap.Push(cost, x)
	}
	return false
}
