package graph

import (
	"fmt"
	"sort"

	"github.com/negedge/graphsampler/weight"
)

// InputEdge is a caller-supplied edge used only at construction time.
type InputEdge[T any] struct {
	Source int
	Target int
	Weight T
}

// edgeRecord is the canonical, mutable representation of one edge. The
// forward CSR is simply this slice kept sorted by Source: edges[idx] IS
// node Source's idx-th out-edge, so idx doubles as the edge's stable
// identity throughout the graph's lifetime.
type edgeRecord[T any] struct {
	source int
	target int
	weight T
}

// Graph is a directed graph over nodes [0,n) with m mutable-weight edges and
// mutable per-node Johnson potentials. T is the weight representation, O its
// weight.Ops witness (see package weight).
type Graph[T any, O weight.Ops[T]] struct {
	ops O

	n int
	edges []edgeRecord[T] // sorted by source; index == stable edge id
	fwdLimits []int       // len n+1; out-edges of u are edges[fwdLimits[u]:fwdLimits[u+1]]

	hasReverse bool
	revOrder   []int // len m; edge indices sorted by target
	revLimits  []int // len n+1; in-edges of u are edges[revOrder[revLimits[u]:revLimits[u+1]]]

	potentials []T
}

// New builds a Graph over n nodes from the given edges. withReverse also
// materializes the reverse CSR (required by the bidirectional decider;
// skip it for the one-directional decider and SPFA to save memory).
//
// Complexity: O(m log m) to sort by source (and, if requested, again by
// target); O(n+m) thereafter.
func New[T any, O weight.Ops[T]](n int, edges []InputEdge[T], withReverse bool) (*Graph[T, O], error) {
	if n <= 0 {
		return nil, fmt.Errorf("graph.New: n=%d: %w", n, ErrInvalidNodeCount)
	}
	for _, e := range edges {
		if e.Source < 0 || e.Source >= n || e.Target < 0 || e.Target >= n {
			return nil, fmt.Errorf("graph.New: edge (%d,%d): %w", e.Source, e.Target, ErrEdgeEndpointOutOfRange)
		}
	}

	var ops O
	recs := make([]edgeRecord[T], len(edges))
	for i, e := range edges {
		recs[i] = edgeRecord[T]{source: e.Source, target: e.Target, weight: e.Weight}
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].source < recs[j].source })

	g := &Graph[T, O]{
		ops:        ops,
		n:          n,
		edges:      recs,
		fwdLimits:  prefixOffsets(len(recs), n, func(i int) int { return recs[i].source }),
		potentials: make([]T, n),
	}

	if withReverse {
		order := make([]int, len(recs))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool { return recs[order[i]].target < recs[order[j]].target })
		g.hasReverse = true
		g.revOrder = order
		g.revLimits = prefixOffsets(len(order), n, func(i int) int { return recs[order[i]].target })
	}

	return g, nil
}

// prefixOffsets computes an (n+1)-entry prefix-offset table over m items
// already grouped (not necessarily contiguous-safe unless pre-sorted) by
// keyOf(i) in [0,n).
func prefixOffsets(m, n int, keyOf func(i int) int) []int {
	counts := make([]int, n+1)
	for i := 0; i < m; i++ {
		counts[keyOf(i)+1]++
	}
	for i := 1; i <= n; i++ {
		counts[i] += counts[i-1]
	}
	return counts
}

// NumNodes returns n.
func (g *Graph[T, O]) NumNodes() int { return g.n }

// NumEdges returns m.
func (g *Graph[T, O]) NumEdges() int { return len(g.edges) }

// HasReverse reports whether reverse (in-neighbor) adjacency was built.
func (g *Graph[T, O]) HasReverse() bool { return g.hasReverse }

// EdgeSource returns edge idx's source node.
func (g *Graph[T, O]) EdgeSource(idx int) int { return g.edges[idx].source }

// EdgeTarget returns edge idx's target node.
func (g *Graph[T, O]) EdgeTarget(idx int) int { return g.edges[idx].target }

// EdgeWeight returns edge idx's current weight.
func (g *Graph[T, O]) EdgeWeight(idx int) T { return g.edges[idx].weight }

// SetEdgeWeight overwrites edge idx's weight. Both the forward and reverse
// views index into the same edges slice rather than holding their own
// weight copies, so a single call keeps both views consistent: there is no
// separate mirror-to-reverse step and no parallel-edge disambiguation by
// old weight.
func (g *Graph[T, O]) SetEdgeWeight(idx int, w T) { g.edges[idx].weight = w }

// ReducedWeight returns w(idx) + potential(target) - potential(source).
func (g *Graph[T, O]) ReducedWeight(idx int) T {
	e := g.edges[idx]
	return g.ops.Sub(g.ops.Add(e.weight, g.potentials[e.target]), g.potentials[e.source])
}

// Potential returns node u's current Johnson potential.
func (g *Graph[T, O]) Potential(u int) T { return g.potentials[u] }

// SetPotential overwrites node u's Johnson potential.
func (g *Graph[T, O]) SetPotential(u int, p T) { g.potentials[u] = p }

// AddPotential adds delta to node u's current potential.
func (g *Graph[T, O]) AddPotential(u int, delta T) {
	g.potentials[u] = g.ops.Add(g.potentials[u], delta)
}

// ForEachOut calls fn(idx) for every out-edge index of u, in CSR order.
func (g *Graph[T, O]) ForEachOut(u int, fn func(idx int)) {
	for i := g.fwdLimits[u]; i < g.fwdLimits[u+1]; i++ {
		fn(i)
	}
}

// ForEachIn calls fn(idx) for every in-edge index of u, in reverse-CSR
// order. Panics with ErrReverseAdjacencyUnavailable if the graph was built
// with withReverse=false; this is a programmer error (wrong decider wired
// to this graph instance), not a runtime condition callers should recover
// from.
func (g *Graph[T, O]) ForEachIn(u int, fn func(idx int)) {
	if !g.hasReverse {
		panic(ErrReverseAdjacencyUnavailable)
	}
	for i := g.revLimits[u]; i < g.revLimits[u+1]; i++ {
		fn(g.revOrder[i])
	}
}

// OutRange returns the [lo,hi) half-open range of edge indices making up
// u's out-edges, for callers (the deciders) that need a plain for-loop
// instead of a callback so they can return early from the middle of a scan.
func (g *Graph[T, O]) OutRange(u int) (lo, hi int) {
	return g.fwdLimits[u], g.fwdLimits[u+1]
}

// InRange returns the [lo,hi) half-open range of reverse-CSR positions
// making up u's in-edges; pass each position through InEdgeAt to recover the
// underlying edge index. Panics with ErrReverseAdjacencyUnavailable if the
// graph was built without reverse adjacency.
func (g *Graph[T, O]) InRange(u int) (lo, hi int) {
	if !g.hasReverse {
		panic(ErrReverseAdjacencyUnavailable)
	}
	return g.revLimits[u], g.revLimits[u+1]
}

// InEdgeAt returns the edge index at reverse-CSR position i (as returned by
// InRange).
func (g *Graph[T, O]) InEdgeAt(i int) int { return g.revOrder[i] }

// IsFeasible reports whether every edge's reduced weight is non-negative,
// i.e. the Johnson-feasibility invariant currently holds.
func (g *Graph[T, O]) IsFeasible() bool {
	for i := range g.edges {
		if g.ops.Less(g.ReducedWeight(i), g.ops.Zero()) {
			return false
		}
	}
	return true
}

// Snapshot returns the current raw (u,v,w) triples in source-major CSR
// order, for serialization or for feeding a fresh SPFA ground-truth check.
func (g *Graph[T, O]) Snapshot() []InputEdge[T] {
	out := make([]InputEdge[T], len(g.edges))
	for i, e := range g.edges {
		out[i] = InputEdge[T]{Source: e.source, Target: e.target, Weight: e.weight}
	}
	return out
}
