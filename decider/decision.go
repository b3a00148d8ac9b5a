package decider

import (
	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// NodeDist is one settled node and its reduced distance from the search's
// origin (source for the one-directional deciders; for the bidirectional
// decider, backward-direction nodes are reported with Node offset by +n —
// see Decision.Df/Db and package mcmc's rebalancing code, the one place
// that offset is interpreted).
type NodeDist[T any] struct {
	Node int
	Dist T
}

// Decision is the outcome of one decider Run.
type Decision[T any] struct {
	// Rejected is true when a reduced-weight path from source to target
	// shorter than maxDistance was found: the proposed edge-weight change
	// must not be accepted.
	Rejected bool

	// Settled holds (node, distance) pairs for every node whose reduced
	// distance from the search origin was finalized during this run. Valid
	// only when !Rejected. Unordered: callers must treat it as a multiset,
	// never depend on discovery order.
	Settled []NodeDist[T]

	// Df, Db are the final forward/backward frontier distances reached by
	// the bidirectional decider when it stopped. Meaningful only for
	// Decision values produced by BiDijkstra; other deciders leave them at
	// the zero value.
	Df, Db T
}

// Decider is the shared contract for all three shortest-path deciders.
type Decider[T any, O weight.Ops[T]] interface {
	// Run decides acceptance of a proposed reduced-weight tentativeRW on
	// the edge (tail=target, head=source) being flipped: the caller invokes
	// Run(g, v, u, -tentativeRW), searching from the edge's head back to
	// its tail.
	Run(g *graph.Graph[T, O], source, target int, maxDistance T) Decision[T]
}
