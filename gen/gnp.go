package gen

import (
	"fmt"
	"math/rand"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// Gnp builds a directed G(n,p) Erdos-Renyi graph: each of the n*(n-1)
// ordered pairs (u,v), u!=v, is an edge independently with probability
// p = avgDeg/(n-1), clamped to [0,1].
//
// Uses a direct Bernoulli trial per candidate pair; a geometric-skip scan
// would be faster on very sparse graphs at large n but is not needed at the
// node counts this tool targets.
func Gnp[T any, O weight.Ops[T]](n int, avgDeg float64, rng *rand.Rand) ([]graph.InputEdge[T], error) {
	if n < 2 {
		return nil, fmt.Errorf("gen.Gnp: n=%d: %w", n, ErrTooFewNodes)
	}
	p := avgDeg / float64(n-1)
	if p < 0 {
		p = 0
	} else if p > 1 {
		p = 1
	}

	var ops O
	zero := ops.Zero()
	var edges []graph.InputEdge[T]
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < p {
				edges = append(edges, graph.InputEdge[T]{Source: u, Target: v, Weight: zero})
			}
		}
	}
	return edges, nil
}
