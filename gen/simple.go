package gen

import (
	"fmt"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// Complete builds the complete directed graph K_n: every ordered pair
// (u,v), u!=v, plus self-loops when loops is true.
func Complete[T any, O weight.Ops[T]](n int, loops bool) ([]graph.InputEdge[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("gen.Complete: n=%d: %w", n, ErrTooFewNodes)
	}
	var ops O
	zero := ops.Zero()
	edges := make([]graph.InputEdge[T], 0, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v || loops {
				edges = append(edges, graph.InputEdge[T]{Source: u, Target: v, Weight: zero})
			}
		}
	}
	return edges, nil
}

// Cycle builds a simple directed n-cycle 0->1->...->(n-1)->0.
func Cycle[T any, O weight.Ops[T]](n int) ([]graph.InputEdge[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("gen.Cycle: n=%d: %w", n, ErrTooFewNodes)
	}
	var ops O
	zero := ops.Zero()
	edges := make([]graph.InputEdge[T], n)
	for u := 0; u < n; u++ {
		edges[u] = graph.InputEdge[T]{Source: u, Target: (u + 1) % n, Weight: zero}
	}
	return edges, nil
}
