package gen

import (
	"fmt"
	"math/rand"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// DirectedScaleFree builds a graph via the directed preferential-attachment
// process of Bollobas et al.: at each step, with probability alpha add a
// new node with an edge out to an existing node chosen proportional to
// in-degree+deltaIn; with probability beta add an edge between two existing
// nodes (source chosen proportional to out-degree+deltaOut, target
// proportional to in-degree+deltaIn); otherwise add a new node with an edge
// in from an existing node chosen proportional to out-degree+deltaOut.
//
// The CLI accepts an avg-degree flag for interface symmetry with the other
// sources, but it is not consumed by the generation process itself: alpha,
// beta and the deltas fully determine the degree distribution.
func DirectedScaleFree[T any, O weight.Ops[T]](n int, alpha, beta, gamma, deltaOut, deltaIn float64, rng *rand.Rand) ([]graph.InputEdge[T], error) {
	if n < 2 {
		return nil, fmt.Errorf("gen.DirectedScaleFree: n=%d: %w", n, ErrTooFewNodes)
	}
	if alpha+beta+gamma < 0.999 || alpha+beta+gamma > 1.001 {
		return nil, fmt.Errorf("gen.DirectedScaleFree: alpha+beta+gamma=%v, want 1: %w", alpha+beta+gamma, ErrInvalidParameter)
	}
	if deltaOut <= 0 || deltaIn <= 0 {
		return nil, fmt.Errorf("gen.DirectedScaleFree: deltaOut=%v deltaIn=%v must be > 0: %w", deltaOut, deltaIn, ErrInvalidParameter)
	}

	var ops O
	zero := ops.Zero()
	alphaPlusBeta := alpha + beta

	inDeg := make([]int, n)
	outDeg := make([]int, n)
	var edges []graph.InputEdge[T]

	chooseNode := func(curN int, deg []int, delta, sampledTimesDenom float64) int {
		cumsum := 0.0
		node := 0
		for node < curN-1 {
			cumsum += delta + float64(deg[node])
			if sampledTimesDenom < cumsum {
				break
			}
			node++
		}
		return node
	}

	curNumNodes := 1
	for curNumNodes < n {
		denomIn := float64(len(edges)) + deltaIn*float64(curNumNodes)
		denomOut := float64(len(edges)) + deltaOut*float64(curNumNodes)
		sample := rng.Float64()

		var u, v int
		switch {
		case sample < alpha:
			v = chooseNode(curNumNodes, inDeg, deltaIn, denomIn*rng.Float64())
			u = curNumNodes
			curNumNodes++
		case sample < alphaPlusBeta:
			u = chooseNode(curNumNodes, outDeg, deltaOut, denomOut*rng.Float64())
			v = chooseNode(curNumNodes, inDeg, deltaIn, denomIn*rng.Float64())
		default:
			u = chooseNode(curNumNodes, outDeg, deltaOut, denomOut*rng.Float64())
			v = curNumNodes
			curNumNodes++
		}

		outDeg[u]++
		inDeg[v]++
		edges = append(edges, graph.InputEdge[T]{Source: u, Target: v, Weight: zero})
	}

	return edges, nil
}
