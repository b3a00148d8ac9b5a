package gen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// RandomHyperbolic builds a threshold random hyperbolic graph: n points are
// sampled in the hyperbolic disk of the given radius with angular dispersion
// alpha, and an edge is added between every pair whose hyperbolic distance
// falls within radius, directed according to prob (the chance of adding
// both directions rather than one chosen uniformly at random).
//
// Exactly one of radius or avgDeg must be set; when avgDeg is given, the
// radius is solved for via binary search against the model's expected-
// degree formula (findRadiusForAvgDegree). numBands is accepted for CLI
// compatibility but unused: angular-band partitioning would cut candidate
// pairs to O(n log n), while this generator tests every pair directly in
// O(n^2), which is fine at the node counts this tool targets.
func RandomHyperbolic[T any, O weight.Ops[T]](n int, alpha float64, radius, avgDeg *float64, numBands *int, prob float64, rng *rand.Rand) ([]graph.InputEdge[T], error) {
	if n < 2 {
		return nil, fmt.Errorf("gen.RandomHyperbolic: n=%d: %w", n, ErrTooFewNodes)
	}
	if alpha <= 0 {
		return nil, fmt.Errorf("gen.RandomHyperbolic: alpha=%v must be > 0: %w", alpha, ErrInvalidParameter)
	}
	if prob < 0 || prob > 1 {
		return nil, fmt.Errorf("gen.RandomHyperbolic: prob=%v out of [0,1]: %w", prob, ErrInvalidParameter)
	}
	if (radius == nil) == (avgDeg == nil) {
		return nil, fmt.Errorf("gen.RandomHyperbolic: specify exactly one of radius and avgDeg: %w", ErrInvalidParameter)
	}

	rad := 0.0
	if radius != nil {
		rad = *radius
	} else {
		rad = findRadiusForAvgDegree(float64(n), *avgDeg, alpha)
	}

	type coord struct {
		phi, rCosh, rSinh, phiCos, phiSin float64
	}
	min := math.Nextafter(1, math.Inf(1))
	max := math.Cosh(alpha * rad)
	coords := make([]coord, n)
	for i := 0; i < n; i++ {
		phi := rng.Float64() * 2 * math.Pi
		r := math.Acosh(min+rng.Float64()*(max-min)) / alpha
		coords[i] = coord{phi: phi, rCosh: math.Cosh(r), rSinh: math.Sinh(r), phiCos: math.Cos(phi), phiSin: math.Sin(phi)}
	}
	radiusCosh := math.Cosh(rad)

	var ops O
	zero := ops.Zero()
	var edges []graph.InputEdge[T]
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := coords[i], coords[j]
			distCosh := a.rCosh*b.rCosh - a.rSinh*b.rSinh*(a.phiCos*b.phiCos+a.phiSin*b.phiSin)
			if distCosh >= radiusCosh {
				continue
			}
			switch decideEdge(rng, prob) {
			case edgeBoth:
				edges = append(edges, graph.InputEdge[T]{Source: i, Target: j, Weight: zero})
				edges = append(edges, graph.InputEdge[T]{Source: j, Target: i, Weight: zero})
			case edgeForward:
				edges = append(edges, graph.InputEdge[T]{Source: i, Target: j, Weight: zero})
			default:
				edges = append(edges, graph.InputEdge[T]{Source: j, Target: i, Weight: zero})
			}
		}
	}
	return edges, nil
}

type edgeResult int

const (
	edgeForward edgeResult = iota
	edgeBackward
	edgeBoth
)

// decideEdge orients one qualifying pair: with probability prob include
// both directions; otherwise the remaining mass splits evenly between
// forward-only and backward-only.
func decideEdge(rng *rand.Rand, prob float64) edgeResult {
	sample := rng.Float64()
	if sample <= prob {
		return edgeBoth
	}
	if sample <= (1+prob)/2 {
		return edgeForward
	}
	return edgeBackward
}

// findRadiusForAvgDegree binary-searches for the disk radius producing the
// target expected degree k under the threshold model.
func findRadiusForAvgDegree(n, k, alpha float64) float64 {
	gamma := 2*alpha + 1
	xiInv := (gamma - 2) / (gamma - 1)
	v := k * (math.Pi / 2) * xiInv * xiInv
	current := 2 * math.Log(n/v)
	lo, hi := current/2, current*2

	expectedDegree := func(rad float64) float64 {
		xi := (gamma - 1) / (gamma - 2)
		first := math.Exp(-rad / 2)
		second := math.Exp(-alpha*rad) * (alpha * (rad / 2) * ((math.Pi/4)*(1/alpha)*(1/alpha)-(math.Pi-1)*(1/alpha)+(math.Pi-2)) - 1)
		return (2 / math.Pi) * xi * xi * n * (first + second)
	}

	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		cur := expectedDegree(mid)
		if math.Abs(cur-k) < 1e-5 {
			return mid
		}
		if cur < k {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}
