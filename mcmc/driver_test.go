package mcmc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negedge/graphsampler/decider"
	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

func cycleEdges(n int) []graph.InputEdge[float64] {
	edges := make([]graph.InputEdge[float64], n)
	for i := 0; i < n; i++ {
		edges[i] = graph.InputEdge[float64]{Source: i, Target: (i + 1) % n, Weight: 1}
	}
	return edges
}

// TestCycleChainStaysFeasible: a 16-cycle, all weights +1, uniform
// proposals in [-1,1], run for 10 rounds/edge stays feasible (the sum of
// weights around the cycle is checked indirectly via HasNegativeCycle at
// the end).
func TestCycleChainStaysFeasible(t *testing.T) {
	n := 16
	g, err := graph.New[float64, weight.Float64Ops](n, cycleEdges(n), true)
	require.NoError(t, err)

	cfg := NewConfig(
		WithWeightRange(-1, 1),
		WithRoundsPerEdge(10),
		WithSeed(42),
		WithInitialWeights(InitValue, 1),
		WithAlgorithm(AlgBiDijkstra),
		WithCheck(),
	)
	d, err := NewDriver[float64, weight.Float64Ops](g, cfg, nil)
	require.NoError(t, err)

	stats, err := d.Run()
	require.NoError(t, err)
	require.Equal(t, d.Steps(), stats.Steps)
	require.False(t, decider.HasNegativeCycle[float64, weight.Float64Ops](g))
}

// TestRandomGraphChainCompletes: a small G(n,p)-style random graph, weight
// range [-1,1], 5 rounds/edge, each decider and two weight types, chain
// completes with the check and bftest modes enabled and no invariant
// violation.
func TestRandomGraphChainCompletes(t *testing.T) {
	n, avgDeg := 30, 5
	rng := rand.New(rand.NewSource(1234))
	p := float64(avgDeg) / float64(n-1)
	var raw []graph.InputEdge[float64]
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < p {
				raw = append(raw, graph.InputEdge[float64]{Source: u, Target: v, Weight: 1})
			}
		}
	}
	require.NotEmpty(t, raw)

	for _, alg := range []Algorithm{AlgDijkstra, AlgBiDijkstra, AlgBellmanFord} {
		t.Run(algName(alg), func(t *testing.T) {
			edgesF := make([]graph.InputEdge[float64], len(raw))
			copy(edgesF, raw)
			gF, err := graph.New[float64, weight.Float64Ops](n, edgesF, true)
			require.NoError(t, err)

			cfgF := NewConfig(
				WithWeightRange(-1, 1),
				WithRoundsPerEdge(5),
				WithSeed(1234),
				WithInitialWeights(InitMaximum, 0),
				WithAlgorithm(alg),
				WithCheck(),
				WithBFTest(),
			)
			dF, err := NewDriver[float64, weight.Float64Ops](gF, cfgF, nil)
			require.NoError(t, err)
			_, err = dF.Run()
			require.NoError(t, err)

			edgesI := make([]graph.InputEdge[int64], len(raw))
			for i, e := range raw {
				edgesI[i] = graph.InputEdge[int64]{Source: e.Source, Target: e.Target, Weight: int64(e.Weight)}
			}
			gI, err := graph.New[int64, weight.Int64Ops](n, edgesI, true)
			require.NoError(t, err)

			cfgI := NewConfig(
				WithWeightRange(-1, 1),
				WithRoundsPerEdge(5),
				WithSeed(1234),
				WithInitialWeights(InitMaximum, 0),
				WithAlgorithm(alg),
				WithCheck(),
				WithBFTest(),
			)
			dI, err := NewDriver[int64, weight.Int64Ops](gI, cfgI, nil)
			require.NoError(t, err)
			_, err = dI.Run()
			require.NoError(t, err)
		})
	}
}

func algName(a Algorithm) string {
	switch a {
	case AlgDijkstra:
		return "dijkstra"
	case AlgBellmanFord:
		return "bellmanford"
	default:
		return "bidijkstra"
	}
}

// TestConfigValidate covers the configuration-error boundary.
func TestConfigValidate(t *testing.T) {
	require.ErrorIs(t, NewConfig(WithWeightRange(1, 1)).Validate(), ErrInvalidWeightRange)
	require.ErrorIs(t, NewConfig(WithRoundsPerEdge(0)).Validate(), ErrInvalidRounds)
	require.NoError(t, NewConfig().Validate())
}
