package graph

import (
	"testing"

	"github.com/negedge/graphsampler/weight"
	"github.com/stretchr/testify/require"
)

func sampleEdges() []InputEdge[int64] {
	pairs := [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 1}, {2, 3}, {3, 0}, {3, 1}, {3, 4}, {4, 0}}
	weights := []int64{-1, -1, -1, -1, -1, -1, 3, 1, 0, 3}
	edges := make([]InputEdge[int64], len(pairs))
	for i, p := range pairs {
		edges[i] = InputEdge[int64]{Source: p[0], Target: p[1], Weight: weights[i]}
	}
	return edges
}

func TestNewBuildsForwardCSR(t *testing.T) {
	g, err := New[int64, weight.Int64Ops](5, sampleEdges(), false)
	require.NoError(t, err)
	require.Equal(t, 5, g.NumNodes())
	require.Equal(t, 10, g.NumEdges())

	var outOf0 []int
	g.ForEachOut(0, func(idx int) { outOf0 = append(outOf0, g.EdgeTarget(idx)) })
	require.ElementsMatch(t, []int{1, 2}, outOf0)
}

func TestReverseAdjacencyMatchesForward(t *testing.T) {
	g, err := New[int64, weight.Int64Ops](5, sampleEdges(), true)
	require.NoError(t, err)

	var into1 []int
	g.ForEachIn(1, func(idx int) { into1 = append(into1, g.EdgeSource(idx)) })
	require.ElementsMatch(t, []int{0, 2, 3}, into1)
}

func TestSetEdgeWeightVisibleBothDirections(t *testing.T) {
	g, err := New[int64, weight.Int64Ops](5, sampleEdges(), true)
	require.NoError(t, err)

	var idx0 int
	g.ForEachOut(0, func(idx int) {
		if g.EdgeTarget(idx) == 1 {
			idx0 = idx
		}
	})
	g.SetEdgeWeight(idx0, 42)
	require.Equal(t, int64(42), g.EdgeWeight(idx0))

	found := false
	g.ForEachIn(1, func(idx int) {
		if idx == idx0 {
			require.Equal(t, int64(42), g.EdgeWeight(idx))
			found = true
		}
	})
	require.True(t, found)
}

func TestReducedWeightAndFeasibility(t *testing.T) {
	g, err := New[int64, weight.Int64Ops](2, []InputEdge[int64]{{Source: 0, Target: 1, Weight: -1}}, false)
	require.NoError(t, err)
	require.False(t, g.IsFeasible())

	g.SetPotential(1, 1) // reduced weight becomes -1+1-0 = 0
	require.True(t, g.IsFeasible())
}

func TestOutOfRangeNodeCountRejected(t *testing.T) {
	_, err := New[int64, weight.Int64Ops](0, nil, false)
	require.ErrorIs(t, err, ErrInvalidNodeCount)
}

func TestEdgeEndpointOutOfRangeRejected(t *testing.T) {
	_, err := New[int64, weight.Int64Ops](2, []InputEdge[int64]{{Source: 0, Target: 5, Weight: 1}}, false)
	require.ErrorIs(t, err, ErrEdgeEndpointOutOfRange)
}
