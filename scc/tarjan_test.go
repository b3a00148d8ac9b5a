package scc

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

func sortedComponents(components [][]int) [][]int {
	out := make([][]int, len(components))
	for i, c := range components {
		cc := append([]int(nil), c...)
		sort.Ints(cc)
		out[i] = cc
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		for k := range out[i] {
			if out[i][k] != out[j][k] {
				return out[i][k] < out[j][k]
			}
		}
		return false
	})
	return out
}

func TestComponentsSingleCycle(t *testing.T) {
	edges := []graph.InputEdge[int64]{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 2, Target: 0, Weight: 1},
	}
	g, err := graph.New[int64, weight.Int64Ops](3, edges, false)
	require.NoError(t, err)

	components := Components[int64, weight.Int64Ops](g)
	require.Len(t, components, 1)
	require.Len(t, components[0], 3)
}

func TestComponentsDAGIsAllSingletons(t *testing.T) {
	edges := []graph.InputEdge[int64]{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 2, Weight: 1},
		{Source: 0, Target: 2, Weight: 1},
	}
	g, err := graph.New[int64, weight.Int64Ops](3, edges, false)
	require.NoError(t, err)

	components := Components[int64, weight.Int64Ops](g)
	require.Len(t, components, 3)
	for _, c := range components {
		require.Len(t, c, 1)
	}
}

func TestComponentsTwoDisjointCycles(t *testing.T) {
	edges := []graph.InputEdge[int64]{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 1, Target: 0, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
		{Source: 3, Target: 2, Weight: 1},
	}
	g, err := graph.New[int64, weight.Int64Ops](4, edges, false)
	require.NoError(t, err)

	components := sortedComponents(Components[int64, weight.Int64Ops](g))
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, components)
}

func TestComponentsSelfLoopIsNontrivial(t *testing.T) {
	edges := []graph.InputEdge[int64]{{Source: 0, Target: 0, Weight: 1}}
	g, err := graph.New[int64, weight.Int64Ops](1, edges, false)
	require.NoError(t, err)

	components := Components[int64, weight.Int64Ops](g)
	require.True(t, HasNontrivialComponent(components, func(int) bool { return true }))
}
