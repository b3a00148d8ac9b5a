package decider

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negedge/graphsampler/graph"
	"github.com/negedge/graphsampler/weight"
)

// tinyEdges builds a small fixed fixture graph: n=5, m=10, negative raw
// weights but no negative cycle.
func tinyEdges() []graph.InputEdge[int64] {
	src := []int{0, 0, 1, 1, 2, 2, 3, 3, 3, 4}
	dst := []int{1, 2, 3, 4, 1, 3, 0, 1, 4, 0}
	w := []int64{-1, -1, -1, -1, -1, -1, 3, 1, 0, 3}
	edges := make([]graph.InputEdge[int64], len(src))
	for i := range src {
		edges[i] = graph.InputEdge[int64]{Source: src[i], Target: dst[i], Weight: w[i]}
	}
	return edges
}

// feasiblePotentials runs plain Bellman-Ford from a virtual source adjacent
// to every node at distance 0 and installs the negated distances as
// potentials, so every reduced weight becomes non-negative and the
// Dijkstra-based deciders can run on a graph whose raw weights are negative.
func feasiblePotentials(t *testing.T, g *graph.Graph[int64, weight.Int64Ops]) {
	t.Helper()
	n := g.NumNodes()
	dist := make([]int64, n)
	for round := 0; round < n; round++ {
		changed := false
		for i := 0; i < g.NumEdges(); i++ {
			u, v, w := g.EdgeSource(i), g.EdgeTarget(i), g.EdgeWeight(i)
			if dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	for u := 0; u < n; u++ {
		g.SetPotential(u, -dist[u])
	}
	require.True(t, g.IsFeasible())
}

// rawDistRow runs the one-directional decider from source with no target and
// no distance bound, then converts the reduced distances it settled back to
// raw ones: d_raw(s,t) = d_reduced(s,t) - potential(t) + potential(s).
func rawDistRow(t *testing.T, g *graph.Graph[int64, weight.Int64Ops], source int) []int64 {
	t.Helper()
	d := NewOneDirDijkstra[int64, weight.Int64Ops](g.NumNodes())
	dec := d.Run(g, source, -1, weight.Int64Ops{}.MaxVal())
	require.False(t, dec.Rejected)
	row := make([]int64, g.NumNodes())
	for i := range row {
		row[i] = weight.Int64Ops{}.MaxVal()
	}
	for _, nd := range dec.Settled {
		row[nd.Node] = nd.Dist - g.Potential(nd.Node) + g.Potential(source)
	}
	return row
}

// TestDistanceMatrixTinyGraph checks the raw-weight
// distance matrix of the fixed 5-node graph, recovered through reduced-weight
// Dijkstra runs under Johnson potentials.
func TestDistanceMatrixTinyGraph(t *testing.T) {
	g, err := graph.New[int64, weight.Int64Ops](5, tinyEdges(), false)
	require.NoError(t, err)
	feasiblePotentials(t, g)

	want := [][]int64{
		{0, -2, -1, -3, -3},
		{2, 0, 1, -1, -1},
		{1, -1, 0, -2, -2},
		{3, 1, 2, 0, 0},
		{3, 1, 2, 0, 0},
	}
	for source := 0; source < 5; source++ {
		got := rawDistRow(t, g, source)
		require.Equal(t, want[source], got, "source=%d", source)
	}
}

// TestSourceEqualsTargetRejected covers the source==target boundary
// behavior across all three deciders.
func TestSourceEqualsTargetRejected(t *testing.T) {
	g, err := graph.New[int64, weight.Int64Ops](5, tinyEdges(), true)
	require.NoError(t, err)
	feasiblePotentials(t, g)

	one := NewOneDirDijkstra[int64, weight.Int64Ops](5)
	require.True(t, one.Run(g, 2, 2, 100).Rejected)

	bi := NewBiDijkstra[int64, weight.Int64Ops](5)
	require.True(t, bi.Run(g, 2, 2, 100).Rejected)

	spfa := NewSPFA[int64, weight.Int64Ops](5)
	require.True(t, spfa.Run(g, 2, 2, 100).Rejected)
}

// TestAllZeroReducedWeightsRejected covers the boundary behavior on a
// strongly connected graph whose reduced weights are all zero: any
// source != target pair with a positive bound must be rejected (the
// zero-length path plus the flipped edge's reduced weight of -1 closes a
// negative cycle).
func TestAllZeroReducedWeightsRejected(t *testing.T) {
	n := 6
	edges := make([]graph.InputEdge[int64], n)
	for i := 0; i < n; i++ {
		edges[i] = graph.InputEdge[int64]{Source: i, Target: (i + 1) % n, Weight: 0}
	}
	g, err := graph.New[int64, weight.Int64Ops](n, edges, true)
	require.NoError(t, err)

	one := NewOneDirDijkstra[int64, weight.Int64Ops](n)
	bi := NewBiDijkstra[int64, weight.Int64Ops](n)
	spfa := NewSPFA[int64, weight.Int64Ops](n)
	for s := 0; s < n; s++ {
		for tt := 0; tt < n; tt++ {
			if s == tt {
				continue
			}
			require.True(t, one.Run(g, s, tt, 1).Rejected, "one-dir s=%d t=%d", s, tt)
			require.True(t, bi.Run(g, s, tt, 1).Rejected, "bi-dir s=%d t=%d", s, tt)
			require.True(t, spfa.Run(g, s, tt, 1).Rejected, "spfa s=%d t=%d", s, tt)
		}
	}
}

// TestDeciderAgreement checks that all three deciders agree on a spread of
// (source,target,maxDistance) queries over the fixture graph under feasible
// potentials, the property --bftest enforces at runtime.
func TestDeciderAgreement(t *testing.T) {
	g, err := graph.New[int64, weight.Int64Ops](5, tinyEdges(), true)
	require.NoError(t, err)
	feasiblePotentials(t, g)

	one := NewOneDirDijkstra[int64, weight.Int64Ops](5)
	bi := NewBiDijkstra[int64, weight.Int64Ops](5)
	spfa := NewSPFA[int64, weight.Int64Ops](5)

	for source := 0; source < 5; source++ {
		for target := 0; target < 5; target++ {
			if source == target {
				continue
			}
			for _, maxD := range []int64{0, 1, 2, 3, 5, 8} {
				a := one.Run(g, source, target, maxD).Rejected
				b := bi.Run(g, source, target, maxD).Rejected
				c := spfa.Run(g, source, target, maxD).Rejected
				require.Equal(t, a, b, "one-dir vs bi-dir source=%d target=%d max=%d", source, target, maxD)
				require.Equal(t, a, c, "one-dir vs spfa source=%d target=%d max=%d", source, target, maxD)
			}
		}
	}
}
