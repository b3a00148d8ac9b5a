package gen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/negedge/graphsampler/weight"
)

func TestCompleteNoLoops(t *testing.T) {
	edges, err := Complete[int64, weight.Int64Ops](4, false)
	require.NoError(t, err)
	require.Len(t, edges, 4*3)
	for _, e := range edges {
		require.NotEqual(t, e.Source, e.Target, "unexpected self-loop %+v", e)
	}
}

func TestCompleteWithLoops(t *testing.T) {
	edges, err := Complete[int64, weight.Int64Ops](3, true)
	require.NoError(t, err)
	require.Len(t, edges, 3*3)
}

func TestCycleShape(t *testing.T) {
	edges, err := Cycle[int64, weight.Int64Ops](5)
	require.NoError(t, err)
	require.Len(t, edges, 5)
	for i, e := range edges {
		require.Equal(t, i, e.Source, "edge %d", i)
		require.Equal(t, (i+1)%5, e.Target, "edge %d", i)
	}
}

func TestGnpTooFewNodes(t *testing.T) {
	_, err := Gnp[int64, weight.Int64Ops](1, 1.0, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, ErrTooFewNodes)
}

func TestGnpNoSelfLoops(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	edges, err := Gnp[int64, weight.Int64Ops](20, 4.0, rng)
	require.NoError(t, err)
	for _, e := range edges {
		require.NotEqual(t, e.Source, e.Target, "unexpected self-loop %+v", e)
		require.GreaterOrEqual(t, e.Source, 0)
		require.Less(t, e.Source, 20)
		require.GreaterOrEqual(t, e.Target, 0)
		require.Less(t, e.Target, 20)
	}
}

func TestDirectedScaleFreeGrowsToN(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	edges, err := DirectedScaleFree[int64, weight.Int64Ops](50, 0.4, 0.3, 0.3, 1, 1, rng)
	require.NoError(t, err)

	maxNode := -1
	for _, e := range edges {
		if e.Source > maxNode {
			maxNode = e.Source
		}
		if e.Target > maxNode {
			maxNode = e.Target
		}
	}
	require.Equal(t, 49, maxNode, "growth should reach n=50")
}

func TestDirectedScaleFreeRejectsBadProbabilities(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := DirectedScaleFree[int64, weight.Int64Ops](10, 0.5, 0.5, 0.5, 1, 1, rng)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRandomHyperbolicProducesEdgesWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	avgDeg := 6.0
	edges, err := RandomHyperbolic[int64, weight.Int64Ops](60, 0.75, nil, &avgDeg, nil, 1.0, rng)
	require.NoError(t, err)
	for _, e := range edges {
		require.NotEqual(t, e.Source, e.Target, "unexpected self-loop %+v", e)
		require.GreaterOrEqual(t, e.Source, 0)
		require.Less(t, e.Source, 60)
		require.GreaterOrEqual(t, e.Target, 0)
		require.Less(t, e.Target, 60)
	}
}

func TestRandomHyperbolicRejectsBothRadiusAndAvgDeg(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := 1.0
	d := 1.0
	_, err := RandomHyperbolic[int64, weight.Int64Ops](10, 0.7, &r, &d, nil, 1.0, rng)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestFromFileParsesHeaderAndEdges(t *testing.T) {
	input := "%% comment line\n%% name graph\n1 3 2\n1 2\n2 3\n"
	n, edges, err := FromFile[int64, weight.Int64Ops](strings.NewReader(input), false)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Len(t, edges, 2)
	require.Equal(t, 0, edges[0].Source)
	require.Equal(t, 1, edges[0].Target)
	require.Equal(t, 1, edges[1].Source)
	require.Equal(t, 2, edges[1].Target)
}

func TestFromFileUndirectedDuplicatesEdges(t *testing.T) {
	input := "1 2 1\n1 2\n"
	_, edges, err := FromFile[int64, weight.Int64Ops](strings.NewReader(input), true)
	require.NoError(t, err)
	require.Len(t, edges, 2, "forward + backward")
	require.Equal(t, 0, edges[0].Source)
	require.Equal(t, 1, edges[0].Target)
	require.Equal(t, 1, edges[1].Source)
	require.Equal(t, 0, edges[1].Target)
}

func TestFromFileRejectsShortHeader(t *testing.T) {
	_, _, err := FromFile[int64, weight.Int64Ops](strings.NewReader("1 2\n"), false)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestFromFileRejectsTruncatedEdgeList(t *testing.T) {
	_, _, err := FromFile[int64, weight.Int64Ops](strings.NewReader("1 2 2\n1 2\n"), false)
	require.ErrorIs(t, err, ErrMalformedInput)
}
