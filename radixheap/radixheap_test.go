package radixheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/negedge/graphsampler/weight"
	"github.com/stretchr/testify/require"
)

func TestPushPopOrderedByTop(t *testing.T) {
	h := New[int64, string, weight.Int64Ops]()
	h.Push(5, "a")
	h.Push(5, "b")
	h.Push(9, "c")
	h.Push(20, "d")

	var got []int64
	for !h.IsEmpty() {
		k, _, ok := h.Pop()
		require.True(t, ok)
		got = append(got, k)
	}
	require.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }))
	require.Equal(t, []int64{5, 5, 9, 20}, got)
}

func TestClearResetsTop(t *testing.T) {
	h := New[int64, int, weight.Int64Ops]()
	h.Push(100, 1)
	h.Clear()
	require.Equal(t, int64(0), h.Top())
	require.True(t, h.IsEmpty())
	h.Push(0, 2) // legal again after Clear
}

func TestMonotonicityViolationPanics(t *testing.T) {
	h := New[int64, int, weight.Int64Ops]()
	h.Push(10, 1)
	h.Pop()
	require.Panics(t, func() { h.Push(5, 2) })
}

func TestStressRandomMonotoneLegalSequence(t *testing.T) {
	h := New[float64, int, weight.Float64Ops]()
	rng := rand.New(rand.NewSource(1))
	var pushed []float64
	cur := 0.0
	const n = 100000
	for i := 0; i < n; i++ {
		cur += rng.Float64() * 3
		h.Push(cur, i)
		pushed = append(pushed, cur)
	}
	sort.Float64s(pushed)

	var got []float64
	for !h.IsEmpty() {
		k, _, ok := h.Pop()
		require.True(t, ok)
		got = append(got, k)
	}
	require.True(t, sort.Float64sAreSorted(got))
	require.Equal(t, pushed, got)
}
