package weight

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripF64(t *testing.T) {
	var o Int64Ops
	require.Equal(t, int64(3), o.FromF64(o.ToF64(3)))

	var fo Float64Ops
	require.Equal(t, 3.5, fo.FromF64(fo.ToF64(3.5)))
}

func TestRoundUpIdentity(t *testing.T) {
	var fo Float64Ops
	require.Equal(t, 5.0, fo.RoundUp(5.0, 5.0))
	require.Equal(t, 5.0, fo.RoundUp(5.0, 3.0))
	require.Equal(t, 7.0, fo.RoundUp(5.0, 7.0))

	var io Int64Ops
	require.Equal(t, int64(5), io.RoundUp(5, 9)) // no-op for integers
}

func TestRadixDistanceMonotoneOrder(t *testing.T) {
	var o Float64Ops
	require.Equal(t, 0, o.RadixDistance(1.0, 1.0))
	require.Greater(t, o.RadixDistance(100.0, 1.0), 0)

	var io Int64Ops
	require.Equal(t, 0, io.RadixDistance(-5, -5))
	require.Greater(t, io.RadixDistance(-5, 5), 0)
}

func TestParseKindPrefixTolerant(t *testing.T) {
	k, err := ParseKind("f")
	require.NoError(t, err)
	require.Equal(t, KindF32, k) // first declared match

	k, err = ParseKind("i64")
	require.NoError(t, err)
	require.Equal(t, KindI64, k)

	_, err = ParseKind("bogus")
	require.Error(t, err)
}
