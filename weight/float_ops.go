package weight

import "math"

// Float32Ops implements Ops[float32].
type Float32Ops struct{}

func (Float32Ops) Zero() float32     { return 0 }
func (Float32Ops) MaxVal() float32   { return math.MaxFloat32 }
func (Float32Ops) Add(a, b float32) float32 { return a + b }
func (Float32Ops) Sub(a, b float32) float32 { return a - b }
func (Float32Ops) Neg(a float32) float32    { return -a }
func (Float32Ops) Less(a, b float32) bool   { return a < b }
func (Float32Ops) ToF64(a float32) float64  { return float64(a) }
func (Float32Ops) FromF64(f float64) float32 { return float32(f) }

// RoundUp clamps self up to floor. Float arithmetic along a shortest-path
// chain can drift below a previously-returned heap top by a few ULPs; the
// monotone radix heap panics on a push below its current floor, so this
// correction is load-bearing, not cosmetic.
func (Float32Ops) RoundUp(self, floor float32) float32 {
	if floor > self {
		return floor
	}
	return self
}
func (Float32Ops) NumBits() int { return 32 }
func (Float32Ops) RadixDistance(key, top float32) int {
	return radixDistanceBits(uint64(float32Key(key)), uint64(float32Key(top)))
}

// Float64Ops implements Ops[float64].
type Float64Ops struct{}

func (Float64Ops) Zero() float64     { return 0 }
func (Float64Ops) MaxVal() float64   { return math.MaxFloat64 }
func (Float64Ops) Add(a, b float64) float64 { return a + b }
func (Float64Ops) Sub(a, b float64) float64 { return a - b }
func (Float64Ops) Neg(a float64) float64    { return -a }
func (Float64Ops) Less(a, b float64) bool   { return a < b }
func (Float64Ops) ToF64(a float64) float64  { return a }
func (Float64Ops) FromF64(f float64) float64 { return f }

// RoundUp clamps self up to floor; see Float32Ops.RoundUp.
func (Float64Ops) RoundUp(self, floor float64) float64 {
	if floor > self {
		return floor
	}
	return self
}
func (Float64Ops) NumBits() int { return 64 }
func (Float64Ops) RadixDistance(key, top float64) int {
	return radixDistanceBits(float64Key(key), float64Key(top))
}
