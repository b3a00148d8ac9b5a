package weight

import "math"

// Int8Ops implements Ops[int8].
type Int8Ops struct{}

func (Int8Ops) Zero() int8                { return 0 }
func (Int8Ops) MaxVal() int8              { return math.MaxInt8 }
func (Int8Ops) Add(a, b int8) int8        { return a + b }
func (Int8Ops) Sub(a, b int8) int8        { return a - b }
func (Int8Ops) Neg(a int8) int8           { return -a }
func (Int8Ops) Less(a, b int8) bool       { return a < b }
func (Int8Ops) ToF64(a int8) float64      { return float64(a) }
func (Int8Ops) FromF64(f float64) int8    { return int8(math.Round(f)) }
func (Int8Ops) RoundUp(self, floor int8) int8 { return self } // no-op: integer arithmetic is exact
func (Int8Ops) NumBits() int              { return 8 }
func (Int8Ops) RadixDistance(key, top int8) int {
	return radixDistanceBits(uint64(uint8(key)^0x80), uint64(uint8(top)^0x80))
}

// Int16Ops implements Ops[int16].
type Int16Ops struct{}

func (Int16Ops) Zero() int16                  { return 0 }
func (Int16Ops) MaxVal() int16                { return math.MaxInt16 }
func (Int16Ops) Add(a, b int16) int16         { return a + b }
func (Int16Ops) Sub(a, b int16) int16         { return a - b }
func (Int16Ops) Neg(a int16) int16            { return -a }
func (Int16Ops) Less(a, b int16) bool         { return a < b }
func (Int16Ops) ToF64(a int16) float64        { return float64(a) }
func (Int16Ops) FromF64(f float64) int16      { return int16(math.Round(f)) }
func (Int16Ops) RoundUp(self, floor int16) int16 { return self }
func (Int16Ops) NumBits() int                 { return 16 }
func (Int16Ops) RadixDistance(key, top int16) int {
	return radixDistanceBits(uint64(uint16(key)^0x8000), uint64(uint16(top)^0x8000))
}

// Int32Ops implements Ops[int32].
type Int32Ops struct{}

func (Int32Ops) Zero() int32                  { return 0 }
func (Int32Ops) MaxVal() int32                { return math.MaxInt32 }
func (Int32Ops) Add(a, b int32) int32         { return a + b }
func (Int32Ops) Sub(a, b int32) int32         { return a - b }
func (Int32Ops) Neg(a int32) int32            { return -a }
func (Int32Ops) Less(a, b int32) bool         { return a < b }
func (Int32Ops) ToF64(a int32) float64        { return float64(a) }
func (Int32Ops) FromF64(f float64) int32      { return int32(math.Round(f)) }
func (Int32Ops) RoundUp(self, floor int32) int32 { return self }
func (Int32Ops) NumBits() int                 { return 32 }
func (Int32Ops) RadixDistance(key, top int32) int {
	return radixDistanceBits(uint64(uint32(key)^0x80000000), uint64(uint32(top)^0x80000000))
}

// Int64Ops implements Ops[int64].
type Int64Ops struct{}

func (Int64Ops) Zero() int64                  { return 0 }
func (Int64Ops) MaxVal() int64                { return math.MaxInt64 }
func (Int64Ops) Add(a, b int64) int64         { return a + b }
func (Int64Ops) Sub(a, b int64) int64         { return a - b }
func (Int64Ops) Neg(a int64) int64            { return -a }
func (Int64Ops) Less(a, b int64) bool         { return a < b }
func (Int64Ops) ToF64(a int64) float64        { return float64(a) }
func (Int64Ops) FromF64(f float64) int64      { return int64(math.Round(f)) }
func (Int64Ops) RoundUp(self, floor int64) int64 { return self }
func (Int64Ops) NumBits() int                 { return 64 }
func (Int64Ops) RadixDistance(key, top int64) int {
	return radixDistanceBits(uint64(key)^0x8000000000000000, uint64(top)^0x8000000000000000)
}
