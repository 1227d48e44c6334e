package floppyfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32ToF64WidenMatchesHost(t *testing.T) {
	ctx := NewContext()
	cases := []float32{1.5, -2.25, 0, float32(math.Inf(1)), float32(math.Inf(-1))}
	for _, v := range cases {
		got := ctx.F32ToF64(math.Float32bits(v))
		want := math.Float64bits(float64(v))
		assert.Equal(t, want, got, "F32ToF64(%v)", v)
	}
}

func TestF32ToF64WidenSubnormal(t *testing.T) {
	ctx := NewContext()
	subnormal := uint32(1) // smallest binary32 subnormal
	got := ctx.F32ToF64(subnormal)
	want := math.Float64bits(float64(math.Float32frombits(subnormal)))
	assert.Equal(t, want, got)
}

func TestF32ToF64WidenSignalingNaNSetsInvalid(t *testing.T) {
	ctx := NewContext()
	snan := uint32(0x7f800001)
	ctx.F32ToF64(snan)
	assert.True(t, ctx.Flags().Invalid())
}

func TestF64ToF32NarrowMatchesHostRounding(t *testing.T) {
	ctx := NewContext()
	cases := []float64{1.0 / 3.0, math.Pi, 1e300, 1e-300, -7.5}
	for _, v := range cases {
		got := ctx.F64ToF32(math.Float64bits(v))
		want := math.Float32bits(float32(v))
		assert.Equal(t, want, got, "F64ToF32(%v)", v)
	}
}

func TestF64ToF32NarrowOverflowToInf(t *testing.T) {
	ctx := NewContext()
	got := ctx.F64ToF32(math.Float64bits(math.MaxFloat64))
	assert.True(t, IsInf(Binary32, uint64(got)))
	assert.True(t, ctx.Flags().Overflow())
}

func TestRoundTripFloatWidenNarrowPreservesExactValues(t *testing.T) {
	ctx := NewContext()
	v := float32(3.25)
	wide := ctx.F32ToF64(math.Float32bits(v))
	back := ctx.F64ToF32(wide)
	assert.Equal(t, math.Float32bits(v), back)
}

func TestI32ToF64AndBackRoundTrip(t *testing.T) {
	ctx := NewContext()
	for _, i := range []int32{0, 1, -1, 1000000, -2147483648, 2147483647} {
		bits := ctx.I32ToF64(i)
		back := ctx.F64ToI32(bits)
		assert.Equal(t, i, back, "round-trip %d", i)
	}
}

func TestU64ToF64LargeMagnitude(t *testing.T) {
	ctx := NewContext()
	bits := ctx.U64ToF64(math.MaxUint64)
	want := math.Float64bits(float64(uint64(math.MaxUint64)))
	assert.Equal(t, want, bits)
}

func TestF64ToI32Overflow(t *testing.T) {
	ctx := NewContext()
	ctx.SetupToRiscv()
	got := ctx.F64ToI32(math.Float64bits(1e300))
	assert.Equal(t, ctx.i32.MaxLimit, got)
	assert.True(t, ctx.Flags().Invalid())
}

func TestF64ToI32NegativeOverflow(t *testing.T) {
	ctx := NewContext()
	ctx.SetupToRiscv()
	got := ctx.F64ToI32(math.Float64bits(-1e300))
	assert.Equal(t, ctx.i32.MinLimit, got)
}

func TestF64ToU32NegativeIsInvalid(t *testing.T) {
	ctx := NewContext()
	ctx.SetupToRiscv()
	got := ctx.F64ToU32(math.Float64bits(-1.5))
	assert.Equal(t, ctx.u32.MinLimit, got)
	assert.True(t, ctx.Flags().Invalid())
}

func TestF64ToI32NaNUsesSentinel(t *testing.T) {
	ctx := NewContext()
	ctx.SetupToX86()
	got := ctx.F64ToI32(math.Float64bits(math.NaN()))
	assert.Equal(t, ctx.i32.NanLimit, got)
	assert.True(t, ctx.Flags().Invalid())
}

func TestF64ToI64RoundsToNearestEven(t *testing.T) {
	ctx := NewContext()
	got := ctx.F64ToI64(math.Float64bits(2.5))
	assert.Equal(t, int64(2), got)
	got = ctx.F64ToI64(math.Float64bits(3.5))
	assert.Equal(t, int64(4), got)
}

func TestF64ToI64TowardZero(t *testing.T) {
	ctx := NewContext()
	ctx.SetRounding(RoundTowardZero)
	got := ctx.F64ToI64(math.Float64bits(2.9))
	assert.Equal(t, int64(2), got)
	got = ctx.F64ToI64(math.Float64bits(-2.9))
	assert.Equal(t, int64(-2), got)
}

func TestMagOfHandlesMinInt64(t *testing.T) {
	sign, mag := magOf(math.MinInt64)
	assert.True(t, sign)
	assert.Equal(t, uint64(1)<<63, mag)
}

func TestMagOfPositiveAndZero(t *testing.T) {
	sign, mag := magOf(0)
	assert.False(t, sign)
	assert.Zero(t, mag)
	sign, mag = magOf(42)
	assert.False(t, sign)
	assert.Equal(t, uint64(42), mag)
}
