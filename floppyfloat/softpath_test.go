package floppyfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftAdd64MatchesHost(t *testing.T) {
	ctx := NewContext()
	cases := [][2]float64{{1.5, 2.25}, {-1.0, 1.0}, {0.1, 0.2}, {1e300, 1e300}, {5, -5}}
	for _, c := range cases {
		a, b := math.Float64bits(c[0]), math.Float64bits(c[1])
		got := ctx.softAdd64(a, b)
		want := math.Float64bits(c[0] + c[1])
		assert.Equal(t, want, got, "softAdd64(%v, %v)", c[0], c[1])
	}
}

func TestSoftAddMatchesFastPath(t *testing.T) {
	ctx := NewContext()
	cases := [][2]float64{{1.5, 2.25}, {3.75, -1.25}, {0.1, 0.2}, {1e30, 1}, {math.Copysign(0, -1), 0.0}}
	for _, c := range cases {
		a, b := math.Float64bits(c[0]), math.Float64bits(c[1])
		fast := ctx.Add64(a, b)
		soft := ctx.softAdd64(a, b)
		assert.Equal(t, fast, soft, "Add64 vs softAdd64 for (%v, %v)", c[0], c[1])
	}
}

func TestSoftMulMatchesFastPath32(t *testing.T) {
	ctx := NewContext()
	cases := [][2]float32{{1.5, -2.5}, {0.1, 3}, {1e30, 1e30}, {1e-30, 1e-30}}
	for _, c := range cases {
		a, b := math.Float32bits(c[0]), math.Float32bits(c[1])
		fast := ctx.Mul32(a, b)
		soft := ctx.softMul32(a, b)
		assert.Equal(t, fast, soft, "Mul32 vs softMul32 for (%v, %v)", c[0], c[1])
	}
}

func TestSoftDivByZero(t *testing.T) {
	ctx := NewContext()
	one := math.Float64bits(1)
	result := ctx.softDiv64(one, 0)
	assert.True(t, IsInf(Binary64, result))
	assert.True(t, ctx.Flags().DivisionByZero())
}

func TestSoftSqrtExact(t *testing.T) {
	ctx := NewContext()
	result := ctx.softSqrt64(math.Float64bits(4))
	assert.Equal(t, math.Float64bits(2), result)
	assert.False(t, ctx.Flags().Inexact())
}

func TestSoftSqrtNegativeInvalid(t *testing.T) {
	ctx := NewContext()
	result := ctx.softSqrt64(math.Float64bits(-1))
	assert.True(t, IsNaN(Binary64, result))
	assert.True(t, ctx.Flags().Invalid())
}

func TestSoftFmaMatchesHost(t *testing.T) {
	ctx := NewContext()
	a, b, c := math.Float64bits(3), math.Float64bits(4), math.Float64bits(5)
	got := ctx.softFma64(a, b, c)
	want := math.Float64bits(math.FMA(3, 4, 5))
	assert.Equal(t, want, got)
}

func TestSoftFmaAvoidsDoubleRounding(t *testing.T) {
	ctx := NewContext()
	a := math.Float64bits(1 + math.Pow(2, -52))
	b := math.Float64bits(1 + math.Pow(2, -52))
	c := math.Float64bits(-1)
	got := ctx.softFma64(a, b, c)
	want := math.Float64bits(math.FMA(1+math.Pow(2, -52), 1+math.Pow(2, -52), -1))
	assert.Equal(t, want, got)
}

func TestScaledOperandRoundTrip(t *testing.T) {
	v := math.Float64bits(1.5)
	sign, exp, mant := scaledOperand(Binary64, v)
	assert.False(t, sign)
	assert.Equal(t, int32(1023), exp)
	assert.NotZero(t, mant)
}

func TestNormalizeSubnormalScaled(t *testing.T) {
	f := Binary32
	sign, _, mant := scaledOperand(f, 1)
	assert.False(t, sign)
	exp, normMant := normalizeSubnormalScaled(f, mant)
	assert.Less(t, exp, int32(1))
	assert.NotZero(t, normMant)
}
