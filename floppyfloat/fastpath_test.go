package floppyfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd64MatchesHostRoundTiesToEven(t *testing.T) {
	ctx := NewContext()
	cases := [][2]float64{{1.5, 2.25}, {-1.0, 1.0}, {0.1, 0.2}, {1e300, 1e300}, {1, math.Inf(1)}}
	for _, c := range cases {
		a, b := math.Float64bits(c[0]), math.Float64bits(c[1])
		got := ctx.Add64(a, b)
		want := math.Float64bits(c[0] + c[1])
		assert.Equal(t, want, got, "Add64(%v, %v)", c[0], c[1])
	}
}

func TestAdd64InfMinusInfIsInvalid(t *testing.T) {
	ctx := NewContext()
	pInf := math.Float64bits(math.Inf(1))
	nInf := math.Float64bits(math.Inf(-1))
	result := ctx.Add64(pInf, nInf)
	assert.True(t, IsNaN(Binary64, result))
	assert.True(t, ctx.Flags().Invalid())
}

func TestAdd64OverflowSetsFlags(t *testing.T) {
	ctx := NewContext()
	max := math.Float64bits(math.MaxFloat64)
	result := ctx.Add64(max, max)
	assert.True(t, IsInf(Binary64, result))
	assert.False(t, IsNegative(Binary64, result))
	assert.True(t, ctx.Flags().Overflow())
	assert.True(t, ctx.Flags().Inexact())
}

func TestMul32MatchesHost(t *testing.T) {
	ctx := NewContext()
	a, b := math.Float32bits(1.5), math.Float32bits(-2.5)
	got := ctx.Mul32(a, b)
	want := math.Float32bits(1.5 * -2.5)
	assert.Equal(t, want, got)
}

func TestDiv64DivisionByZero(t *testing.T) {
	ctx := NewContext()
	one := math.Float64bits(1)
	zero := uint64(0)
	result := ctx.Div64(one, zero)
	assert.True(t, IsInf(Binary64, result))
	assert.True(t, ctx.Flags().DivisionByZero())
}

func TestSqrt64NegativeIsInvalid(t *testing.T) {
	ctx := NewContext()
	result := ctx.Sqrt64(math.Float64bits(-4))
	assert.True(t, IsNaN(Binary64, result))
	assert.True(t, ctx.Flags().Invalid())
}

func TestFma64MatchesHostFMA(t *testing.T) {
	ctx := NewContext()
	a, b, c := math.Float64bits(1.5), math.Float64bits(2.5), math.Float64bits(0.5)
	got := ctx.Fma64(a, b, c)
	want := math.Float64bits(math.FMA(1.5, 2.5, 0.5))
	assert.Equal(t, want, got)
}

func TestRoundTiesToAwayDelegatesToSoftPath(t *testing.T) {
	ctx := NewContext()
	ctx.SetRounding(RoundTiesToAway)
	a, b := math.Float64bits(1), math.Float64bits(2)
	fast := ctx.Add64(a, b)
	soft := ctx.softAdd64(a, b)
	assert.Equal(t, soft, fast)
}
