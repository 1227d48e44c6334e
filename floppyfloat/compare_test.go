package floppyfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq64MatchesHostForOrdinaryValues(t *testing.T) {
	ctx := NewContext()
	cases := [][2]float64{{1.5, 1.5}, {1.5, 2.5}, {math.Copysign(0, -1), 0.0}, {-1, 1}}
	for _, c := range cases {
		a, b := math.Float64bits(c[0]), math.Float64bits(c[1])
		assert.Equal(t, c[0] == c[1], ctx.Eq64(a, b), "Eq64(%v, %v)", c[0], c[1])
	}
}

func TestLtLe64MatchHostOrdering(t *testing.T) {
	ctx := NewContext()
	cases := [][2]float64{{1, 2}, {2, 1}, {-5, -3}, {0, math.Copysign(0, -1)}, {1e300, 1e301}}
	for _, c := range cases {
		a, b := math.Float64bits(c[0]), math.Float64bits(c[1])
		assert.Equal(t, c[0] < c[1], ctx.Lt64(a, b), "Lt64(%v, %v)", c[0], c[1])
		assert.Equal(t, c[0] <= c[1], ctx.Le64(a, b), "Le64(%v, %v)", c[0], c[1])
	}
}

func TestQuietEqWithQuietNaNNoInvalid(t *testing.T) {
	ctx := NewContext()
	qnan := math.Float64bits(math.NaN())
	one := math.Float64bits(1)
	assert.False(t, ctx.Eq64(qnan, one))
	assert.False(t, ctx.Flags().Invalid())
}

func TestQuietEqWithSignalingNaNSetsInvalid(t *testing.T) {
	ctx := NewContext()
	snan := uint64(0x7ff0000000000001)
	one := math.Float64bits(1)
	assert.False(t, ctx.Eq64(snan, one))
	assert.True(t, ctx.Flags().Invalid())
}

func TestSignalingEqWithQuietNaNSetsInvalid(t *testing.T) {
	ctx := NewContext()
	qnan := math.Float64bits(math.NaN())
	one := math.Float64bits(1)
	assert.False(t, ctx.EqSignaling64(qnan, one))
	assert.True(t, ctx.Flags().Invalid())
}

func TestComparesAlwaysFalseWithNaN(t *testing.T) {
	ctx := NewContext()
	qnan := math.Float64bits(math.NaN())
	one := math.Float64bits(1)
	assert.False(t, ctx.Lt64(qnan, one))
	assert.False(t, ctx.Le64(qnan, one))
	assert.False(t, ctx.Lt64(one, qnan))
}

func TestCompareValuesZeroSignAgnostic(t *testing.T) {
	assert.Equal(t, 0, compareValues(Binary64, 0, Binary64.SignMask))
}

func TestCompare16And32TypedWrappers(t *testing.T) {
	ctx := NewContext()
	a32, b32 := math.Float32bits(1.5), math.Float32bits(2.5)
	assert.True(t, ctx.Lt32(a32, b32))
	assert.False(t, ctx.Eq32(a32, b32))
}
