package floppyfloat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

func f16(v float32) uint16 { return uint16(float16.Fromfloat32(v)) }

func TestAdd16MatchesSoftPath(t *testing.T) {
	ctx := NewContext()
	cases := [][2]float32{{1.5, 2.25}, {-1, 1}, {0.1, 0.2}, {1000, 2000}}
	for _, c := range cases {
		a, b := f16(c[0]), f16(c[1])
		fast := ctx.Add16(a, b)
		soft := ctx.softAdd16(a, b)
		assert.Equal(t, soft, fast, "Add16(%v, %v)", c[0], c[1])
	}
}

func TestAdd16InfMinusInfInvalid(t *testing.T) {
	ctx := NewContext()
	pInf := uint16(packInf(Binary16, false))
	nInf := uint16(packInf(Binary16, true))
	result := ctx.Add16(pInf, nInf)
	assert.True(t, IsNaN(Binary16, uint64(result)))
	assert.True(t, ctx.Flags().Invalid())
}

func TestMul16OverflowToInf(t *testing.T) {
	ctx := NewContext()
	big := f16(60000)
	result := ctx.Mul16(big, big)
	assert.True(t, IsInf(Binary16, uint64(result)))
	assert.True(t, ctx.Flags().Overflow())
}

func TestDiv16ByZero(t *testing.T) {
	ctx := NewContext()
	one := f16(1)
	result := ctx.Div16(one, 0)
	assert.True(t, IsInf(Binary16, uint64(result)))
	assert.True(t, ctx.Flags().DivisionByZero())
}

func TestSqrt16NegativeInvalid(t *testing.T) {
	ctx := NewContext()
	result := ctx.Sqrt16(f16(-4))
	assert.True(t, IsNaN(Binary16, uint64(result)))
	assert.True(t, ctx.Flags().Invalid())
}

func TestSqrt16Exact(t *testing.T) {
	ctx := NewContext()
	result := ctx.Sqrt16(f16(4))
	assert.Equal(t, f16(2), result)
}

func TestFma16MatchesSoftPath(t *testing.T) {
	ctx := NewContext()
	a, b, c := f16(1.5), f16(2), f16(-1)
	fast := ctx.Fma16(a, b, c)
	soft := ctx.softFma16(a, b, c)
	assert.Equal(t, soft, fast)
}

func TestAdd16RoundTiesToAwayUsesSoftPath(t *testing.T) {
	ctx := NewContext()
	ctx.SetRounding(RoundTiesToAway)
	a, b := f16(1), f16(2)
	assert.Equal(t, ctx.softAdd16(a, b), ctx.Add16(a, b))
}
