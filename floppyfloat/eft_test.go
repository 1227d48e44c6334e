package floppyfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwoSumResidualReconstructsExactSum(t *testing.T) {
	a, b := 1.0, math.Pow(2, -60)
	c := a + b // rounds away b entirely at float64 precision
	r := twoSum(a, b, c)
	assert.NotZero(t, r)
	assert.InDelta(t, b, r, 1e-30)
}

func TestTwoSumExactWhenNoRounding(t *testing.T) {
	a, b := 1.5, 2.25
	c := a + b
	r := twoSum(a, b, c)
	assert.Zero(t, r)
}

func TestTwoSumFloat32(t *testing.T) {
	a, b := float32(1), float32(math.Pow(2, -30))
	c := a + b
	r := twoSum(a, b, c)
	assert.NotZero(t, r)
}

func TestUpMulResidualMatchesExactProduct(t *testing.T) {
	a, b := 1.0+math.Pow(2, -52), 1.0+math.Pow(2, -52)
	c := a * b
	r := upMulResidual(a, b, c)
	want := math.FMA(a, b, -c)
	assert.Equal(t, want, r)
}

func TestUpDivResidualSignMatchesExactMinusRounded(t *testing.T) {
	a, b := 1.0, 3.0
	c := a / b
	r := upDivResidual(a, b, c)
	assert.Equal(t, math.FMA(-c, b, a), r)
}

func TestUpDivResidualFlipsSignForNegativeDivisor(t *testing.T) {
	a, b := 1.0, -3.0
	c := a / b
	r := upDivResidual(a, b, c)
	assert.Equal(t, -math.FMA(-c, b, a), r)
}

func TestUpSqrtResidualSignMatchesExactMinusRounded(t *testing.T) {
	a := 2.0
	c := math.Sqrt(a)
	r := upSqrtResidual(a, c)
	assert.Equal(t, math.FMA(c, -c, a), r)
}
