package floppyfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeFormatDerivedFields(t *testing.T) {
	assert.Equal(t, uint64(0x8000000000000000), Binary64.SignMask)
	assert.Equal(t, uint32(2047), Binary64.MaxExp)
	assert.Equal(t, uint64(1)<<52, Binary64.HiddenBit)
	assert.Equal(t, uint64(1)<<51, Binary64.QuietBit)
	assert.Equal(t, uint(3), Binary64.RoundBits)
}

func TestWidePartners(t *testing.T) {
	assert.Equal(t, Binary32, Binary16.Wide())
	assert.Equal(t, Binary64, Binary32.Wide())
}

func TestWidePanicsForBinary64(t *testing.T) {
	assert.Panics(t, func() { Binary64.Wide() })
}

func TestDecodeClassifiesNormal(t *testing.T) {
	d := decode(Binary64, math.Float64bits(1.5))
	assert.Equal(t, classNormal, d.cls)
	assert.False(t, d.sign)
	assert.Equal(t, int32(0), d.exp)
}

func TestDecodeClassifiesSubnormal(t *testing.T) {
	d := decode(Binary64, 1)
	assert.Equal(t, classSubnormal, d.cls)
	assert.Equal(t, int32(1-1023), d.exp)
}

func TestDecodeClassifiesZero(t *testing.T) {
	d := decode(Binary64, 0)
	assert.Equal(t, classZero, d.cls)
	d = decode(Binary64, Binary64.SignMask)
	assert.Equal(t, classZero, d.cls)
	assert.True(t, d.sign)
}

func TestDecodeClassifiesInfAndNaN(t *testing.T) {
	assert.Equal(t, classInfinity, decode(Binary64, math.Float64bits(math.Inf(1))).cls)
	assert.Equal(t, classQuietNaN, decode(Binary64, math.Float64bits(math.NaN())).cls)
	assert.Equal(t, classSignalingNaN, decode(Binary64, 0x7ff0000000000001).cls)
}

func TestIsNaNBitsAndIsSNaNBits(t *testing.T) {
	qnan := math.Float64bits(math.NaN())
	snan := uint64(0x7ff0000000000001)
	assert.True(t, isNaNBits(Binary64, qnan))
	assert.False(t, isSNaNBits(Binary64, qnan))
	assert.True(t, isNaNBits(Binary64, snan))
	assert.True(t, isSNaNBits(Binary64, snan))
}

func TestIsInfBits(t *testing.T) {
	assert.True(t, isInfBits(Binary64, math.Float64bits(math.Inf(-1))))
	assert.False(t, isInfBits(Binary64, math.Float64bits(1.0)))
}

func TestIsZeroBitsBothSigns(t *testing.T) {
	assert.True(t, isZeroBits(Binary64, 0))
	assert.True(t, isZeroBits(Binary64, Binary64.SignMask))
	assert.False(t, isZeroBits(Binary64, 1))
}

func TestQuietedBitsPreservesPayloadAndSign(t *testing.T) {
	snan := uint64(0x7ff0000000000001) | Binary64.SignMask
	q := quietedBits(Binary64, snan)
	assert.True(t, isNaNBits(Binary64, q))
	assert.False(t, isSNaNBits(Binary64, q))
	assert.Equal(t, snan&Binary64.SignMask, q&Binary64.SignMask)
	assert.Equal(t, snan&(Binary64.SigMask&^Binary64.QuietBit), q&(Binary64.SigMask&^Binary64.QuietBit))
}
