package floppyfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNaN(t *testing.T) {
	tests := []struct {
		name  string
		bits  uint64
		isNaN bool
		isSig bool
	}{
		{"quiet", uint64(math.Float64bits(math.NaN())), true, false},
		{"signaling", 0x7ff0000000000001, true, true},
		{"finite", uint64(math.Float64bits(1.5)), false, false},
		{"inf", uint64(math.Float64bits(math.Inf(1))), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isNaN, IsNaN(Binary64, tt.bits))
			assert.Equal(t, tt.isSig, IsSignalingNaN(Binary64, tt.bits))
			assert.Equal(t, tt.isNaN && !tt.isSig, IsQuietNaN(Binary64, tt.bits))
		})
	}
}

func TestIsInf(t *testing.T) {
	assert.True(t, IsInf(Binary32, uint64(math.Float32bits(float32(math.Inf(1))))))
	assert.True(t, IsInf(Binary32, uint64(math.Float32bits(float32(math.Inf(-1))))))
	assert.False(t, IsInf(Binary32, uint64(math.Float32bits(1.0))))
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(Binary64, 0))
	assert.True(t, IsZero(Binary64, Binary64.SignMask))
	assert.False(t, IsZero(Binary64, 1))
}

func TestIsSubnormalIsNormal(t *testing.T) {
	assert.True(t, IsSubnormal(Binary32, 1))
	assert.False(t, IsNormal(Binary32, 1))
	assert.True(t, IsNormal(Binary32, uint64(math.Float32bits(1.0))))
	assert.False(t, IsSubnormal(Binary32, uint64(math.Float32bits(1.0))))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(Binary64, uint64(math.Float64bits(1.5))))
	assert.False(t, IsFinite(Binary64, uint64(math.Float64bits(math.Inf(1)))))
	assert.False(t, IsFinite(Binary64, uint64(math.Float64bits(math.NaN()))))
}

func TestIsNegative(t *testing.T) {
	assert.True(t, IsNegative(Binary64, uint64(math.Float64bits(-1.5))))
	assert.False(t, IsNegative(Binary64, uint64(math.Float64bits(1.5))))
}

func TestIsTiny(t *testing.T) {
	assert.True(t, IsTiny(Binary32, 0))
	assert.True(t, IsTiny(Binary32, 1))
	assert.False(t, IsTiny(Binary32, uint64(math.Float32bits(1.0))))
}
