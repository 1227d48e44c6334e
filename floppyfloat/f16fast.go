package floppyfloat

import (
	"math"

	"github.com/x448/float16"
)

// Go has no native binary16 arithmetic type, so the binary16 fast path
// stages every operation through float32: any exact binary16 value is
// also an exact float32 value, and github.com/x448/float16 supplies the
// correctly-rounded bits<->float32 conversion that narrows the result
// back down. Unlike fastpath.go's binary32/binary64 paths, this one
// does not attempt the twoSum/UpMul-style EFT correction: that
// machinery measures a residual at float32's ULP, but the rounding that
// actually determines binary16's result happens one step later, inside
// float16.Fromfloat32's narrowing -- a correction computed at the wrong
// precision would be worse than none. Concretely, this means only
// RoundTiesToEven is fast; float16.Fromfloat32 is a fixed-function
// round-to-nearest-even narrowing with no rounding-mode parameter, so
// every other rounding-direction attribute on binary16 delegates to the
// soft path, which rounds correctly by construction at whatever
// direction is requested (the same boundary softAdd/softMul/etc. already
// draw for RoundTiesToAway on binary32/binary64, just drawn one
// rounding-mode row earlier here).
func f16ToFloat32(bits uint16) float32 {
	return float16.Float16(bits).Float32()
}

func float32ToF16Bits(f float32) uint16 {
	return uint16(float16.Fromfloat32(f))
}

// smallestNormalF16 is binary16's smallest normal magnitude, 2^-14, used
// by narrowToF16's tininess-before-rounding check.
const smallestNormalF16 = 0x1p-14

// narrowToF16 converts a float32 value that is already the correctly-
// rounded-to-float32 result of a finite binary16 operation down to its
// binary16 encoding, setting Inexact/Overflow by comparing the
// narrowed-then-widened round-trip against the original, and Underflow
// per ctx's tininess-before/after-rounding personality: before rounding,
// tininess is decided from f32 itself (binary16's only rounding step is
// this narrowing, so f32 stands in for the infinitely precise result);
// after rounding, it is decided from the narrowed result's own class.
func (ctx *Context) narrowToF16(f32 float32) uint16 {
	bits16 := float32ToF16Bits(f32)
	back := f16ToFloat32(bits16)
	inexact := back != f32
	if inexact {
		ctx.flags |= FlagInexact
	}
	switch {
	case isInfG(back):
		ctx.flags |= FlagOverflow
	case inexact:
		tiny := IsSubnormal(Binary16, uint64(bits16)) || IsZero(Binary16, uint64(bits16))
		if ctx.tininessBeforeRounding {
			tiny = math.Abs(float64(f32)) < smallestNormalF16
		}
		if tiny {
			ctx.flags |= FlagUnderflow
		}
	}
	return bits16
}

func f16Sign(v uint16) bool { return v&uint16(Binary16.SignMask) != 0 }

// addSubSpecial16 handles every Add16/Sub16 input combination involving
// a NaN or an infinity, returning ok=false when both operands are
// finite and the caller should fall through to float32 arithmetic.
func (ctx *Context) addSubSpecial16(a, b uint16, sub bool) (uint16, bool) {
	au, bu := uint64(a), uint64(b)
	if isNaNBits(Binary16, au) || isNaNBits(Binary16, bu) {
		if isSNaNBits(Binary16, au) || isSNaNBits(Binary16, bu) {
			ctx.flags |= FlagInvalid
		}
		return uint16(ctx.propagateNaN2(Binary16, au, bu)), true
	}
	aInf, bInf := isInfBits(Binary16, au), isInfBits(Binary16, bu)
	if !aInf && !bInf {
		return 0, false
	}
	bEffSign := f16Sign(b)
	if sub {
		bEffSign = !bEffSign
	}
	if aInf && bInf && f16Sign(a) != bEffSign {
		ctx.flags |= FlagInvalid
		return uint16(ctx.qnanBits(Binary16)), true
	}
	if aInf {
		return a, true
	}
	return uint16(packInf(Binary16, bEffSign)), true
}

// Add16 evaluates IEEE 754 addition on binary16 operands.
func (ctx *Context) Add16(a, b uint16) uint16 {
	if ctx.rounding != RoundTiesToEven {
		return ctx.softAdd16(a, b)
	}
	if v, ok := ctx.addSubSpecial16(a, b, false); ok {
		return v
	}
	return ctx.narrowToF16(f16ToFloat32(a) + f16ToFloat32(b))
}

// Sub16 evaluates IEEE 754 subtraction on binary16 operands.
func (ctx *Context) Sub16(a, b uint16) uint16 {
	if ctx.rounding != RoundTiesToEven {
		return ctx.softSub16(a, b)
	}
	if v, ok := ctx.addSubSpecial16(a, b, true); ok {
		return v
	}
	return ctx.narrowToF16(f16ToFloat32(a) - f16ToFloat32(b))
}

// Mul16 evaluates IEEE 754 multiplication on binary16 operands.
func (ctx *Context) Mul16(a, b uint16) uint16 {
	if ctx.rounding != RoundTiesToEven {
		return ctx.softMul16(a, b)
	}
	au, bu := uint64(a), uint64(b)
	if isNaNBits(Binary16, au) || isNaNBits(Binary16, bu) {
		if isSNaNBits(Binary16, au) || isSNaNBits(Binary16, bu) {
			ctx.flags |= FlagInvalid
		}
		return uint16(ctx.propagateNaN2(Binary16, au, bu))
	}
	rSign := f16Sign(a) != f16Sign(b)
	aInf, bInf := isInfBits(Binary16, au), isInfBits(Binary16, bu)
	aZero, bZero := isZeroBits(Binary16, au), isZeroBits(Binary16, bu)
	if aInf || bInf {
		if (aInf && bZero) || (bInf && aZero) {
			ctx.flags |= FlagInvalid
			return uint16(ctx.qnanBits(Binary16))
		}
		return uint16(packInf(Binary16, rSign))
	}
	return ctx.narrowToF16(f16ToFloat32(a) * f16ToFloat32(b))
}

// Div16 evaluates IEEE 754 division on binary16 operands.
func (ctx *Context) Div16(a, b uint16) uint16 {
	if ctx.rounding != RoundTiesToEven {
		return ctx.softDiv16(a, b)
	}
	au, bu := uint64(a), uint64(b)
	if isNaNBits(Binary16, au) || isNaNBits(Binary16, bu) {
		if isSNaNBits(Binary16, au) || isSNaNBits(Binary16, bu) {
			ctx.flags |= FlagInvalid
		}
		return uint16(ctx.propagateNaN2(Binary16, au, bu))
	}
	rSign := f16Sign(a) != f16Sign(b)
	aInf, bInf := isInfBits(Binary16, au), isInfBits(Binary16, bu)
	aZero, bZero := isZeroBits(Binary16, au), isZeroBits(Binary16, bu)
	if aInf && bInf {
		ctx.flags |= FlagInvalid
		return uint16(ctx.qnanBits(Binary16))
	}
	if aInf {
		return uint16(packInf(Binary16, rSign))
	}
	if bInf {
		return uint16(packZero(Binary16, rSign))
	}
	if bZero {
		if aZero {
			ctx.flags |= FlagInvalid
			return uint16(ctx.qnanBits(Binary16))
		}
		ctx.flags |= FlagDivisionByZero
		return uint16(packInf(Binary16, rSign))
	}
	return ctx.narrowToF16(f16ToFloat32(a) / f16ToFloat32(b))
}

// Sqrt16 evaluates IEEE 754 square root on a binary16 operand.
func (ctx *Context) Sqrt16(a uint16) uint16 {
	if ctx.rounding != RoundTiesToEven {
		return ctx.softSqrt16(a)
	}
	au := uint64(a)
	if isNaNBits(Binary16, au) {
		if isSNaNBits(Binary16, au) {
			ctx.flags |= FlagInvalid
		}
		return uint16(ctx.propagateNaN(Binary16, []uint64{au}, []bool{true}))
	}
	if f16Sign(a) && !isZeroBits(Binary16, au) {
		ctx.flags |= FlagInvalid
		return uint16(ctx.qnanBits(Binary16))
	}
	if isInfBits(Binary16, au) || isZeroBits(Binary16, au) {
		return a
	}
	return ctx.narrowToF16(float32(math.Sqrt(float64(f16ToFloat32(a)))))
}

// Fma16 evaluates IEEE 754 fused multiply-add on binary16 operands.
// math.FMA runs at float64 precision, which is exact for the product
// (binary16's ~11-bit significands multiply to at most ~22 bits) but,
// as with the binary32 note in fastFma (fastpath.go), narrowing that float64 result
// down to binary16 in two steps (via float32) is double rounding rather
// than a genuine single-rounding binary16 FMA.
func (ctx *Context) Fma16(a, b, c uint16) uint16 {
	if ctx.rounding != RoundTiesToEven {
		return ctx.softFma16(a, b, c)
	}
	au, bu, cu := uint64(a), uint64(b), uint64(c)
	aNaN, bNaN, cNaN := isNaNBits(Binary16, au), isNaNBits(Binary16, bu), isNaNBits(Binary16, cu)
	aInf, bInf := isInfBits(Binary16, au), isInfBits(Binary16, bu)
	aZero, bZero := isZeroBits(Binary16, au), isZeroBits(Binary16, bu)
	infTimesZero := (aInf && bZero) || (bInf && aZero)

	if aNaN || bNaN || cNaN {
		if isSNaNBits(Binary16, au) || isSNaNBits(Binary16, bu) || isSNaNBits(Binary16, cu) {
			ctx.flags |= FlagInvalid
		}
		if infTimesZero && ctx.invalidFma {
			ctx.flags |= FlagInvalid
			if !cNaN {
				return uint16(ctx.qnanBits(Binary16))
			}
		}
		return uint16(ctx.propagateNaN3(Binary16, au, bu, cu))
	}
	if infTimesZero {
		ctx.flags |= FlagInvalid
		return uint16(ctx.qnanBits(Binary16))
	}

	rSign := f16Sign(a) != f16Sign(b)
	cInf := isInfBits(Binary16, cu)
	if aInf || bInf {
		if cInf && f16Sign(c) != rSign {
			ctx.flags |= FlagInvalid
			return uint16(ctx.qnanBits(Binary16))
		}
		return uint16(packInf(Binary16, rSign))
	}
	if cInf {
		return c
	}

	result := math.FMA(float64(f16ToFloat32(a)), float64(f16ToFloat32(b)), float64(f16ToFloat32(c)))
	return ctx.narrowToF16(float32(result))
}
