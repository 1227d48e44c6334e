package floppyfloat

import (
	"math/bits"

	"github.com/not-chciken/FloppyFloat-sub000/floppyfloat/imath"
)

// This file implements spec.md §4.3's Conversions: float<->float and
// float<->integer. Absent from the original_source excerpt (it is
// truncated before reaching them), so these are authored from the spec's
// prose, reusing roundPack/normalize's scaling conventions from
// softpath.go so a narrowing float conversion or an integer conversion is
// just another user of the same round-to-nearest-with-sticky machinery
// the arithmetic operations already share.

// convRoundBits mirrors Format.RoundBits: three guard/round/sticky bits
// are carried below the target's least-significant bit while rounding an
// integer conversion, the same width soft_float.cpp's RoundPack carries
// for arithmetic.
const convRoundBits = 3

// WidenFloat performs an exact float->float conversion from a narrower
// format to a wider one. Every finite value and subnormal of fromF is
// exactly representable in a wider toF, so this never rounds; it can
// only raise Invalid, on an sNaN input.
func (ctx *Context) WidenFloat(fromF, toF Format, v uint64) uint64 {
	d := decode(fromF, v)
	switch d.cls {
	case classSignalingNaN:
		ctx.flags |= FlagInvalid
		fallthrough
	case classQuietNaN:
		payload := d.sig << (toF.SigBits - fromF.SigBits)
		return packTuple(toF, d.sign, int32(toF.MaxExp), payload|toF.QuietBit)
	case classInfinity:
		return packInf(toF, d.sign)
	case classZero:
		return packZero(toF, d.sign)
	}

	mant := d.sig
	unbiasedExp := d.exp
	if d.cls == classSubnormal {
		msb := bits.Len64(mant) - 1
		shift := int(fromF.SigBits) - msb
		mant = (mant << uint(shift)) & fromF.SigMask
		unbiasedExp -= int32(shift)
	}
	sig := mant << (toF.SigBits - fromF.SigBits)
	return packTuple(toF, d.sign, unbiasedExp+toF.Bias, sig)
}

// NarrowFloat performs a float->float conversion from a wider format to
// a narrower one, rounding per ctx's rounding mode and raising
// Inexact/Overflow/Underflow/Invalid exactly as roundPack already does
// for arithmetic results.
func (ctx *Context) NarrowFloat(fromF, toF Format, v uint64) uint64 {
	d := decode(fromF, v)
	switch d.cls {
	case classSignalingNaN:
		ctx.flags |= FlagInvalid
		fallthrough
	case classQuietNaN:
		payload := d.sig >> (fromF.SigBits - toF.SigBits)
		return packTuple(toF, d.sign, int32(toF.MaxExp), payload|toF.QuietBit)
	case classInfinity:
		return packInf(toF, d.sign)
	case classZero:
		return packZero(toF, d.sign)
	}

	mant := d.sig
	if d.cls == classNormal {
		mant |= fromF.HiddenBit
	}
	// Rescale so the hidden bit sits at toF.SigBits+toF.RoundBits, the
	// position ctx.normalize/roundPack expect, then let roundPack decide
	// how (or whether) to round away the extra precision.
	msb := bits.Len64(mant) - 1
	target := int(toF.SigBits + toF.RoundBits)
	shift := target - msb
	if shift >= 0 {
		mant <<= uint(shift)
	} else {
		mant = imath.RShiftRoundToOdd(mant, -shift)
	}
	return ctx.roundPack(toF, d.sign, d.exp+toF.Bias+int32(msb)-int32(fromF.SigBits), mant)
}

// IntToFloat converts a signed magnitude (sign, mag) to f, rounding per
// ctx's rounding mode via roundPack -- the same "take the absolute value,
// find its leading bit, call RoundPack" shape spec.md §4.3 describes.
func (ctx *Context) IntToFloat(f Format, sign bool, mag uint64) uint64 {
	if mag == 0 {
		return packZero(f, sign)
	}
	msb := bits.Len64(mag) - 1
	target := int(f.SigBits + f.RoundBits)
	shift := target - msb
	var scaled uint64
	if shift >= 0 {
		scaled = mag << uint(shift)
	} else {
		scaled = imath.RShiftRoundToOdd(mag, -shift)
	}
	exp := int32(msb) + f.Bias
	return ctx.roundPack(f, sign, exp, scaled)
}

// floatToIntMagnitude decodes v under f and rounds its magnitude to the
// nearest integer per ctx's rounding mode, returning the sign separately
// (a rounded-to-zero negative value is still reported with sign=true, so
// callers can distinguish "exactly zero" from "a negative value that
// rounds to zero" when range-checking against an unsigned target).
// tooBig reports a magnitude that cannot be represented in 64 bits at
// all -- definitely out of range for every integer type this kernel
// supports.
func (ctx *Context) floatToIntMagnitude(f Format, v uint64) (sign bool, mag uint64, isNaN, isInf, tooBig bool) {
	d := decode(f, v)
	sign = d.sign
	switch d.cls {
	case classSignalingNaN:
		ctx.flags |= FlagInvalid
		return sign, 0, true, false, false
	case classQuietNaN:
		return sign, 0, true, false, false
	case classInfinity:
		return sign, 0, false, true, false
	case classZero:
		return sign, 0, false, false, false
	}

	mantWithHidden := d.sig
	if d.cls == classNormal {
		mantWithHidden |= f.HiddenBit
	}
	// d.exp is the true (unbiased) exponent; mantWithHidden's own MSB
	// sits at bit f.SigBits, so the integer value is
	// mantWithHidden * 2^(d.exp - f.SigBits).
	shift := d.exp - int32(f.SigBits)
	if shift > 63-int32(f.SigBits) {
		// mantWithHidden's leading bit would land above bit 63: the
		// magnitude is at least 2^64 and exceeds every sentinel this
		// kernel defines (max(uint64) included).
		return sign, 0, false, false, true
	}
	if shift >= 0 {
		// An integer already; no rounding bits to resolve.
		return sign, mantWithHidden << uint(shift), false, false, false
	}

	scaled := imath.RShiftRoundToOdd(mantWithHidden<<convRoundBits, int(-shift))

	var addend uint64
	switch ctx.rounding {
	case RoundTiesToEven, RoundTiesToAway:
		addend = uint64(1) << (convRoundBits - 1)
	case RoundTowardZero:
		addend = 0
	case RoundTowardNegative:
		if sign {
			addend = uint64(1)<<convRoundBits - 1
		}
	case RoundTowardPositive:
		if !sign {
			addend = uint64(1)<<convRoundBits - 1
		}
	}

	rndBits := scaled & (uint64(1)<<convRoundBits - 1)
	if rndBits != 0 {
		ctx.flags |= FlagInexact
	}
	mag = (scaled + addend) >> convRoundBits
	if ctx.rounding == RoundTiesToEven && rndBits == uint64(1)<<(convRoundBits-1) {
		mag &^= 1
	}
	return sign, mag, false, false, false
}

// packSignedResult range-checks a converted (sign, mag) pair against the
// maxMag and minMag magnitude limits for a signed target and returns the packed value or,
// on out-of-range/NaN input, the appropriate sentinel with Invalid set.
func packSignedResult(sign bool, mag, maxMag, minMag uint64, isNaN bool, nanLimit, maxLimit, minLimit int64, setInvalid func()) int64 {
	if isNaN {
		setInvalid()
		return nanLimit
	}
	if sign {
		if mag > minMag {
			setInvalid()
			return minLimit
		}
		return -int64(mag)
	}
	if mag > maxMag {
		setInvalid()
		return maxLimit
	}
	return int64(mag)
}

func packUnsignedResult(sign bool, mag, maxMag uint64, isNaN bool, nanLimit, maxLimit, minLimit uint64, setInvalid func()) uint64 {
	if isNaN {
		setInvalid()
		return nanLimit
	}
	if sign {
		if mag != 0 {
			setInvalid()
			return minLimit
		}
		return 0
	}
	if mag > maxMag {
		setInvalid()
		return maxLimit
	}
	return mag
}

func (ctx *Context) floatToI32(f Format, v uint64) int32 {
	sign, mag, isNaN, isInf, tooBig := ctx.floatToIntMagnitude(f, v)
	invalid := func() { ctx.flags |= FlagInvalid }
	if isInf || tooBig {
		if sign {
			invalid()
			return ctx.i32.MinLimit
		}
		invalid()
		return ctx.i32.MaxLimit
	}
	return int32(packSignedResult(sign, mag, uint64(maxInt32), uint64(maxInt32)+1, isNaN,
		int64(ctx.i32.NanLimit), int64(ctx.i32.MaxLimit), int64(ctx.i32.MinLimit), invalid))
}

func (ctx *Context) floatToU32(f Format, v uint64) uint32 {
	sign, mag, isNaN, isInf, tooBig := ctx.floatToIntMagnitude(f, v)
	invalid := func() { ctx.flags |= FlagInvalid }
	if isInf || tooBig {
		if sign {
			invalid()
			return ctx.u32.MinLimit
		}
		invalid()
		return ctx.u32.MaxLimit
	}
	return uint32(packUnsignedResult(sign, mag, uint64(maxUint32), isNaN,
		uint64(ctx.u32.NanLimit), uint64(ctx.u32.MaxLimit), uint64(ctx.u32.MinLimit), invalid))
}

func (ctx *Context) floatToI64(f Format, v uint64) int64 {
	sign, mag, isNaN, isInf, tooBig := ctx.floatToIntMagnitude(f, v)
	invalid := func() { ctx.flags |= FlagInvalid }
	if isInf || tooBig {
		if sign {
			invalid()
			return ctx.i64.MinLimit
		}
		invalid()
		return ctx.i64.MaxLimit
	}
	return packSignedResult(sign, mag, uint64(maxInt64), uint64(maxInt64)+1, isNaN,
		ctx.i64.NanLimit, ctx.i64.MaxLimit, ctx.i64.MinLimit, invalid)
}

func (ctx *Context) floatToU64(f Format, v uint64) uint64 {
	sign, mag, isNaN, isInf, tooBig := ctx.floatToIntMagnitude(f, v)
	invalid := func() { ctx.flags |= FlagInvalid }
	if isInf || tooBig {
		if sign {
			invalid()
			return ctx.u64.MinLimit
		}
		invalid()
		return ctx.u64.MaxLimit
	}
	return packUnsignedResult(sign, mag, maxUint64, isNaN,
		ctx.u64.NanLimit, ctx.u64.MaxLimit, ctx.u64.MinLimit, invalid)
}

// F16ToI32 converts a binary16 operand to int32 per ctx's rounding mode
// and personality sentinels.
func (ctx *Context) F16ToI32(a uint16) int32 { return ctx.floatToI32(Binary16, uint64(a)) }

// F16ToU32 converts a binary16 operand to uint32.
func (ctx *Context) F16ToU32(a uint16) uint32 { return ctx.floatToU32(Binary16, uint64(a)) }

// F16ToI64 converts a binary16 operand to int64.
func (ctx *Context) F16ToI64(a uint16) int64 { return ctx.floatToI64(Binary16, uint64(a)) }

// F16ToU64 converts a binary16 operand to uint64.
func (ctx *Context) F16ToU64(a uint16) uint64 { return ctx.floatToU64(Binary16, uint64(a)) }

// F32ToI32 converts a binary32 operand to int32.
func (ctx *Context) F32ToI32(a uint32) int32 { return ctx.floatToI32(Binary32, uint64(a)) }

// F32ToU32 converts a binary32 operand to uint32.
func (ctx *Context) F32ToU32(a uint32) uint32 { return ctx.floatToU32(Binary32, uint64(a)) }

// F32ToI64 converts a binary32 operand to int64.
func (ctx *Context) F32ToI64(a uint32) int64 { return ctx.floatToI64(Binary32, uint64(a)) }

// F32ToU64 converts a binary32 operand to uint64.
func (ctx *Context) F32ToU64(a uint32) uint64 { return ctx.floatToU64(Binary32, uint64(a)) }

// F64ToI32 converts a binary64 operand to int32.
func (ctx *Context) F64ToI32(a uint64) int32 { return ctx.floatToI32(Binary64, a) }

// F64ToU32 converts a binary64 operand to uint32.
func (ctx *Context) F64ToU32(a uint64) uint32 { return ctx.floatToU32(Binary64, a) }

// F64ToI64 converts a binary64 operand to int64.
func (ctx *Context) F64ToI64(a uint64) int64 { return ctx.floatToI64(Binary64, a) }

// F64ToU64 converts a binary64 operand to uint64.
func (ctx *Context) F64ToU64(a uint64) uint64 { return ctx.floatToU64(Binary64, a) }

func magOf(i int64) (sign bool, mag uint64) {
	if i < 0 {
		return true, uint64(-(i + 1)) + 1
	}
	return false, uint64(i)
}

// I32ToF16 converts a signed 32-bit integer to binary16.
func (ctx *Context) I32ToF16(i int32) uint16 {
	sign, mag := magOf(int64(i))
	return uint16(ctx.IntToFloat(Binary16, sign, mag))
}

// I32ToF32 converts a signed 32-bit integer to binary32.
func (ctx *Context) I32ToF32(i int32) uint32 {
	sign, mag := magOf(int64(i))
	return uint32(ctx.IntToFloat(Binary32, sign, mag))
}

// I32ToF64 converts a signed 32-bit integer to binary64.
func (ctx *Context) I32ToF64(i int32) uint64 {
	sign, mag := magOf(int64(i))
	return ctx.IntToFloat(Binary64, sign, mag)
}

// U32ToF16 converts an unsigned 32-bit integer to binary16.
func (ctx *Context) U32ToF16(u uint32) uint16 { return uint16(ctx.IntToFloat(Binary16, false, uint64(u))) }

// U32ToF32 converts an unsigned 32-bit integer to binary32.
func (ctx *Context) U32ToF32(u uint32) uint32 { return uint32(ctx.IntToFloat(Binary32, false, uint64(u))) }

// U32ToF64 converts an unsigned 32-bit integer to binary64.
func (ctx *Context) U32ToF64(u uint32) uint64 { return ctx.IntToFloat(Binary64, false, uint64(u)) }

// I64ToF16 converts a signed 64-bit integer to binary16.
func (ctx *Context) I64ToF16(i int64) uint16 {
	sign, mag := magOf(i)
	return uint16(ctx.IntToFloat(Binary16, sign, mag))
}

// I64ToF32 converts a signed 64-bit integer to binary32.
func (ctx *Context) I64ToF32(i int64) uint32 {
	sign, mag := magOf(i)
	return uint32(ctx.IntToFloat(Binary32, sign, mag))
}

// I64ToF64 converts a signed 64-bit integer to binary64.
func (ctx *Context) I64ToF64(i int64) uint64 {
	sign, mag := magOf(i)
	return ctx.IntToFloat(Binary64, sign, mag)
}

// U64ToF16 converts an unsigned 64-bit integer to binary16.
func (ctx *Context) U64ToF16(u uint64) uint16 { return uint16(ctx.IntToFloat(Binary16, false, u)) }

// U64ToF32 converts an unsigned 64-bit integer to binary32.
func (ctx *Context) U64ToF32(u uint64) uint32 { return uint32(ctx.IntToFloat(Binary32, false, u)) }

// U64ToF64 converts an unsigned 64-bit integer to binary64.
func (ctx *Context) U64ToF64(u uint64) uint64 { return ctx.IntToFloat(Binary64, false, u) }

// F16ToF32 widens a binary16 operand to binary32.
func (ctx *Context) F16ToF32(a uint16) uint32 { return uint32(ctx.WidenFloat(Binary16, Binary32, uint64(a))) }

// F16ToF64 widens a binary16 operand to binary64.
func (ctx *Context) F16ToF64(a uint16) uint64 { return ctx.WidenFloat(Binary16, Binary64, uint64(a)) }

// F32ToF64 widens a binary32 operand to binary64.
func (ctx *Context) F32ToF64(a uint32) uint64 { return ctx.WidenFloat(Binary32, Binary64, uint64(a)) }

// F32ToF16 narrows a binary32 operand to binary16.
func (ctx *Context) F32ToF16(a uint32) uint16 { return uint16(ctx.NarrowFloat(Binary32, Binary16, uint64(a))) }

// F64ToF16 narrows a binary64 operand to binary16.
func (ctx *Context) F64ToF16(a uint64) uint16 { return uint16(ctx.NarrowFloat(Binary64, Binary16, a)) }

// F64ToF32 narrows a binary64 operand to binary32.
func (ctx *Context) F64ToF32(a uint64) uint32 { return uint32(ctx.NarrowFloat(Binary64, Binary32, a)) }
