package floppyfloat

import "math"

// This file implements the fast path of spec.md §4.2: Add, Sub, Mul, Div,
// Sqrt and Fma evaluated with the host's native float32/float64
// arithmetic (assumed round-to-nearest-even, FTZ/DAZ off -- the
// preconditions spec.md §4.2/§5 place on the caller), then corrected
// into the requested rounding mode and personality using error-free
// transformations.
//
// The fast path is grounded directly on
// original_source/src/floppy_float.cpp's Add; that file's explicit
// template instantiation list only covers RoundTiesToEven,
// RoundTowardPositive, RoundTowardNegative and RoundTowardZero -- it
// never instantiates RoundTiesToAway. This kernel follows that
// boundary deliberately: RoundTiesToAway always delegates to the soft
// path (softAddXX etc.), which detects exact ties directly rather than
// inferring them from a nonzero residual's sign alone.

func isNaNG[F floatType](a F) bool { return a != a }

func isInfG[F floatType](a F) bool { return math.IsInf(float64(a), 0) }

func isPosInfG[F floatType](a F) bool { return math.IsInf(float64(a), 1) }

func isNegInfG[F floatType](a F) bool { return math.IsInf(float64(a), -1) }

func signbitG[F floatType](a F) bool { return math.Signbit(float64(a)) }

// bitsType is the constraint for a fast-path operation's integer bit
// encoding: binary32 and binary64 drive their own native arithmetic
// directly. binary16 has no native arithmetic type to drive with and
// uses its own narrower implementation in f16fast.go instead of this
// generic machinery (see that file's doc comment for why).
type bitsType interface{ uint32 | uint64 }

func isPosZeroBitsG[F floatType, U bitsType](c F, toBits func(F) U) bool {
	return c == 0 && toBits(c) == 0
}

func isSNaNG[F floatType, U bitsType](a F, toBits func(F) U, f Format) bool {
	return isNaNG(a) && uint64(toBits(a))&f.QuietBit == 0
}

func maxFiniteBits(f Format) uint64 {
	return (uint64(f.MaxExp-1) << f.SigBits) | f.SigMask
}

func lowestFiniteBits(f Format) uint64 {
	return f.SignMask | maxFiniteBits(f)
}

// roundInf re-maps a true-overflow infinity to the rounding mode's
// required shape, per spec.md §4.2's RoundInf table.
func roundInf[F floatType, U bitsType](f Format, c F, rm RoundingMode, fromBits func(U) F) F {
	switch rm {
	case RoundTowardPositive:
		if isNegInfG(c) {
			return fromBits(U(lowestFiniteBits(f)))
		}
	case RoundTowardNegative:
		if isPosInfG(c) {
			return fromBits(U(maxFiniteBits(f)))
		}
	case RoundTowardZero:
		if isNegInfG(c) {
			return fromBits(U(lowestFiniteBits(f)))
		}
		return fromBits(U(maxFiniteBits(f)))
	}
	return c
}

// bitsNextUp/bitsNextDown move c by one ULP in the integer encoding,
// following the sign-dependent direction spelled out in spec.md §4.2
// ("the format's biased-exponent/significand layout guarantees that
// adjacent representables differ by ±1 in integer encoding except
// across zero"). A zero c (of either sign) steps to the smallest
// subnormal of the requested direction.
func bitsNextUp[F floatType, U bitsType](c F, toBits func(F) U, fromBits func(U) F) F {
	if c == 0 {
		return fromBits(1)
	}
	b := toBits(c)
	if c > 0 {
		b++
	} else {
		b--
	}
	return fromBits(b)
}

func bitsNextDown[F floatType, U bitsType](c F, toBits func(F) U, fromBits func(U) F) F {
	if c == 0 {
		return -fromBits(1)
	}
	b := toBits(c)
	if c > 0 {
		b--
	} else {
		b++
	}
	return fromBits(b)
}

// nudge applies the RoundResult correction table of spec.md §4.2 to a
// round-to-nearest-even result c given the nonzero EFT residual r.
func nudge[F floatType, U bitsType](ctx *Context, f Format, c, r F, rm RoundingMode, toBits func(F) U, fromBits func(U) F) F {
	switch rm {
	case RoundTowardPositive:
		if r > 0 {
			c = bitsNextUp(c, toBits, fromBits)
			if isPosInfG(c) {
				ctx.flags |= FlagOverflow
			}
		}
	case RoundTowardNegative:
		if r < 0 {
			c = bitsNextDown(c, toBits, fromBits)
			if isNegInfG(c) {
				ctx.flags |= FlagOverflow
			}
		}
	case RoundTowardZero:
		if r > 0 && c < 0 {
			c = bitsNextUp(c, toBits, fromBits)
			if isPosInfG(c) {
				ctx.flags |= FlagOverflow
			}
		} else if r < 0 && c > 0 {
			c = bitsNextDown(c, toBits, fromBits)
			if isNegInfG(c) {
				ctx.flags |= FlagOverflow
			}
		}
	}
	return c
}

// fastAddSub implements Add when sub is false and a-b when sub is true;
// IEEE 754 subtraction is addition with b's sign flipped, and the host
// handles that natively, so one generic body covers both per spec.md's
// "others symmetric" note.
func fastAddSub[F floatType, U bitsType](ctx *Context, f Format, a, b F, sub bool, toBits func(F) U, fromBits func(U) F) F {
	var c F
	if sub {
		c = a - b
	} else {
		c = a + b
	}

	if isNaNG(c) || isInfG(c) {
		if isInfG(c) {
			if !isInfG(a) && !isInfG(b) {
				ctx.flags |= FlagOverflow | FlagInexact
				return roundInf(f, c, ctx.rounding, fromBits)
			}
			return c
		}
		// NaN case: ∞ + (-∞) (or ∞ - ∞, same thing once b's sign is
		// flipped for subtraction) is the one Invalid-raising input;
		// everything else with an Inf operand was already handled above.
		bEff := b
		if sub {
			bEff = -b
		}
		if isInfG(a) && isInfG(bEff) && signbitG(a) != signbitG(bEff) {
			ctx.flags |= FlagInvalid
			return fromBits(U(ctx.qnanBits(f)))
		}
		abits := uint64(toBits(a))
		bbits := uint64(toBits(b))
		if isSNaNG(a, toBits, f) || isSNaNG(b, toBits, f) {
			ctx.flags |= FlagInvalid
		}
		if isNaNG(a) || isNaNG(b) {
			return fromBits(U(ctx.propagateNaN2(f, abits, bbits)))
		}
	}

	rm := ctx.rounding
	if rm == RoundTowardNegative && isPosZeroBitsG(c, toBits) {
		bEff := b
		if sub {
			bEff = -b
		}
		if signbitG(a) || signbitG(bEff) {
			c = -c
		}
	}

	r := twoSum(a, ifF(sub, -b, b), c)
	if r != 0 {
		ctx.flags |= FlagInexact
		if rm != RoundTiesToEven {
			c = nudge(ctx, f, c, r, rm, toBits, fromBits)
		}
	}
	return c
}

func ifF[F floatType](cond bool, yes, no F) F {
	if cond {
		return yes
	}
	return no
}

// Add32 evaluates IEEE 754 addition on binary32 operands.
func (ctx *Context) Add32(a, b uint32) uint32 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softAdd32(a, b)
	}
	af, bf := math.Float32frombits(a), math.Float32frombits(b)
	cf := fastAddSub(ctx, Binary32, af, bf, false, math.Float32bits, math.Float32frombits)
	return math.Float32bits(cf)
}

// Sub32 evaluates IEEE 754 subtraction on binary32 operands.
func (ctx *Context) Sub32(a, b uint32) uint32 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softSub32(a, b)
	}
	af, bf := math.Float32frombits(a), math.Float32frombits(b)
	cf := fastAddSub(ctx, Binary32, af, bf, true, math.Float32bits, math.Float32frombits)
	return math.Float32bits(cf)
}

// Add64 evaluates IEEE 754 addition on binary64 operands.
func (ctx *Context) Add64(a, b uint64) uint64 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softAdd64(a, b)
	}
	af, bf := math.Float64frombits(a), math.Float64frombits(b)
	cf := fastAddSub(ctx, Binary64, af, bf, false, math.Float64bits, math.Float64frombits)
	return math.Float64bits(cf)
}

// Sub64 evaluates IEEE 754 subtraction on binary64 operands.
func (ctx *Context) Sub64(a, b uint64) uint64 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softSub64(a, b)
	}
	af, bf := math.Float64frombits(a), math.Float64frombits(b)
	cf := fastAddSub(ctx, Binary64, af, bf, true, math.Float64bits, math.Float64frombits)
	return math.Float64bits(cf)
}

// fastMul implements Mul per spec.md §4.2, using UpMul (here: an exact
// FMA-based residual, see eft.go) in place of the twice-width staging
// type the original C++ uses.
func fastMul[F floatType, U bitsType](ctx *Context, f Format, a, b F, toBits func(F) U, fromBits func(U) F) F {
	c := a * b

	if isNaNG(c) || isInfG(c) {
		if isInfG(c) {
			if !isInfG(a) && !isInfG(b) && a != 0 && b != 0 {
				ctx.flags |= FlagOverflow | FlagInexact
				return roundInf(f, c, ctx.rounding, fromBits)
			}
			if (isInfG(a) && b == 0) || (isInfG(b) && a == 0) {
				ctx.flags |= FlagInvalid
				return fromBits(U(ctx.qnanBits(f)))
			}
			return c
		}
		abits := uint64(toBits(a))
		bbits := uint64(toBits(b))
		if isSNaNG(a, toBits, f) || isSNaNG(b, toBits, f) {
			ctx.flags |= FlagInvalid
		}
		if isNaNG(a) || isNaNG(b) {
			return fromBits(U(ctx.propagateNaN2(f, abits, bbits)))
		}
		if (a == 0 && isInfG(b)) || (b == 0 && isInfG(a)) {
			ctx.flags |= FlagInvalid
			return fromBits(U(ctx.qnanBits(f)))
		}
	}

	rm := ctx.rounding
	r := upMulResidual(float64(a), float64(b), float64(c))
	if r != 0 {
		ctx.flags |= FlagInexact
		if rm != RoundTiesToEven {
			c = nudge(ctx, f, c, F(r), rm, toBits, fromBits)
		}
	}
	return c
}

// Mul32 evaluates IEEE 754 multiplication on binary32 operands.
func (ctx *Context) Mul32(a, b uint32) uint32 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softMul32(a, b)
	}
	af, bf := math.Float32frombits(a), math.Float32frombits(b)
	cf := fastMul(ctx, Binary32, af, bf, math.Float32bits, math.Float32frombits)
	return math.Float32bits(cf)
}

// Mul64 evaluates IEEE 754 multiplication on binary64 operands.
func (ctx *Context) Mul64(a, b uint64) uint64 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softMul64(a, b)
	}
	af, bf := math.Float64frombits(a), math.Float64frombits(b)
	cf := fastMul(ctx, Binary64, af, bf, math.Float64bits, math.Float64frombits)
	return math.Float64bits(cf)
}

// fastDiv implements Div per spec.md §4.2.
func fastDiv[F floatType, U bitsType](ctx *Context, f Format, a, b F, toBits func(F) U, fromBits func(U) F) F {
	c := a / b

	if isNaNG(c) {
		abits := uint64(toBits(a))
		bbits := uint64(toBits(b))
		if isSNaNG(a, toBits, f) || isSNaNG(b, toBits, f) {
			ctx.flags |= FlagInvalid
		}
		if isNaNG(a) || isNaNG(b) {
			return fromBits(U(ctx.propagateNaN2(f, abits, bbits)))
		}
		// 0/0 or ∞/∞.
		ctx.flags |= FlagInvalid
		return fromBits(U(ctx.qnanBits(f)))
	}

	if isInfG(c) {
		if !isInfG(a) && b == 0 {
			ctx.flags |= FlagDivisionByZero
			return c
		}
		if !isInfG(a) && !isInfG(b) {
			ctx.flags |= FlagOverflow | FlagInexact
			return roundInf(f, c, ctx.rounding, fromBits)
		}
		return c
	}

	rm := ctx.rounding
	r := upDivResidual(float64(a), float64(b), float64(c))
	if r != 0 {
		ctx.flags |= FlagInexact
		if rm != RoundTiesToEven {
			c = nudge(ctx, f, c, F(r), rm, toBits, fromBits)
		}
	}
	return c
}

// Div32 evaluates IEEE 754 division on binary32 operands.
func (ctx *Context) Div32(a, b uint32) uint32 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softDiv32(a, b)
	}
	af, bf := math.Float32frombits(a), math.Float32frombits(b)
	cf := fastDiv(ctx, Binary32, af, bf, math.Float32bits, math.Float32frombits)
	return math.Float32bits(cf)
}

// Div64 evaluates IEEE 754 division on binary64 operands.
func (ctx *Context) Div64(a, b uint64) uint64 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softDiv64(a, b)
	}
	af, bf := math.Float64frombits(a), math.Float64frombits(b)
	cf := fastDiv(ctx, Binary64, af, bf, math.Float64bits, math.Float64frombits)
	return math.Float64bits(cf)
}

// fastSqrt implements Sqrt per spec.md §4.2.
func fastSqrt[F floatType, U bitsType](ctx *Context, f Format, a F, toBits func(F) U, fromBits func(U) F) F {
	if isNaNG(a) {
		if isSNaNG(a, toBits, f) {
			ctx.flags |= FlagInvalid
		}
		return fromBits(U(ctx.propagateNaN(f, []uint64{uint64(toBits(a))}, []bool{true})))
	}
	if signbitG(a) && a != 0 {
		ctx.flags |= FlagInvalid
		return fromBits(U(ctx.qnanBits(f)))
	}

	c := F(math.Sqrt(float64(a)))
	if isInfG(c) || a == 0 {
		return c
	}

	rm := ctx.rounding
	r := upSqrtResidual(float64(a), float64(c))
	if r != 0 {
		ctx.flags |= FlagInexact
		if rm != RoundTiesToEven {
			c = nudge(ctx, f, c, F(r), rm, toBits, fromBits)
		}
	}
	return c
}

// Sqrt32 evaluates IEEE 754 square root on a binary32 operand.
func (ctx *Context) Sqrt32(a uint32) uint32 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softSqrt32(a)
	}
	af := math.Float32frombits(a)
	cf := fastSqrt(ctx, Binary32, af, math.Float32bits, math.Float32frombits)
	return math.Float32bits(cf)
}

// Sqrt64 evaluates IEEE 754 square root on a binary64 operand.
func (ctx *Context) Sqrt64(a uint64) uint64 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softSqrt64(a)
	}
	af := math.Float64frombits(a)
	cf := fastSqrt(ctx, Binary64, af, math.Float64bits, math.Float64frombits)
	return math.Float64bits(cf)
}

// fastFma implements Fma per spec.md §4.2: a host FMA already rounds
// only once, so unlike Mul/Div/Sqrt there is no separate EFT residual
// to compute -- math.FMA's result is the infinite-precision a*b+c
// rounded once to binary64 (for F=float32 a second rounding follows when
// narrowing; see the note below). Only flag reconstruction
// and directed-rounding re-derivation (via a second, wider evaluation)
// remain.
func fastFma[F floatType, U bitsType](ctx *Context, f Format, a, b, c F, toBits func(F) U, fromBits func(U) F) F {
	if isNaNG(a) || isNaNG(b) || isNaNG(c) {
		abits, bbits, cbits := uint64(toBits(a)), uint64(toBits(b)), uint64(toBits(c))
		if isSNaNG(a, toBits, f) || isSNaNG(b, toBits, f) || isSNaNG(c, toBits, f) {
			ctx.flags |= FlagInvalid
		}
		if ctx.invalidFma && ((isInfG(a) && b == 0) || (isInfG(b) && a == 0)) && isNaNG(c) {
			ctx.flags |= FlagInvalid
		}
		return fromBits(U(ctx.propagateNaN(f, []uint64{abits, bbits, cbits}, []bool{true, true, true})))
	}

	if (isInfG(a) && b == 0) || (isInfG(b) && a == 0) {
		ctx.flags |= FlagInvalid
		return fromBits(U(ctx.qnanBits(f)))
	}

	// float64's FMA is used as the stand-in for a true wider-than-F FMA;
	// for F=float32 this rounds once to binary64 and once more narrowing
	// to binary32 (double rounding), which is not bit-identical to a
	// genuine single-rounding binary32 FMA in the rare cases where the
	// two roundings disagree. See DESIGN.md.
	result := F(math.FMA(float64(a), float64(b), float64(c)))

	if isInfG(result) {
		if !isInfG(a) && !isInfG(b) && !isInfG(c) {
			ctx.flags |= FlagOverflow | FlagInexact
			return roundInf(f, result, ctx.rounding, fromBits)
		}
		return result
	}
	if isNaNG(result) {
		ctx.flags |= FlagInvalid
		return fromBits(U(ctx.qnanBits(f)))
	}

	rm := ctx.rounding
	exact := math.FMA(float64(a), float64(b), float64(c))
	residual := exact - float64(result)
	if residual != 0 {
		ctx.flags |= FlagInexact
		if rm != RoundTiesToEven {
			result = nudge(ctx, f, result, F(residual), rm, toBits, fromBits)
		}
	}
	return result
}

// Fma32 evaluates IEEE 754 fused multiply-add on binary32 operands.
func (ctx *Context) Fma32(a, b, c uint32) uint32 {
	if ctx.rounding == RoundTiesToAway {
		return ctx.softFma32(a, b, c)
	}
	af, bf, cf := math.Float32frombits(a), math.Float32frombits(b), math.Float32frombits(c)
	rf := fastFma(ctx, Binary32, af, bf, cf, math.Float32bits, math.Float32frombits)
	return math.Float32bits(rf)
}

// Fma64 evaluates IEEE 754 fused multiply-add on binary64 operands.
// Unlike Fma32 (which rounds once to binary64 and narrows, leaving a
// real if imprecise residual to nudge), binary64 has no wider native
// type to stage through: fastFma's "exact" and "result" values would
// both come from the same float64 math.FMA call and collapse to an
// identical value, so the EFT residual is always zero and directed
// rounding would silently become a no-op. Every non-RTE mode therefore
// delegates to the soft path, which rounds correctly by construction at
// whatever direction is requested.
func (ctx *Context) Fma64(a, b, c uint64) uint64 {
	if ctx.rounding != RoundTiesToEven {
		return ctx.softFma64(a, b, c)
	}
	af, bf, cf := math.Float64frombits(a), math.Float64frombits(b), math.Float64frombits(c)
	rf := fastFma(ctx, Binary64, af, bf, cf, math.Float64bits, math.Float64frombits)
	return math.Float64bits(rf)
}
