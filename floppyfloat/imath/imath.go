// Package imath provides the integer-math primitives the soft-float
// kernel builds on: the wide (128-bit) multiply/divide and
// round-toward-odd shift that soft-float round-packing needs.
package imath

import "math/bits"

// unsigned is a type constraint that matches all unsigned integer types.
type unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Wide128 is an unsigned 128-bit integer held as a (high, low) pair of
// uint64 limbs, big-endian in field order. It backs the soft path's
// twice-width staging for binary64 multiplication, division, and FMA,
// where the natural "twice width" type (binary128) is never user-visible
// and a dedicated arbitrary-precision library would be overkill for a
// single fixed width (see spec.md §9, "Twice-width integer arithmetic").
type Wide128 struct {
	Hi, Lo uint64
}

// Mul64 returns the full 128-bit product of two uint64 operands.
func Mul64(a, b uint64) Wide128 {
	hi, lo := bits.Mul64(a, b)
	return Wide128{Hi: hi, Lo: lo}
}

// Add adds w and v, discarding any carry out of bit 127 (the soft path
// never produces a genuine 129-bit intermediate).
func (w Wide128) Add(v Wide128) Wide128 {
	lo, carry := bits.Add64(w.Lo, v.Lo, 0)
	hi, _ := bits.Add64(w.Hi, v.Hi, carry)
	return Wide128{Hi: hi, Lo: lo}
}

// Sub subtracts v from w, discarding any borrow.
func (w Wide128) Sub(v Wide128) Wide128 {
	lo, borrow := bits.Sub64(w.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(w.Hi, v.Hi, borrow)
	return Wide128{Hi: hi, Lo: lo}
}

// IsZero reports whether w holds the value zero.
func (w Wide128) IsZero() bool { return w.Hi == 0 && w.Lo == 0 }

// Cmp returns -1, 0, or 1 as w is less than, equal to, or greater than v.
func (w Wide128) Cmp(v Wide128) int {
	if w.Hi != v.Hi {
		if w.Hi < v.Hi {
			return -1
		}
		return 1
	}
	switch {
	case w.Lo < v.Lo:
		return -1
	case w.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// Lsh shifts w left by n bits (0 <= n < 128), discarding bits shifted
// out past bit 127.
func (w Wide128) Lsh(n uint) Wide128 {
	switch {
	case n == 0:
		return w
	case n >= 128:
		return Wide128{}
	case n >= 64:
		return Wide128{Hi: w.Lo << (n - 64), Lo: 0}
	default:
		return Wide128{Hi: w.Hi<<n | w.Lo>>(64-n), Lo: w.Lo << n}
	}
}

// Rsh shifts w right by n bits (0 <= n < 128), discarding bits shifted
// out past bit 0; it keeps no sticky-bit information (RShiftRoundToOdd
// does, for single-limb values).
func (w Wide128) Rsh(n uint) Wide128 {
	switch {
	case n == 0:
		return w
	case n >= 128:
		return Wide128{}
	case n >= 64:
		return Wide128{Hi: 0, Lo: w.Hi >> (n - 64)}
	default:
		return Wide128{Hi: w.Hi >> n, Lo: w.Lo>>n | w.Hi<<(64-n)}
	}
}

// RShiftRoundToOdd shifts a right by d bits, ORing every bit shifted out
// into the result's LSB ("round toward odd" / sticky injection). This is
// the alignment primitive the soft path uses whenever a value must be
// widened or narrowed without silently discarding precision: the
// returned value is exact enough that a subsequent round-to-nearest
// still rounds correctly. d == 0 returns a unchanged; d >= bit width
// collapses to 0 or 1 depending on whether any bit of a was set.
func RShiftRoundToOdd[U unsigned](a U, d int) U {
	if d <= 0 {
		return a
	}
	bitWidth := bitsOf(a)
	if d >= bitWidth {
		if a != 0 {
			return 1
		}
		return 0
	}
	mask := (U(1) << uint(d)) - 1
	sticky := a & mask
	shifted := a >> uint(d)
	if sticky != 0 {
		shifted |= 1
	}
	return shifted
}

func bitsOf[U unsigned](U) int {
	var z U
	switch any(z).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// DivRem128By64 divides the 128-bit dividend (hi:lo) by a 64-bit
// divisor, returning the quotient and remainder. hi must be strictly
// less than divisor, or the quotient would not fit in 64 bits.
func DivRem128By64(hi, lo, divisor uint64) (quotient, remainder uint64) {
	return bits.Div64(hi, lo, divisor)
}
