package floppyfloat

// This file implements spec.md §6's comparison surface: Eq, Lt, Le, each
// in a quiet and a signaling flavor, per IEEE 754-2019 §5.11. Absent from
// the original_source excerpt (it runs out before reaching comparisons),
// so the ordering rule is authored directly from the standard rather than
// ported: a quiet predicate raises Invalid only for an sNaN operand, a
// signaling predicate raises Invalid for any NaN operand (quiet or
// signaling), and either way a NaN operand makes the predicate false.

// compareValues returns -1, 0 or 1 for a<b, a==b, a>b. Both operands must
// be non-NaN. It relies on the same magnitude-ordering fact softAdd's
// operand swap already leans on: for any two non-NaN values of the same
// Format, the unsigned integer encoding with the sign bit masked off
// already orders by magnitude, since the exponent field sits above the
// significand field in every one of these formats.
func compareValues(f Format, a, b uint64) int {
	if isZeroBits(f, a) && isZeroBits(f, b) {
		return 0
	}
	aSign, bSign := a&f.SignMask != 0, b&f.SignMask != 0
	if aSign != bSign {
		if aSign {
			return -1
		}
		return 1
	}
	am, bm := a&^f.SignMask, b&^f.SignMask
	mc := 0
	switch {
	case am < bm:
		mc = -1
	case am > bm:
		mc = 1
	}
	if aSign {
		return -mc
	}
	return mc
}

// nanInvalid reports whether a NaN operand should raise Invalid for the
// requested flavor: always for an sNaN, and additionally for any NaN at
// all when the predicate is the signaling flavor.
func nanInvalid(f Format, a, b uint64, signaling bool) bool {
	return signaling || isSNaNBits(f, a) || isSNaNBits(f, b)
}

func (ctx *Context) compareEq(f Format, a, b uint64, signaling bool) bool {
	if isNaNBits(f, a) || isNaNBits(f, b) {
		if nanInvalid(f, a, b, signaling) {
			ctx.flags |= FlagInvalid
		}
		return false
	}
	return compareValues(f, a, b) == 0
}

func (ctx *Context) compareLt(f Format, a, b uint64, signaling bool) bool {
	if isNaNBits(f, a) || isNaNBits(f, b) {
		if nanInvalid(f, a, b, signaling) {
			ctx.flags |= FlagInvalid
		}
		return false
	}
	return compareValues(f, a, b) < 0
}

func (ctx *Context) compareLe(f Format, a, b uint64, signaling bool) bool {
	if isNaNBits(f, a) || isNaNBits(f, b) {
		if nanInvalid(f, a, b, signaling) {
			ctx.flags |= FlagInvalid
		}
		return false
	}
	return compareValues(f, a, b) <= 0
}

// Eq16 reports whether a == b, quiet flavor (Invalid only on an sNaN).
func (ctx *Context) Eq16(a, b uint16) bool { return ctx.compareEq(Binary16, uint64(a), uint64(b), false) }

// EqSignaling16 reports whether a == b, signaling flavor (Invalid on any NaN).
func (ctx *Context) EqSignaling16(a, b uint16) bool {
	return ctx.compareEq(Binary16, uint64(a), uint64(b), true)
}

// Lt16 reports whether a < b, quiet flavor.
func (ctx *Context) Lt16(a, b uint16) bool { return ctx.compareLt(Binary16, uint64(a), uint64(b), false) }

// LtSignaling16 reports whether a < b, signaling flavor.
func (ctx *Context) LtSignaling16(a, b uint16) bool {
	return ctx.compareLt(Binary16, uint64(a), uint64(b), true)
}

// Le16 reports whether a <= b, quiet flavor.
func (ctx *Context) Le16(a, b uint16) bool { return ctx.compareLe(Binary16, uint64(a), uint64(b), false) }

// LeSignaling16 reports whether a <= b, signaling flavor.
func (ctx *Context) LeSignaling16(a, b uint16) bool {
	return ctx.compareLe(Binary16, uint64(a), uint64(b), true)
}

// Eq32 reports whether a == b, quiet flavor (Invalid only on an sNaN).
func (ctx *Context) Eq32(a, b uint32) bool { return ctx.compareEq(Binary32, uint64(a), uint64(b), false) }

// EqSignaling32 reports whether a == b, signaling flavor (Invalid on any NaN).
func (ctx *Context) EqSignaling32(a, b uint32) bool {
	return ctx.compareEq(Binary32, uint64(a), uint64(b), true)
}

// Lt32 reports whether a < b, quiet flavor.
func (ctx *Context) Lt32(a, b uint32) bool { return ctx.compareLt(Binary32, uint64(a), uint64(b), false) }

// LtSignaling32 reports whether a < b, signaling flavor.
func (ctx *Context) LtSignaling32(a, b uint32) bool {
	return ctx.compareLt(Binary32, uint64(a), uint64(b), true)
}

// Le32 reports whether a <= b, quiet flavor.
func (ctx *Context) Le32(a, b uint32) bool { return ctx.compareLe(Binary32, uint64(a), uint64(b), false) }

// LeSignaling32 reports whether a <= b, signaling flavor.
func (ctx *Context) LeSignaling32(a, b uint32) bool {
	return ctx.compareLe(Binary32, uint64(a), uint64(b), true)
}

// Eq64 reports whether a == b, quiet flavor (Invalid only on an sNaN).
func (ctx *Context) Eq64(a, b uint64) bool { return ctx.compareEq(Binary64, a, b, false) }

// EqSignaling64 reports whether a == b, signaling flavor (Invalid on any NaN).
func (ctx *Context) EqSignaling64(a, b uint64) bool { return ctx.compareEq(Binary64, a, b, true) }

// Lt64 reports whether a < b, quiet flavor.
func (ctx *Context) Lt64(a, b uint64) bool { return ctx.compareLt(Binary64, a, b, false) }

// LtSignaling64 reports whether a < b, signaling flavor.
func (ctx *Context) LtSignaling64(a, b uint64) bool { return ctx.compareLt(Binary64, a, b, true) }

// Le64 reports whether a <= b, quiet flavor.
func (ctx *Context) Le64(a, b uint64) bool { return ctx.compareLe(Binary64, a, b, false) }

// LeSignaling64 reports whether a <= b, signaling flavor.
func (ctx *Context) LeSignaling64(a, b uint64) bool { return ctx.compareLe(Binary64, a, b, true) }
