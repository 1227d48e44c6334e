package floppyfloat

// NanPropagation selects how a multi-operand operation picks a NaN
// payload to propagate when it must return a NaN, per spec.md §4.4.
type NanPropagation uint8

const (
	// NanPropRiscV always returns the personality's canonical QNaN,
	// ignoring input payloads.
	NanPropRiscV NanPropagation = iota
	// NanPropX86Sse returns the first NaN input with its quiet bit
	// forced on; if no input is NaN but the operation is itself
	// invalid, returns the canonical QNaN.
	NanPropX86Sse
	// NanPropArm64DefaultNan behaves like NanPropRiscV (FPCR.DN=1).
	NanPropArm64DefaultNan
	// NanPropArm64 prefers a signaling NaN input (quieted), in
	// positional order, then a quiet NaN input, then the canonical
	// QNaN (FPCR.DN=0).
	NanPropArm64
)

func (n NanPropagation) String() string {
	switch n {
	case NanPropRiscV:
		return "NanPropRiscV"
	case NanPropX86Sse:
		return "NanPropX86Sse"
	case NanPropArm64DefaultNan:
		return "NanPropArm64DefaultNan"
	case NanPropArm64:
		return "NanPropArm64"
	default:
		return "NanPropagation(?)"
	}
}

// propagateNaN implements spec.md §4.4 for an operation with 1 to 3
// operands, at least one of which is known to be NaN. operands must be
// given in positional order (a[, b[, c]]); present[i] says whether
// operands[i] actually participates (Sqrt passes a single operand).
//
// SNaN inputs always set Invalid regardless of scheme, handled by the
// caller before this is invoked; propagateNaN only selects the payload.
func (ctx *Context) propagateNaN(f Format, operands []uint64, present []bool) uint64 {
	switch ctx.nanPropagation {
	case NanPropRiscV, NanPropArm64DefaultNan:
		return ctx.qnanBits(f)

	case NanPropX86Sse:
		for i, v := range operands {
			if present[i] && isNaNBits(f, v) {
				return quietedBits(f, v)
			}
		}
		return ctx.qnanBits(f)

	case NanPropArm64:
		for i, v := range operands {
			if present[i] && isSNaNBits(f, v) {
				return quietedBits(f, v)
			}
		}
		for i, v := range operands {
			if present[i] && isNaNBits(f, v) {
				return v
			}
		}
		return ctx.qnanBits(f)

	default:
		return ctx.qnanBits(f)
	}
}

// propagateNaN2 is the common 2-operand convenience wrapper.
func (ctx *Context) propagateNaN2(f Format, a, b uint64) uint64 {
	return ctx.propagateNaN(f, []uint64{a, b}, []bool{true, true})
}

// propagateNaN3 is the common 3-operand (FMA) convenience wrapper.
func (ctx *Context) propagateNaN3(f Format, a, b, c uint64) uint64 {
	return ctx.propagateNaN(f, []uint64{a, b, c}, []bool{true, true, true})
}
