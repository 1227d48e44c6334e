package floppyfloat

import "log"

// Int32Sentinels are the out-of-range / NaN sentinels a personality
// returns from a float->int32 conversion, per spec.md §3.
type Int32Sentinels struct{ NanLimit, MaxLimit, MinLimit int32 }

// Uint32Sentinels are the float->uint32 conversion sentinels.
type Uint32Sentinels struct{ NanLimit, MaxLimit, MinLimit uint32 }

// Int64Sentinels are the float->int64 conversion sentinels.
type Int64Sentinels struct{ NanLimit, MaxLimit, MinLimit int64 }

// Uint64Sentinels are the float->uint64 conversion sentinels.
type Uint64Sentinels struct{ NanLimit, MaxLimit, MinLimit uint64 }

// Context is the FPU context: the single stateful object described in
// spec.md §3. It carries the sticky exception flags, the current
// rounding mode, and the personality vector that distinguishes emulated
// host architectures (x86 SSE, ARMv8 AArch64 FPCR.DN=1, RISC-V F/D/Zfh).
//
// A Context is single-writer: the caller must not invoke operations on
// the same Context from multiple goroutines concurrently. Distinct
// Contexts are fully independent.
type Context struct {
	rounding RoundingMode
	flags    Flags

	qnan16 uint64
	qnan32 uint64
	qnan64 uint64

	nanPropagation        NanPropagation
	tininessBeforeRounding bool
	invalidFma             bool // if true, ∞×0+qNaN raises Invalid in Fma.

	i32 Int32Sentinels
	u32 Uint32Sentinels
	i64 Int64Sentinels
	u64 Uint64Sentinels
}

// NewContext returns a Context with the RISC-V-like defaults: positive
// canonical quiet NaNs, tininess detected after rounding, invalid_fma
// true, and RISC-V NaN propagation -- matching the original source's
// Vfpu() constructor.
func NewContext() *Context {
	ctx := &Context{}
	ctx.SetupToRiscv()
	return ctx
}

// ClearFlags resets all five sticky exception flags. It is the only way
// to clear a flag once set.
func (ctx *Context) ClearFlags() {
	ctx.flags = FlagsClear
}

// Flags returns the current sticky exception-flag aggregate.
func (ctx *Context) Flags() Flags {
	return ctx.flags
}

// Rounding returns the context's current rounding-direction attribute.
func (ctx *Context) Rounding() RoundingMode {
	return ctx.rounding
}

// SetRounding installs rm as the context's rounding mode for operations
// that read it dynamically (the soft path, and any fast-path call that
// does not take a static rounding-mode argument).
func (ctx *Context) SetRounding(rm RoundingMode) {
	ctx.rounding = rm
}

// SetQnan16 installs the canonical binary16 quiet NaN bit pattern.
func (ctx *Context) SetQnan16(bits uint16) { ctx.qnan16 = uint64(bits) }

// SetQnan32 installs the canonical binary32 quiet NaN bit pattern.
func (ctx *Context) SetQnan32(bits uint32) { ctx.qnan32 = uint64(bits) }

// SetQnan64 installs the canonical binary64 quiet NaN bit pattern.
func (ctx *Context) SetQnan64(bits uint64) { ctx.qnan64 = bits }

// GetQnan16 returns the canonical binary16 quiet NaN bit pattern.
func (ctx *Context) GetQnan16() uint16 { return uint16(ctx.qnan16) }

// GetQnan32 returns the canonical binary32 quiet NaN bit pattern.
func (ctx *Context) GetQnan32() uint32 { return uint32(ctx.qnan32) }

// GetQnan64 returns the canonical binary64 quiet NaN bit pattern.
func (ctx *Context) GetQnan64() uint64 { return ctx.qnan64 }

// qnanBits returns the canonical quiet NaN for f, widened to uint64.
func (ctx *Context) qnanBits(f Format) uint64 {
	switch f.Width {
	case 16:
		return ctx.qnan16
	case 32:
		return ctx.qnan32
	case 64:
		return ctx.qnan64
	default:
		log.Printf("floppyfloat: qnanBits: unknown format width %d", f.Width)
		return 0
	}
}

// SetupToRiscv configures the personality to match RISC-V's F/D/Zfh
// extensions: positive canonical QNaNs, tininess detected after
// rounding, invalid_fma set, and saturating (all-ones/INT_MAX/INT_MIN)
// integer-conversion sentinels.
func (ctx *Context) SetupToRiscv() {
	ctx.SetQnan16(0x7e00)
	ctx.SetQnan32(0x7fc00000)
	ctx.SetQnan64(0x7ff8000000000000)

	ctx.tininessBeforeRounding = false
	ctx.invalidFma = true
	ctx.nanPropagation = NanPropRiscV

	ctx.i32 = Int32Sentinels{NanLimit: maxInt32, MaxLimit: maxInt32, MinLimit: minInt32}
	ctx.u32 = Uint32Sentinels{NanLimit: maxUint32, MaxLimit: maxUint32, MinLimit: 0}
	ctx.i64 = Int64Sentinels{NanLimit: maxInt64, MaxLimit: maxInt64, MinLimit: minInt64}
	ctx.u64 = Uint64Sentinels{NanLimit: maxUint64, MaxLimit: maxUint64, MinLimit: 0}
}

// SetupToArm configures the personality to match ARMv8 AArch64 with
// FPCR.DN=1 (default-NaN mode): positive canonical QNaNs, tininess
// detected before rounding, invalid_fma set, and zero/MAX/MIN
// integer-conversion sentinels.
func (ctx *Context) SetupToArm() {
	ctx.SetQnan16(0x7e00)
	ctx.SetQnan32(0x7fc00000)
	ctx.SetQnan64(0x7ff8000000000000)

	ctx.tininessBeforeRounding = true
	ctx.invalidFma = true
	ctx.nanPropagation = NanPropArm64DefaultNan

	ctx.i32 = Int32Sentinels{NanLimit: 0, MaxLimit: maxInt32, MinLimit: minInt32}
	ctx.u32 = Uint32Sentinels{NanLimit: 0, MaxLimit: maxUint32, MinLimit: 0}
	ctx.i64 = Int64Sentinels{NanLimit: 0, MaxLimit: maxInt64, MinLimit: minInt64}
	ctx.u64 = Uint64Sentinels{NanLimit: 0, MaxLimit: maxUint64, MinLimit: 0}
}

// SetupToX86 configures the personality to match x86 SSE scalar
// instructions: negative canonical QNaNs, tininess detected after
// rounding, invalid_fma clear, and the "indefinite integer" sentinel
// (INT_MIN for signed, all-ones for unsigned) returned for every
// out-of-range or NaN conversion.
func (ctx *Context) SetupToX86() {
	ctx.SetQnan16(0xfe00)
	ctx.SetQnan32(0xffc00000)
	ctx.SetQnan64(0xfff8000000000000)

	ctx.tininessBeforeRounding = false
	ctx.invalidFma = false
	ctx.nanPropagation = NanPropX86Sse

	// Per spec.md §9's Open Question: x86's max_limit_i32_ is INT_MIN,
	// matching hardware -- any NaN or out-of-range input returns
	// INT_MIN for i32/i64, all-ones for u32/u64, regardless of which
	// direction the input was out of range.
	ctx.i32 = Int32Sentinels{NanLimit: minInt32, MaxLimit: minInt32, MinLimit: minInt32}
	ctx.u32 = Uint32Sentinels{NanLimit: maxUint32, MaxLimit: maxUint32, MinLimit: maxUint32}
	ctx.i64 = Int64Sentinels{NanLimit: minInt64, MaxLimit: minInt64, MinLimit: minInt64}
	ctx.u64 = Uint64Sentinels{NanLimit: maxUint64, MaxLimit: maxUint64, MinLimit: maxUint64}
}

const (
	maxInt32  = 1<<31 - 1
	minInt32  = -1 << 31
	maxUint32 = 1<<32 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63
	maxUint64 = 1<<64 - 1
)
