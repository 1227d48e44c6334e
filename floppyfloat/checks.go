package floppyfloat

// This file is the public classification surface spec.md §9 asks for
// ("Supplemented Features": IsTiny/IsSubnormal/IsZero helpers beyond
// what spec.md's core operations strictly require), grounded on
// original_source/src/vfpu.cpp's free-standing classification helpers
// and exposed here per-Format rather than per-type, since this kernel
// represents every operand as a raw bit pattern instead of a Go struct
// per format.

// IsNaN reports whether v, interpreted under f, is a NaN (quiet or
// signaling).
func IsNaN(f Format, v uint64) bool { return isNaNBits(f, v) }

// IsSignalingNaN reports whether v is a signaling NaN.
func IsSignalingNaN(f Format, v uint64) bool { return isSNaNBits(f, v) }

// IsQuietNaN reports whether v is a quiet NaN.
func IsQuietNaN(f Format, v uint64) bool {
	return isNaNBits(f, v) && v&f.QuietBit != 0
}

// IsInf reports whether v is positive or negative infinity.
func IsInf(f Format, v uint64) bool { return isInfBits(f, v) }

// IsZero reports whether v is positive or negative zero, resolved at
// the bit level per spec.md §9's Open Question (see isZeroBits).
func IsZero(f Format, v uint64) bool { return isZeroBits(f, v) }

// IsSubnormal reports whether v is a nonzero subnormal (denormal): a
// finite value whose biased exponent field is zero but whose
// significand is nonzero.
func IsSubnormal(f Format, v uint64) bool {
	return decode(f, v).cls == classSubnormal
}

// IsNormal reports whether v is a finite, normal (non-subnormal,
// nonzero) value.
func IsNormal(f Format, v uint64) bool {
	return decode(f, v).cls == classNormal
}

// IsFinite reports whether v is zero, subnormal, or normal -- i.e. not
// an infinity or a NaN.
func IsFinite(f Format, v uint64) bool {
	switch decode(f, v).cls {
	case classInfinity, classQuietNaN, classSignalingNaN:
		return false
	default:
		return true
	}
}

// IsNegative reports whether v's sign bit is set. This is true for
// negative zero and for negative NaNs (where the sign bit carries no
// arithmetic meaning but is still a real bit of the encoding).
func IsNegative(f Format, v uint64) bool { return v&f.SignMask != 0 }

// IsTiny reports whether v lies below f's smallest normal magnitude,
// i.e. is zero or subnormal. It classifies the encoded value only and
// does not consult any Context's tininess setting
// (Context.tininessBeforeRounding).
func IsTiny(f Format, v uint64) bool {
	d := decode(f, v)
	return d.cls == classSubnormal || d.cls == classZero
}
