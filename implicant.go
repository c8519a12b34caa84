package boolmin

import "math/bits"

// Implicant is a partial assignment over k variables: Mask marks which bit
// positions are fixed, and Value's bits at those positions give the fixed
// values. Bits where Mask is 0 are don't-cares.
type Implicant struct {
	Value uint64
	Mask  uint64
}

// Equal reports whether imp and other denote the same set of fixed bits
// with the same values: masks match and the values agree everywhere the
// mask cares.
func (imp Implicant) Equal(other Implicant) bool {
	return imp.Mask == other.Mask && (imp.Value^other.Value)&imp.Mask == 0
}

// Covers reports whether imp covers minterm m: every bit position imp
// fixes agrees with m.
func (imp Implicant) Covers(m uint64) bool {
	return (imp.Value^m)&imp.Mask == 0
}

// combinable reports whether a and b can be merged into a single implicant:
// equal masks, differing in exactly one fixed bit.
func combinable(a, b Implicant) bool {
	if a.Mask != b.Mask {
		return false
	}
	return bits.OnesCount64((a.Value^b.Value)&a.Mask) == 1
}

// combine merges two combinable implicants, clearing the differing bit from
// the mask (turning it into a don't-care).
func combine(a, b Implicant) Implicant {
	return Implicant{
		Value: a.Value,
		Mask:  a.Mask &^ (a.Value ^ b.Value),
	}
}
