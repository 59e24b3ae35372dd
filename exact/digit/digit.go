// Package digit implements the limb-array kernel underneath the exact
// arithmetic types. A magnitude is a little-endian slice of fixed-width
// unsigned limbs with no leading zero limb: either the slice is empty (the
// value is zero) or its last element is non-zero. Every function in this
// package consumes slices whose length is the logical length of the operand,
// writes into a caller-sized output slice, and returns the logical length of
// the result with that invariant re-established.
//
// The functions are pure and hold no global state. Each one documents whether
// the output slice may alias an input; callers that violate an aliasing rule
// get corrupted results, not panics.
package digit

import "math/bits"

// A Digit is a single limb of a magnitude.
type Digit uint32

// double is the working type for limb products and carries. The kernel relies
// on limb*limb+limb+limb fitting in a double without overflow.
type double = uint64

const (
	// Bits is the width of a Digit.
	Bits = 32

	// Max is the largest value a single Digit can hold.
	Max = ^Digit(0)
)

// SizeBits returns the number of bits actually used by a, i.e. the index of
// its highest set bit plus one. A zero-length slice uses no bits.
func SizeBits(a []Digit) uint {
	n := len(a)
	if n == 0 {
		return 0
	}
	return uint(n-1)*Bits + uint(bits.Len32(uint32(a[n-1])))
}

// Cmp compares a and b, returning -1, 0 or +1. The length difference decides
// first; equal lengths compare limb by limb from the most significant end.
func Cmp(a, b []Digit) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// zero clears every limb of p.
func zero(p []Digit) {
	for i := range p {
		p[i] = 0
	}
}

// trim returns the logical length of r[:n] with leading zero limbs dropped.
func trim(r []Digit, n int) int {
	for n > 0 && r[n-1] == 0 {
		n--
	}
	return n
}
