// Package exact implements arbitrary-precision exact arithmetic: unbounded
// non-negative integers (Natural), unbounded signed integers (Integer) and
// exact rationals kept in lowest terms (Rational). All three are immutable
// once constructed: every operation returns a fresh value, so distinct values
// may be used from distinct goroutines without coordination.
package exact

import (
	"github.com/agbru/exactcalc/exact/digit"
)

// inlineDigits is the size of the inline limb buffer carried by every
// Natural. Values that fit avoid heap allocation entirely.
const inlineDigits = 16

// Natural is an unbounded non-negative integer. The zero value is the
// number zero and is ready to use.
//
// The limbs live either in the inline buffer or, once a result outgrows it,
// in a separately allocated slice. The discriminant is not exposed; moving a
// heap-backed Natural transfers the allocation, moving an inline one copies
// the buffer.
type Natural struct {
	n      int           // logical length, no leading zero limb
	heap   []digit.Digit // nil while the inline buffer is active
	inline [inlineDigits]digit.Digit
}

// NewNatural returns the Natural with the value of v.
func NewNatural(v uint64) *Natural {
	x := &Natural{}
	i := 0
	for v != 0 {
		x.inline[i] = digit.Digit(v)
		v >>= digit.Bits
		i++
	}
	x.n = i
	return x
}

// digits returns the active limbs at their logical length.
func (x *Natural) digits() []digit.Digit {
	if x.heap != nil {
		return x.heap[:x.n]
	}
	return x.inline[:x.n]
}

// reserve returns writable limb storage of capacity c. The current contents
// are not preserved; callers write a complete result and then record its
// length with setLen.
func (x *Natural) reserve(c int) []digit.Digit {
	if x.heap == nil {
		if c <= inlineDigits {
			return x.inline[:c]
		}
		x.heap = make([]digit.Digit, c)
		return x.heap
	}
	if c <= len(x.heap) {
		return x.heap[:c]
	}
	x.heap = make([]digit.Digit, c)
	return x.heap
}

// expand grows the storage to capacity c, preserving the current limbs.
// Used by the in-place mutators behind the string parser.
func (x *Natural) expand(c int) []digit.Digit {
	if x.heap == nil {
		if c <= inlineDigits {
			return x.inline[:c]
		}
		h := make([]digit.Digit, c)
		copy(h, x.inline[:x.n])
		x.heap = h
		return h
	}
	if c <= len(x.heap) {
		return x.heap[:c]
	}
	h := make([]digit.Digit, c)
	copy(h, x.heap[:x.n])
	x.heap = h
	return h
}

func (x *Natural) setLen(n int) { x.n = n }

// set makes x a copy of the limbs in d.
func (x *Natural) set(d []digit.Digit) *Natural {
	buf := x.reserve(len(d))
	copy(buf, d)
	x.n = len(d)
	return x
}

// stealFrom moves the contents of v into x, leaving v zero. A heap-backed v
// hands over its allocation in O(1); an inline v is copied.
func (x *Natural) stealFrom(v *Natural) {
	if v.heap != nil {
		x.heap = v.heap
		v.heap = nil
	} else {
		x.heap = nil
		copy(x.inline[:], v.inline[:v.n])
	}
	x.n = v.n
	v.n = 0
}

// Clone returns an independent copy of x.
func (x *Natural) Clone() *Natural {
	return new(Natural).set(x.digits())
}

// IsZero reports whether x is zero.
func (x *Natural) IsZero() bool { return x.n == 0 }

// IsOne reports whether x is one.
func (x *Natural) IsOne() bool { return x.n == 1 && x.digits()[0] == 1 }

// BitLen returns the number of bits required to represent x; zero needs none.
func (x *Natural) BitLen() uint { return digit.SizeBits(x.digits()) }

// Cmp compares x and y, returning -1, 0 or +1.
func (x *Natural) Cmp(y *Natural) int { return digit.Cmp(x.digits(), y.digits()) }

// Equal reports whether x and y hold the same value.
func (x *Natural) Equal(y *Natural) bool { return x.Cmp(y) == 0 }

// Uint64 converts x to a uint64, or fails with overflow if it does not fit.
func (x *Natural) Uint64() (uint64, error) {
	if x.BitLen() > 64 {
		return 0, ErrOverflow
	}
	var v uint64
	for i, d := range x.digits() {
		v |= uint64(d) << (uint(i) * digit.Bits)
	}
	return v, nil
}

// Add returns x + y.
func (x *Natural) Add(y *Natural) *Natural {
	xd, yd := x.digits(), y.digits()
	if len(yd) == 0 {
		return x.Clone()
	}
	if len(xd) == 0 {
		return y.Clone()
	}

	res := &Natural{}
	if len(yd) == 1 {
		buf := res.reserve(len(xd) + 1)
		res.setLen(digit.AddDigit(buf, xd, yd[0]))
		return res
	}
	if len(xd) == 1 {
		buf := res.reserve(len(yd) + 1)
		res.setLen(digit.AddDigit(buf, yd, xd[0]))
		return res
	}

	buf := res.reserve(max(len(xd), len(yd)) + 1)
	res.setLen(digit.Add(buf, xd, yd))
	return res
}

// Sub returns x - y, or fails with not-a-number if the result would be
// negative. The destination is never partially written on failure.
func (x *Natural) Sub(y *Natural) (*Natural, error) {
	xd, yd := x.digits(), y.digits()
	if len(yd) == 0 {
		return x.Clone(), nil
	}
	if digit.Cmp(xd, yd) < 0 {
		return nil, ErrNotANumber
	}

	res := &Natural{}
	buf := res.reserve(len(xd))
	if len(yd) == 1 {
		res.setLen(digit.SubDigit(buf, xd, yd[0]))
		return res, nil
	}
	res.setLen(digit.Sub(buf, xd, yd))
	return res, nil
}

// Shl returns x << count.
func (x *Natural) Shl(count uint) *Natural {
	xd := x.digits()
	if len(xd) == 0 {
		return &Natural{}
	}
	words := count / digit.Bits
	bits := count % digit.Bits

	// Reserve the exact result length so a result that fits stays inline.
	c := len(xd) + int(words)
	if bits != 0 && xd[len(xd)-1]>>(digit.Bits-bits) != 0 {
		c++
	}
	res := &Natural{}
	buf := res.reserve(c)
	res.setLen(digit.Shl(buf, xd, words, bits))
	return res
}

// Shr returns x >> count.
func (x *Natural) Shr(count uint) *Natural {
	xd := x.digits()
	words := count / digit.Bits
	bits := count % digit.Bits
	if len(xd) <= int(words) {
		return &Natural{}
	}

	res := &Natural{}
	buf := res.reserve(len(xd) - int(words))
	res.setLen(digit.Shr(buf, xd, words, bits))
	return res
}

// Mul returns x * y.
func (x *Natural) Mul(y *Natural) *Natural {
	xd, yd := x.digits(), y.digits()
	if len(xd) == 0 || len(yd) == 0 {
		return &Natural{}
	}

	res := &Natural{}
	if len(yd) == 1 {
		buf := res.reserve(len(xd) + 1)
		res.setLen(digit.MulDigit(buf, xd, yd[0]))
		return res
	}
	if len(xd) == 1 {
		buf := res.reserve(len(yd) + 1)
		res.setLen(digit.MulDigit(buf, yd, xd[0]))
		return res
	}

	buf := res.reserve(len(xd) + len(yd))
	res.setLen(digit.Mul(buf, xd, yd))
	return res
}

// DivMod returns the quotient and remainder of x / y, or fails with
// divide-by-zero when y is zero.
func (x *Natural) DivMod(y *Natural) (*Natural, *Natural, error) {
	xd, yd := x.digits(), y.digits()
	if len(yd) == 0 {
		return nil, nil, ErrDivideByZero
	}
	if digit.Cmp(xd, yd) < 0 {
		return &Natural{}, x.Clone(), nil
	}

	q, r := &Natural{}, &Natural{}
	if len(yd) == 1 {
		qbuf := q.reserve(len(xd))
		qn, rem := digit.DivModDigit(qbuf, xd, yd[0])
		q.setLen(qn)
		if rem != 0 {
			rbuf := r.reserve(1)
			rbuf[0] = rem
			r.setLen(1)
		}
		return q, r, nil
	}

	qbuf := q.reserve(len(xd) - len(yd) + 1)
	rbuf := r.reserve(len(yd))
	qn, rn := digit.DivMod(qbuf, rbuf, xd, yd)
	q.setLen(qn)
	r.setLen(rn)
	return q, r, nil
}

// Div returns the quotient of x / y, or fails with divide-by-zero.
func (x *Natural) Div(y *Natural) (*Natural, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, or fails with divide-by-zero.
func (x *Natural) Mod(y *Natural) (*Natural, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// GCD returns the greatest common divisor of x and y; GCD(x, 0) is x.
//
// Euclidean remainder loop. The three working values rotate by moves, so a
// heap-backed intermediate changes hands instead of being copied.
func (x *Natural) GCD(y *Natural) *Natural {
	if y.IsZero() {
		return x.Clone()
	}
	if x.IsZero() {
		return y.Clone()
	}

	smaller, larger := &Natural{}, &Natural{}
	if x.Cmp(y) < 0 {
		smaller.set(x.digits())
		larger.set(y.digits())
	} else {
		smaller.set(y.digits())
		larger.set(x.digits())
	}

	for {
		_, mod, _ := larger.DivMod(smaller)
		if mod.IsZero() {
			return smaller
		}
		larger.stealFrom(smaller)
		smaller.stealFrom(mod)
	}
}

// mulDigitInPlace multiplies x by a single limb, growing storage as needed.
func (x *Natural) mulDigitInPlace(d digit.Digit) {
	if d == 0 {
		x.n = 0
		return
	}
	if x.n == 0 {
		return
	}
	buf := x.expand(x.n + 1)
	x.n = digit.MulDigit(buf[:x.n+1], buf[:x.n], d)
}

// addDigitInPlace adds a single limb to x, growing storage as needed.
func (x *Natural) addDigitInPlace(d digit.Digit) {
	if d == 0 {
		return
	}
	buf := x.expand(x.n + 1)
	x.n = digit.AddDigit(buf[:x.n+1], buf[:x.n], d)
}
