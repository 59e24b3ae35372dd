package exact

// Integer is an unbounded signed integer in sign-magnitude form. The zero
// value is the number zero. Canonically, zero is never negative: every
// operation re-establishes that before returning.
type Integer struct {
	neg bool
	mag Natural
}

// NewInteger returns the Integer with the value of v.
func NewInteger(v int64) *Integer {
	if v >= 0 {
		return &Integer{mag: *NewNatural(uint64(v))}
	}
	// Negating math.MinInt64 in int64 overflows; negate in uint64 space.
	return &Integer{neg: true, mag: *NewNatural(-uint64(v))}
}

// IntegerFromNatural returns the non-negative Integer with the value of m.
func IntegerFromNatural(m *Natural) *Integer {
	return &Integer{mag: *m.Clone()}
}

// makeInteger assembles an Integer from a sign and a magnitude, applying the
// canonical-zero rule.
func makeInteger(neg bool, mag *Natural) *Integer {
	if mag.IsZero() {
		neg = false
	}
	return &Integer{neg: neg, mag: *mag}
}

// IsZero reports whether x is zero.
func (x *Integer) IsZero() bool { return x.mag.IsZero() }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Integer) Sign() int {
	if x.mag.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Magnitude returns a copy of |x| as a Natural.
func (x *Integer) Magnitude() *Natural { return x.mag.Clone() }

// Clone returns an independent copy of x.
func (x *Integer) Clone() *Integer { return makeInteger(x.neg, x.mag.Clone()) }

// Neg returns -x.
func (x *Integer) Neg() *Integer { return makeInteger(!x.neg, x.mag.Clone()) }

// Abs returns |x|.
func (x *Integer) Abs() *Integer { return makeInteger(false, x.mag.Clone()) }

// Add returns x + y.
//
// Same signs add the magnitudes and keep the shared sign; opposite signs
// subtract the smaller magnitude from the larger and take the larger's sign.
func (x *Integer) Add(y *Integer) *Integer {
	if x.neg == y.neg {
		return makeInteger(x.neg, x.mag.Add(&y.mag))
	}
	if x.mag.Cmp(&y.mag) < 0 {
		m, _ := y.mag.Sub(&x.mag)
		return makeInteger(y.neg, m)
	}
	m, _ := x.mag.Sub(&y.mag)
	return makeInteger(x.neg, m)
}

// Sub returns x - y.
//
// Unlike the Natural version there is no failure case: a sign flip absorbs
// what would otherwise be a negative result.
func (x *Integer) Sub(y *Integer) *Integer {
	if x.neg != y.neg {
		return makeInteger(x.neg, x.mag.Add(&y.mag))
	}
	if x.mag.Cmp(&y.mag) < 0 {
		m, _ := y.mag.Sub(&x.mag)
		return makeInteger(!y.neg, m)
	}
	m, _ := x.mag.Sub(&y.mag)
	return makeInteger(x.neg, m)
}

// Mul returns x * y. The result is negative iff exactly one operand is.
func (x *Integer) Mul(y *Integer) *Integer {
	return makeInteger(x.neg != y.neg, x.mag.Mul(&y.mag))
}

// DivMod returns the truncated quotient and the remainder of x / y, or fails
// with divide-by-zero. The quotient is negative iff exactly one operand is;
// the remainder carries the dividend's sign.
func (x *Integer) DivMod(y *Integer) (*Integer, *Integer, error) {
	q, r, err := x.mag.DivMod(&y.mag)
	if err != nil {
		return nil, nil, err
	}
	return makeInteger(x.neg != y.neg, q), makeInteger(x.neg, r), nil
}

// Div returns the truncated quotient of x / y, or fails with divide-by-zero.
func (x *Integer) Div(y *Integer) (*Integer, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, or fails with divide-by-zero.
func (x *Integer) Mod(y *Integer) (*Integer, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// Shl returns x << count; the sign is unchanged.
func (x *Integer) Shl(count uint) *Integer {
	return makeInteger(x.neg, x.mag.Shl(count))
}

// Shr returns x >> count on the magnitude; the sign is unchanged unless the
// magnitude vanishes.
func (x *Integer) Shr(count uint) *Integer {
	return makeInteger(x.neg, x.mag.Shr(count))
}

// Cmp compares x and y, returning -1, 0 or +1. When the signs differ the
// non-negative value is greater; two negatives compare by magnitude in
// reverse.
func (x *Integer) Cmp(y *Integer) int {
	if !x.neg {
		if y.neg {
			return 1
		}
		return x.mag.Cmp(&y.mag)
	}
	if !y.neg {
		return -1
	}
	return y.mag.Cmp(&x.mag)
}

// Equal reports whether x and y hold the same value.
func (x *Integer) Equal(y *Integer) bool { return x.Cmp(y) == 0 }

// Int64 converts x to an int64, or fails with overflow if it does not fit.
func (x *Integer) Int64() (int64, error) {
	v, err := x.mag.Uint64()
	if err != nil {
		return 0, err
	}
	if x.neg {
		if v > 1<<63 {
			return 0, ErrOverflow
		}
		return -int64(v - 1) - 1, nil
	}
	if v > 1<<63-1 {
		return 0, ErrOverflow
	}
	return int64(v), nil
}

// Uint64 converts x to a uint64, or fails with overflow if it is negative or
// does not fit.
func (x *Integer) Uint64() (uint64, error) {
	if x.neg {
		return 0, ErrOverflow
	}
	return x.mag.Uint64()
}
