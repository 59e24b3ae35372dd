package exact

// Rational is an exact rational number: a signed integer numerator over a
// positive natural denominator, always in lowest terms. Zero is represented
// as 0/1. Use the constructors; the zero value of the struct is not a valid
// Rational.
type Rational struct {
	num Integer
	den Natural
}

// NewRational returns the Rational n/d in lowest terms, or fails with
// divide-by-zero when d is zero. A negative d moves its sign onto the
// numerator.
func NewRational(n, d int64) (*Rational, error) {
	if d == 0 {
		return nil, ErrDivideByZero
	}
	num := NewInteger(n)
	if d < 0 {
		num = num.Neg()
		d = -d
	}
	den := NewNatural(uint64(d))
	r := &Rational{num: *num, den: *den}
	r.normalize()
	return r, nil
}

// RationalFromInteger returns the Rational v/1.
func RationalFromInteger(v *Integer) *Rational {
	return &Rational{num: *v.Clone(), den: *NewNatural(1)}
}

// normalize re-establishes the representation invariants: the denominator is
// at least one and shares no factor with the numerator. Reducing zero by
// gcd(0, d) = d also restores the 0/1 form.
func (x *Rational) normalize() {
	g := x.num.mag.GCD(&x.den)
	if g.IsOne() {
		return
	}
	num, _, _ := x.num.mag.DivMod(g)
	den, _, _ := x.den.DivMod(g)
	x.num = *makeInteger(x.num.neg, num)
	x.den = *den
}

// Num returns a copy of the numerator.
func (x *Rational) Num() *Integer { return x.num.Clone() }

// Den returns a copy of the denominator.
func (x *Rational) Den() *Natural { return x.den.Clone() }

// IsZero reports whether x is zero.
func (x *Rational) IsZero() bool { return x.num.IsZero() }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Rational) Sign() int { return x.num.Sign() }

// Clone returns an independent copy of x.
func (x *Rational) Clone() *Rational {
	return &Rational{num: *x.num.Clone(), den: *x.den.Clone()}
}

// Neg returns -x.
func (x *Rational) Neg() *Rational {
	return &Rational{num: *x.num.Neg(), den: *x.den.Clone()}
}

// denAsInt returns the denominator as a non-negative Integer for
// cross-multiplication.
func (x *Rational) denAsInt() *Integer { return IntegerFromNatural(&x.den) }

// Add returns x + y.
func (x *Rational) Add(y *Rational) *Rational {
	num := x.num.Mul(y.denAsInt()).Add(y.num.Mul(x.denAsInt()))
	res := &Rational{num: *num, den: *x.den.Mul(&y.den)}
	res.normalize()
	return res
}

// Sub returns x - y.
func (x *Rational) Sub(y *Rational) *Rational {
	num := x.num.Mul(y.denAsInt()).Sub(y.num.Mul(x.denAsInt()))
	res := &Rational{num: *num, den: *x.den.Mul(&y.den)}
	res.normalize()
	return res
}

// Mul returns x * y.
func (x *Rational) Mul(y *Rational) *Rational {
	res := &Rational{num: *x.num.Mul(&y.num), den: *x.den.Mul(&y.den)}
	res.normalize()
	return res
}

// Div returns x / y, or fails with divide-by-zero when y is zero.
//
// The divisor's numerator sign lands on the result's numerator so the stored
// denominator stays a positive Natural throughout.
func (x *Rational) Div(y *Rational) (*Rational, error) {
	if y.IsZero() {
		return nil, ErrDivideByZero
	}
	num := x.num.Mul(y.denAsInt())
	if y.num.neg {
		num = num.Neg()
	}
	res := &Rational{num: *num, den: *x.den.Mul(&y.num.mag)}
	res.normalize()
	return res, nil
}

// Cmp compares x and y, returning -1, 0 or +1. Denominators are positive, so
// the cross-product ordering is the rational ordering.
func (x *Rational) Cmp(y *Rational) int {
	return x.num.Mul(y.denAsInt()).Cmp(y.num.Mul(x.denAsInt()))
}

// Equal reports whether x and y hold the same value. Both sides are in
// lowest terms, so component equality suffices.
func (x *Rational) Equal(y *Rational) bool {
	return x.num.Equal(&y.num) && x.den.Equal(&y.den)
}

// IsInt reports whether x is an integer, i.e. its denominator is one.
func (x *Rational) IsInt() bool { return x.den.IsOne() }
