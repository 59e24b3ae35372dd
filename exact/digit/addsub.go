package digit

// AddDigit computes r = a + d and returns the length of r. The output needs
// capacity len(a)+1. r may alias a.
func AddDigit(r, a []Digit, d Digit) int {
	n := len(a)
	if n == 0 {
		if d == 0 {
			return 0
		}
		r[0] = d
		return 1
	}

	acc := double(a[0]) + double(d)
	r[0] = Digit(acc)
	acc >>= Bits

	for i := 1; i < n; i++ {
		acc += double(a[i])
		r[i] = Digit(acc)
		acc >>= Bits
	}

	if acc != 0 {
		r[n] = Digit(acc)
		n++
	}
	return n
}

// Add computes r = a + b and returns the length of r. The output needs
// capacity max(len(a), len(b))+1. r may alias either input.
//
// The walk covers the shorter operand first, then propagates the carry
// through the rest of the longer one. Carries are at most one per position,
// so the result never gains more than a single limb.
func Add(r, a, b []Digit) int {
	larger, smaller := a, b
	if len(a) < len(b) {
		larger, smaller = b, a
	}
	ln, sn := len(larger), len(smaller)
	if sn == 0 {
		copy(r, larger)
		return ln
	}

	acc := double(larger[0]) + double(smaller[0])
	r[0] = Digit(acc)
	acc >>= Bits

	for i := 1; i < sn; i++ {
		acc += double(larger[i]) + double(smaller[i])
		r[i] = Digit(acc)
		acc >>= Bits
	}
	for i := sn; i < ln; i++ {
		acc += double(larger[i])
		r[i] = Digit(acc)
		acc >>= Bits
	}

	if acc != 0 {
		r[ln] = Digit(acc)
		ln++
	}
	return ln
}

// SubDigit computes r = a - d and returns the length of r. The caller must
// guarantee a >= d; the kernel does not check. r may alias a.
func SubDigit(r, a []Digit, d Digit) int {
	n := len(a)
	if n == 0 {
		return 0
	}
	acc := double(a[0]) - double(d)
	r[0] = Digit(acc)

	for i := 1; i < n; i++ {
		borrow := (acc >> Bits) & 1
		acc = double(a[i]) - borrow
		r[i] = Digit(acc)
	}

	// Only the top limb can have gone to zero when subtracting one digit.
	if r[n-1] == 0 {
		n--
	}
	return n
}

// Sub computes r = a - b and returns the length of r. The caller must
// guarantee a >= b; the kernel does not check. r may alias either input.
func Sub(r, a, b []Digit) int {
	an, bn := len(a), len(b)
	if bn == 0 {
		copy(r, a)
		return an
	}

	acc := double(a[0]) - double(b[0])
	r[0] = Digit(acc)

	for i := 1; i < bn; i++ {
		borrow := (acc >> Bits) & 1
		acc = double(a[i]) - double(b[i]) - borrow
		r[i] = Digit(acc)
	}
	for i := bn; i < an; i++ {
		borrow := (acc >> Bits) & 1
		acc = double(a[i]) - borrow
		r[i] = Digit(acc)
	}

	// Subtraction gives no cheap estimate of the result length, so scan from
	// the top for the first non-zero limb.
	return trim(r, an)
}
