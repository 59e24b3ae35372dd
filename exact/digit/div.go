package digit

// DivModDigit computes a / d and a % d for a single-limb divisor, writing the
// quotient into q and returning its length together with the remainder. The
// quotient needs capacity len(a). The caller must guarantee d != 0. q may
// alias a.
//
// Classic long division from the most significant limb down: the running
// remainder is promoted into the high half of a double limb and the next
// dividend limb fills the low half.
func DivModDigit(q, a []Digit, d Digit) (int, Digit) {
	n := len(a)
	if n == 0 {
		return 0, 0
	}

	i := n - 1
	acc := double(a[i])
	q[i] = Digit(acc / double(d))
	acc %= double(d)
	qn := n
	if q[i] == 0 {
		qn--
	}

	for i > 0 {
		i--
		acc = acc<<Bits + double(a[i])
		q[i] = Digit(acc / double(d))
		acc %= double(d)
	}

	return qn, Digit(acc)
}

// DivMod computes a / b and a % b for a multi-limb divisor, writing the
// quotient into q and the remainder into rem and returning both lengths.
// Preconditions: len(b) >= 2, len(a) >= len(b), and neither output aliases
// an input. The quotient needs capacity len(a)-len(b)+1 and the remainder
// capacity len(b). Three scratch buffers sized from the runtime lengths are
// allocated once per call: the normalized divisor, the normalized dividend
// and the shifted trial product.
//
// Schoolbook division with divisor normalization. Both operands are shifted
// left so the divisor's top limb has its high bit set, which makes the
// quotient-digit estimate from the top two dividend limbs tight: it exceeds
// the true digit by at most two, so at most two correction steps are needed.
func DivMod(q, rem, a, b []Digit) (int, int) {
	s := (Bits - SizeBits(b)%Bits) % Bits

	// Normalizing keeps the divisor length; the dividend may gain one limb.
	divisor := make([]Digit, len(b))
	dn := Shl(divisor, b, 0, s)
	divisor = divisor[:dn]

	dividend := make([]Digit, len(a)+1)
	an := Shl(dividend, a, 0, s)

	t := make([]Digit, len(a)+1)

	qn := len(a) - len(b) + 1
	zero(q[:qn])

	d := divisor[dn-1]

	A := dividend[:an]
	for Cmp(A, divisor) >= 0 {
		i := len(A) - 1
		k := i - dn

		var tn int
		if A[i] >= d {
			// The divisor's top bit is set, so a top dividend limb at least
			// as large as the top divisor limb means the digit one position
			// up is either 1 or, failing the full comparison, this position
			// starts from the maximum limb value and is stepped down until
			// the trial product fits.
			tn = Shl(t, divisor, uint(k+1), 0)
			if Cmp(t[:tn], A) <= 0 {
				q[k+1] = 1
			} else {
				est := Max
				tn = MulDigitShift(t, divisor, est, k)
				for Cmp(t[:tn], A) > 0 {
					est--
					tn = MulDigitShift(t, divisor, est, k)
				}
				q[k] = est
			}
		} else {
			// Estimate the digit from the two most significant dividend
			// limbs over the top divisor limb, then step it down until the
			// trial product no longer exceeds the full dividend.
			est := Digit((double(A[i])<<Bits | double(A[i-1])) / double(d))
			tn = MulDigitShift(t, divisor, est, k)
			for Cmp(t[:tn], A) > 0 {
				est--
				tn = MulDigitShift(t, divisor, est, k)
			}
			q[k] = est
		}

		an = Sub(A, A, t[:tn])
		A = dividend[:an]
	}

	qn = trim(q, qn)

	rn := 0
	if len(A) > 0 {
		// Undo the normalization shift to recover the true remainder.
		rn = Shr(rem, A, 0, s)
	}
	return qn, rn
}
