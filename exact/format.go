package exact

import (
	"fmt"
	"io"

	"github.com/agbru/exactcalc/exact/digit"
)

const (
	digitsLower = "0123456789abcdef"
	digitsUpper = "0123456789ABCDEF"
)

// formatDigits renders a magnitude in the given base by repeated division,
// honoring the uppercase and show-base flags.
func formatDigits(d []digit.Digit, base digit.Digit, upper, showBase bool) string {
	set := digitsLower
	if upper {
		set = digitsUpper
	}

	var prefix string
	if showBase {
		switch base {
		case 8:
			prefix = "0"
		case 16:
			if upper {
				prefix = "0X"
			} else {
				prefix = "0x"
			}
		}
	}

	if len(d) == 0 {
		return prefix + "0"
	}

	// Divide in place; DivModDigit permits the quotient to alias the
	// dividend.
	buf := append([]digit.Digit(nil), d...)
	out := make([]byte, 0, len(d)*digit.Bits/3+len(prefix))
	n := len(buf)
	for n > 0 {
		var rem digit.Digit
		n, rem = digit.DivModDigit(buf[:n], buf[:n], base)
		out = append(out, set[rem])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return prefix + string(out)
}

// baseForVerb maps a formatting verb to its base and case, treating %v and
// %s as decimal. The second result is false for unsupported verbs.
func baseForVerb(verb rune) (base digit.Digit, upper, ok bool) {
	switch verb {
	case 'd', 'v', 's':
		return 10, false, true
	case 'o':
		return 8, false, true
	case 'x':
		return 16, false, true
	case 'X':
		return 16, true, true
	}
	return 0, false, false
}

// String renders x in base 10.
func (x *Natural) String() string {
	return formatDigits(x.digits(), 10, false, false)
}

// Format implements fmt.Formatter for the verbs d, o, x, X, v and s. The
// '#' flag emits the 0 / 0x / 0X base prefix.
func (x *Natural) Format(s fmt.State, verb rune) {
	base, upper, ok := baseForVerb(verb)
	if !ok {
		fmt.Fprintf(s, "%%!%c(exact.Natural=%s)", verb, x.String())
		return
	}
	io.WriteString(s, formatDigits(x.digits(), base, upper, s.Flag('#')))
}

// String renders x in base 10 with a leading '-' when negative.
func (x *Integer) String() string {
	if x.neg {
		return "-" + x.mag.String()
	}
	return x.mag.String()
}

// Format implements fmt.Formatter for the verbs d, o, x, X, v and s. The
// sign precedes the '#' base prefix.
func (x *Integer) Format(s fmt.State, verb rune) {
	base, upper, ok := baseForVerb(verb)
	if !ok {
		fmt.Fprintf(s, "%%!%c(exact.Integer=%s)", verb, x.String())
		return
	}
	if x.neg {
		io.WriteString(s, "-")
	}
	io.WriteString(s, formatDigits(x.mag.digits(), base, upper, s.Flag('#')))
}

// String renders x as "numerator/denominator" in base 10.
func (x *Rational) String() string {
	return x.num.String() + "/" + x.den.String()
}

// Format implements fmt.Formatter for the verbs d, o, x, X, v and s, applied
// to numerator and denominator on either side of the '/'.
func (x *Rational) Format(s fmt.State, verb rune) {
	base, upper, ok := baseForVerb(verb)
	if !ok {
		fmt.Fprintf(s, "%%!%c(exact.Rational=%s)", verb, x.String())
		return
	}
	if x.num.neg {
		io.WriteString(s, "-")
	}
	showBase := s.Flag('#')
	io.WriteString(s, formatDigits(x.num.mag.digits(), base, upper, showBase))
	io.WriteString(s, "/")
	io.WriteString(s, formatDigits(x.den.digits(), base, upper, showBase))
}
