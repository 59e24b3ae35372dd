package exact

import (
	"fmt"
	"strings"

	"github.com/agbru/exactcalc/exact/digit"
)

// ParseNatural parses a non-negative numeric string. A leading "0x" or "0X"
// selects base 16, a bare leading "0" base 8, anything else base 10. Hex
// digits may be mixed case. Malformed input, including the empty string,
// octal digits 8-9 and stray characters, fails with invalid-argument.
func ParseNatural(s string) (*Natural, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidArgument)
	}

	idx := 0
	base := digit.Digit(10)
	if s[0] == '0' {
		idx = 1
		base = 8
		if len(s) > 1 && (s[1] == 'x' || s[1] == 'X') {
			idx = 2
			base = 16
			if len(s) == 2 {
				return nil, fmt.Errorf("%w: %q has no digits after the base prefix", ErrInvalidArgument, s)
			}
		}
	}

	res := &Natural{}
	for i := idx; i < len(s); i++ {
		c := s[i]
		var v digit.Digit
		switch {
		case c >= '0' && c <= '9':
			v = digit.Digit(c - '0')
		case base == 16 && c >= 'a' && c <= 'f':
			v = digit.Digit(c-'a') + 10
		case base == 16 && c >= 'A' && c <= 'F':
			v = digit.Digit(c-'A') + 10
		default:
			return nil, fmt.Errorf("%w: invalid digit %q in %q", ErrInvalidArgument, c, s)
		}
		if v >= base {
			return nil, fmt.Errorf("%w: invalid digit %q in %q", ErrInvalidArgument, c, s)
		}

		res.mulDigitInPlace(base)
		res.addDigitInPlace(v)
	}

	return res, nil
}

// ParseInteger parses a numeric string with an optional leading '-'. The
// magnitude follows the Natural grammar. "-0" parses to canonical zero.
func ParseInteger(s string) (*Integer, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	mag, err := ParseNatural(s)
	if err != nil {
		return nil, err
	}
	return makeInteger(neg, mag), nil
}

// ParseRational parses either an integer string or "numerator/denominator".
// Both halves obey the full Integer grammar; a negative denominator flips
// the numerator's sign and a zero denominator fails with divide-by-zero.
func ParseRational(s string) (*Rational, error) {
	numStr, denStr, ok := strings.Cut(s, "/")

	num, err := ParseInteger(numStr)
	if err != nil {
		return nil, err
	}

	den := NewInteger(1)
	if ok {
		den, err = ParseInteger(denStr)
		if err != nil {
			return nil, err
		}
		if den.IsZero() {
			return nil, ErrDivideByZero
		}
	}

	if den.Sign() < 0 {
		num = num.Neg()
	}
	r := &Rational{num: *num, den: den.mag}
	r.normalize()
	return r, nil
}
