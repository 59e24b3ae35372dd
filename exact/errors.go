package exact

import "errors"

// The five error kinds surfaced by this package. Every failing operation
// returns one of these, possibly wrapped with context; match with errors.Is.
var (
	// ErrInvalidArgument reports malformed numeric-string input.
	ErrInvalidArgument = errors.New("exact: invalid argument")

	// ErrNotANumber reports an operation whose result is not representable:
	// a Natural subtraction that would go negative, or a Rational built from
	// NaN or an infinity.
	ErrNotANumber = errors.New("exact: not a number")

	// ErrDivideByZero reports a division or remainder with a zero divisor.
	ErrDivideByZero = errors.New("exact: divide by zero")

	// ErrOverflow reports a conversion to a fixed-width value whose
	// magnitude is too large.
	ErrOverflow = errors.New("exact: overflow")

	// ErrUnderflow reports a conversion to binary64 whose magnitude is
	// below the smallest subnormal.
	ErrUnderflow = errors.New("exact: underflow")
)
