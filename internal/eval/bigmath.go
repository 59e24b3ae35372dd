package eval

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agbru/exactcalc/exact"
)

func init() {
	Register("bigmath", func() Evaluator { return &BigMathEvaluator{} })
}

// BigMathEvaluator evaluates expressions with math/big. It exists purely as
// an independent oracle for cross-checking the native backend, so it shares
// no code with it beyond the parser.
type BigMathEvaluator struct{}

// Name returns the backend name.
func (e *BigMathEvaluator) Name() string { return "bigmath (math/big)" }

// Evaluate parses and evaluates expr with big.Rat arithmetic.
func (e *BigMathEvaluator) Evaluate(ctx context.Context, expr string) (Result, error) {
	node, err := Parse(expr)
	if err != nil {
		return Result{}, err
	}
	v, err := e.eval(ctx, node)
	if err != nil {
		return Result{}, err
	}
	// big.Rat keeps the sign on the numerator and reduces eagerly, so this
	// rendering matches the exact package's canonical form.
	return Result{Canonical: v.Num().String() + "/" + v.Denom().String()}, nil
}

func (e *BigMathEvaluator) eval(ctx context.Context, node Node) (*big.Rat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case Literal:
		i, err := parseBigLiteral(n.Text)
		if err != nil {
			return nil, err
		}
		return new(big.Rat).SetInt(i), nil

	case Unary:
		x, err := e.eval(ctx, n.X)
		if err != nil {
			return nil, err
		}
		return new(big.Rat).Neg(x), nil

	case Binary:
		x, err := e.eval(ctx, n.X)
		if err != nil {
			return nil, err
		}
		y, err := e.eval(ctx, n.Y)
		if err != nil {
			return nil, err
		}
		return e.apply(n.Op, x, y)
	}
	return nil, fmt.Errorf("%w: unknown node %T", exact.ErrInvalidArgument, node)
}

func (e *BigMathEvaluator) apply(op token, x, y *big.Rat) (*big.Rat, error) {
	switch op.kind {
	case tokenPlus:
		return new(big.Rat).Add(x, y), nil
	case tokenMinus:
		return new(big.Rat).Sub(x, y), nil
	case tokenStar:
		return new(big.Rat).Mul(x, y), nil
	case tokenSlash:
		if y.Sign() == 0 {
			return nil, exact.ErrDivideByZero
		}
		return new(big.Rat).Quo(x, y), nil
	case tokenPercent:
		xi, yi, err := bigIntegralOperands(op, x, y)
		if err != nil {
			return nil, err
		}
		if yi.Sign() == 0 {
			return nil, exact.ErrDivideByZero
		}
		// Truncated division: the remainder carries the dividend's sign.
		r := new(big.Int).Rem(xi, yi)
		return new(big.Rat).SetInt(r), nil
	case tokenShl, tokenShr:
		xi, _, err := bigIntegralOperands(op, x, new(big.Rat))
		if err != nil {
			return nil, err
		}
		count, err := bigShiftCount(y)
		if err != nil {
			return nil, err
		}
		var r *big.Int
		if op.kind == tokenShl {
			r = new(big.Int).Lsh(xi, count)
		} else {
			// Shift the magnitude so negative values mirror the
			// sign-magnitude semantics of the native backend.
			mag := new(big.Int).Abs(xi)
			mag.Rsh(mag, count)
			r = mag
			if xi.Sign() < 0 {
				r.Neg(r)
			}
		}
		return new(big.Rat).SetInt(r), nil
	}
	return nil, fmt.Errorf("%w: unknown operator %q", exact.ErrInvalidArgument, op.text)
}

// parseBigLiteral applies the same base-prefix grammar as the exact package
// parser: 0x/0X hex, bare leading 0 octal, decimal otherwise.
func parseBigLiteral(text string) (*big.Int, error) {
	digits, base := text, 10
	switch {
	case len(text) > 1 && (text[:2] == "0x" || text[:2] == "0X"):
		digits, base = text[2:], 16
	case len(text) > 1 && text[0] == '0':
		digits, base = text[1:], 8
	}
	i, ok := new(big.Int).SetString(digits, base)
	if !ok || len(digits) == 0 {
		return nil, fmt.Errorf("%w: invalid literal %q", exact.ErrInvalidArgument, text)
	}
	return i, nil
}

func bigIntegralOperands(op token, x, y *big.Rat) (*big.Int, *big.Int, error) {
	if !x.IsInt() || !y.IsInt() {
		return nil, nil, fmt.Errorf("%w: operator %q requires integral operands",
			exact.ErrInvalidArgument, op.text)
	}
	return new(big.Int).Set(x.Num()), new(big.Int).Set(y.Num()), nil
}

func bigShiftCount(y *big.Rat) (uint, error) {
	if !y.IsInt() || y.Sign() < 0 {
		return 0, fmt.Errorf("%w: shift count must be a non-negative integer",
			exact.ErrInvalidArgument)
	}
	if !y.Num().IsUint64() {
		return 0, exact.ErrOverflow
	}
	v := y.Num().Uint64()
	if v > maxShiftBits {
		return 0, fmt.Errorf("%w: shift count %d too large", exact.ErrOverflow, v)
	}
	return uint(v), nil
}
