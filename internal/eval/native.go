package eval

import (
	"context"
	"fmt"

	"github.com/agbru/exactcalc/exact"
)

// maxShiftBits bounds shift counts so a typo cannot request a result larger
// than memory.
const maxShiftBits = 1 << 26

func init() {
	Register("native", func() Evaluator { return &NativeEvaluator{} })
}

// NativeEvaluator evaluates expressions with the exact package. This is the
// implementation under test; the other backends exist to cross-check it.
type NativeEvaluator struct{}

// Name returns the backend name.
func (e *NativeEvaluator) Name() string { return "native (exact)" }

// Evaluate parses and evaluates expr into an exact rational.
func (e *NativeEvaluator) Evaluate(ctx context.Context, expr string) (Result, error) {
	node, err := Parse(expr)
	if err != nil {
		return Result{}, err
	}
	v, err := e.eval(ctx, node)
	if err != nil {
		return Result{}, err
	}
	return Result{Canonical: v.String(), Value: v}, nil
}

func (e *NativeEvaluator) eval(ctx context.Context, node Node) (*exact.Rational, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case Literal:
		v, err := exact.ParseInteger(n.Text)
		if err != nil {
			return nil, err
		}
		return exact.RationalFromInteger(v), nil

	case Unary:
		x, err := e.eval(ctx, n.X)
		if err != nil {
			return nil, err
		}
		return x.Neg(), nil

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

func (e *NativeEvaluator) apply(op token, x, y *exact.Rational) (*exact.Rational, error) {
	switch op.kind {
	case tokenPlus:
		return x.Add(y), nil
	case tokenMinus:
		return x.Sub(y), nil
	case tokenStar:
		return x.Mul(y), nil
	case tokenSlash:
		return x.Div(y)
	case tokenPercent:
		xi, yi, err := integralOperands(op, x, y)
		if err != nil {
			return nil, err
		}
		r, err := xi.Mod(yi)
		if err != nil {
			return nil, err
		}
		return exact.RationalFromInteger(r), nil
	case tokenShl, tokenShr:
		xi, _, err := integralOperands(op, x, exact.RationalFromInteger(exact.NewInteger(0)))
		if err != nil {
			return nil, err
		}
		count, err := shiftCount(y)
		if err != nil {
			return nil, err
		}
		if op.kind == tokenShl {
			return exact.RationalFromInteger(xi.Shl(count)), nil
		}
		return exact.RationalFromInteger(xi.Shr(count)), nil
	}
	return nil, fmt.Errorf("%w: unknown operator %q", exact.ErrInvalidArgument, op.text)
}

// integralOperands converts both rationals to Integers, failing with
// invalid-argument when either has a non-trivial denominator.
func integralOperands(op token, x, y *exact.Rational) (*exact.Integer, *exact.Integer, error) {
	if !x.IsInt() || !y.IsInt() {
		return nil, nil, fmt.Errorf("%w: operator %q requires integral operands",
			exact.ErrInvalidArgument, op.text)
	}
	return x.Num(), y.Num(), nil
}

// shiftCount extracts a shift amount from a rational operand: it must be a
// non-negative integer of sane size.
func shiftCount(y *exact.Rational) (uint, error) {
	if !y.IsInt() || y.Sign() < 0 {
		return 0, fmt.Errorf("%w: shift count must be a non-negative integer",
			exact.ErrInvalidArgument)
	}
	v, err := y.Num().Uint64()
	if err != nil {
		return 0, err
	}
	if v > maxShiftBits {
		return 0, fmt.Errorf("%w: shift count %d too large", exact.ErrOverflow, v)
	}
	return uint(v), nil
}
