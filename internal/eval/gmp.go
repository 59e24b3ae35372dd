//go:build gmp

// This file provides a GMP-backed evaluation oracle, conditionally compiled
// with the "gmp" build tag. The build tag architecture ensures that:
//   - The project builds without GMP by default
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
package eval

import (
	"context"
	"fmt"

	"github.com/ncw/gmp"

	"github.com/agbru/exactcalc/exact"
)

func init() {
	Register("gmp", func() Evaluator { return &GMPEvaluator{} })
}

// GMPEvaluator evaluates expressions on top of libgmp via github.com/ncw/gmp.
// Rationals are carried as a reduced numerator/denominator pair of gmp.Int
// values with the sign on the numerator, matching the canonical form of the
// other backends.
type GMPEvaluator struct{}

// Name returns the backend name.
func (e *GMPEvaluator) Name() string { return "gmp (libgmp)" }

// gmpRat is a rational over gmp.Int, always normalized.
type gmpRat struct {
	num *gmp.Int
	den *gmp.Int // positive
}

func gmpRatFromInt(i *gmp.Int) *gmpRat {
	return &gmpRat{num: i, den: gmp.NewInt(1)}
}

// normalize reduces by the gcd of |num| and den and restores 0/1 for zero.
func (r *gmpRat) normalize() *gmpRat {
	if r.den.Sign() < 0 {
		r.num.Neg(r.num)
		r.den.Neg(r.den)
	}
	if r.num.Sign() == 0 {
		r.den.SetInt64(1)
		return r
	}
	g := new(gmp.Int).GCD(nil, nil, new(gmp.Int).Abs(r.num), r.den)
	if g.Cmp(gmp.NewInt(1)) != 0 {
		r.num.Quo(r.num, g)
		r.den.Quo(r.den, g)
	}
	return r
}

func (r *gmpRat) isInt() bool { return r.den.Cmp(gmp.NewInt(1)) == 0 }

// Evaluate parses and evaluates expr with gmp arithmetic.
func (e *GMPEvaluator) Evaluate(ctx context.Context, expr string) (Result, error) {
	node, err := Parse(expr)
	if err != nil {
		return Result{}, err
	}
	v, err := e.eval(ctx, node)
	if err != nil {
		return Result{}, err
	}
	return Result{Canonical: v.num.String() + "/" + v.den.String()}, nil
}

func (e *GMPEvaluator) eval(ctx context.Context, node Node) (*gmpRat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch n := node.(type) {
	case Literal:
		i, err := parseGMPLiteral(n.Text)
		if err != nil {
			return nil, err
		}
		return gmpRatFromInt(i), nil

	case Unary:
		x, err := e.eval(ctx, n.X)
		if err != nil {
			return nil, err
		}
		x.num.Neg(x.num)
		return x, nil

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

func (e *GMPEvaluator) apply(op token, x, y *gmpRat) (*gmpRat, error) {
	switch op.kind {
	case tokenPlus, tokenMinus:
		lhs := new(gmp.Int).Mul(x.num, y.den)
		rhs := new(gmp.Int).Mul(y.num, x.den)
		num := new(gmp.Int)
		if op.kind == tokenPlus {
			num.Add(lhs, rhs)
		} else {
			num.Sub(lhs, rhs)
		}
		r := &gmpRat{num: num, den: new(gmp.Int).Mul(x.den, y.den)}
		return r.normalize(), nil
	case tokenStar:
		r := &gmpRat{
			num: new(gmp.Int).Mul(x.num, y.num),
			den: new(gmp.Int).Mul(x.den, y.den),
		}
		return r.normalize(), nil
	case tokenSlash:
		if y.num.Sign() == 0 {
			return nil, exact.ErrDivideByZero
		}
		r := &gmpRat{
			num: new(gmp.Int).Mul(x.num, y.den),
			den: new(gmp.Int).Mul(x.den, y.num),
		}
		return r.normalize(), nil
	case tokenPercent:
		if !x.isInt() || !y.isInt() {
			return nil, fmt.Errorf("%w: operator %q requires integral operands",
				exact.ErrInvalidArgument, op.text)
		}
		if y.num.Sign() == 0 {
			return nil, exact.ErrDivideByZero
		}
		return gmpRatFromInt(new(gmp.Int).Rem(x.num, y.num)), nil
	case tokenShl, tokenShr:
		if !x.isInt() {
			return nil, fmt.Errorf("%w: operator %q requires integral operands",
				exact.ErrInvalidArgument, op.text)
		}
		count, err := gmpShiftCount(y)
		if err != nil {
			return nil, err
		}
		if op.kind == tokenShl {
			return gmpRatFromInt(new(gmp.Int).Lsh(x.num, count)), nil
		}
		mag := new(gmp.Int).Abs(x.num)
		mag.Rsh(mag, count)
		if x.num.Sign() < 0 {
			mag.Neg(mag)
		}
		return gmpRatFromInt(mag), nil
	}
	return nil, fmt.Errorf("%w: unknown operator %q", exact.ErrInvalidArgument, op.text)
}

func parseGMPLiteral(text string) (*gmp.Int, error) {
	digits, base := text, 10
	switch {
	case len(text) > 1 && (text[:2] == "0x" || text[:2] == "0X"):
		digits, base = text[2:], 16
	case len(text) > 1 && text[0] == '0':
		digits, base = text[1:], 8
	}
	i, ok := new(gmp.Int).SetString(digits, base)
	if !ok || len(digits) == 0 {
		return nil, fmt.Errorf("%w: invalid literal %q", exact.ErrInvalidArgument, text)
	}
	return i, nil
}

func gmpShiftCount(y *gmpRat) (uint, error) {
	if !y.isInt() || y.num.Sign() < 0 {
		return 0, fmt.Errorf("%w: shift count must be a non-negative integer",
			exact.ErrInvalidArgument)
	}
	if y.num.BitLen() > 32 {
		return 0, exact.ErrOverflow
	}
	v := y.num.Uint64()
	if v > maxShiftBits {
		return 0, fmt.Errorf("%w: shift count %d too large", exact.ErrOverflow, v)
	}
	return uint(v), nil
}
