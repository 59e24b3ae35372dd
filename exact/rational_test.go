package exact

import (
	"errors"
	"fmt"
	"math/big"
	"testing"
)

func mustRational(t *testing.T, s string) *Rational {
	t.Helper()
	v, err := ParseRational(s)
	if err != nil {
		t.Fatalf("ParseRational(%q): %v", s, err)
	}
	return v
}

// checkNormalized verifies R1-R3 on a result.
func checkNormalized(t *testing.T, v *Rational) {
	t.Helper()
	if v.den.IsZero() {
		t.Fatal("denominator is zero")
	}
	if !v.num.mag.GCD(&v.den).IsOne() {
		t.Fatalf("%s not in lowest terms", v)
	}
	if v.num.IsZero() && !v.den.IsOne() {
		t.Fatalf("zero represented as %s, want 0/1", v)
	}
}

func TestNewRationalReduces(t *testing.T) {
	tests := []struct {
		n, d int64
		want string
	}{
		{1024, 384, "8/3"},
		{-1313, 39, "-101/3"},
		{0, 5, "0/1"},
		{6, -4, "-3/2"},
		{-6, -4, "3/2"},
		{7, 1, "7/1"},
	}
	for _, tc := range tests {
		r, err := NewRational(tc.n, tc.d)
		if err != nil {
			t.Fatalf("NewRational(%d, %d): %v", tc.n, tc.d, err)
		}
		checkNormalized(t, r)
		if r.String() != tc.want {
			t.Errorf("NewRational(%d, %d) = %s, want %s", tc.n, tc.d, r, tc.want)
		}
	}
}

func TestNewRationalZeroDenominator(t *testing.T) {
	if _, err := NewRational(3, 0); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("error = %v, want ErrDivideByZero", err)
	}
}

func TestRationalArithmetic(t *testing.T) {
	tests := []struct{ a, op, b, want string }{
		{"1/2", "+", "1/3", "5/6"},
		{"1/2", "-", "1/3", "1/6"},
		{"2/3", "*", "3/4", "1/2"},
		{"2/3", "/", "3/4", "8/9"},
		{"-1/2", "+", "1/2", "0/1"},
		{"-2/3", "*", "-3/2", "1/1"},
		{"1/3", "/", "-1/3", "-1/1"},
		{"5/1", "+", "-8/1", "-3/1"},
	}
	for _, tc := range tests {
		a, b := mustRational(t, tc.a), mustRational(t, tc.b)
		var got *Rational
		var err error
		switch tc.op {
		case "+":
			got = a.Add(b)
		case "-":
			got = a.Sub(b)
		case "*":
			got = a.Mul(b)
		case "/":
			got, err = a.Div(b)
		}
		if err != nil {
			t.Fatalf("%s %s %s: %v", tc.a, tc.op, tc.b, err)
		}
		checkNormalized(t, got)
		if got.String() != tc.want {
			t.Errorf("%s %s %s = %s, want %s", tc.a, tc.op, tc.b, got, tc.want)
		}
	}
}

func TestRationalDivByZero(t *testing.T) {
	a, err := NewRational(2000, 7)
	if err != nil {
		t.Fatal(err)
	}
	zero, err := NewRational(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Div(zero); !errors.Is(err, ErrDivideByZero) {
		t.Fatalf("error = %v, want ErrDivideByZero", err)
	}
}

func TestRationalCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1/2", "1/3", 1},
		{"1/3", "1/2", -1},
		{"2/4", "1/2", 0},
		{"-1/2", "1/3", -1},
		{"-1/2", "-1/3", -1},
		{"0/1", "0/5", 0},
	}
	for _, tc := range tests {
		if got := mustRational(t, tc.a).Cmp(mustRational(t, tc.b)); got != tc.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRationalHugeProduct(t *testing.T) {
	const (
		aStr = "12345678901234567890123456789012345678901234567890123456789012345678901234567890"
		bStr = "1234567890123456789012345678901234567890123456789012345678901234567890123456789012345678901234567890"
	)
	a := mustRational(t, "-"+aStr+"/13")
	b := mustRational(t, "-"+bStr+"/13")
	got := a.Mul(b)
	checkNormalized(t, got)

	x, _ := new(big.Int).SetString(aStr, 10)
	y, _ := new(big.Int).SetString(bStr, 10)
	wantNum := new(big.Int).Mul(x, y)
	if got.Den().String() != "169" {
		t.Fatalf("denominator = %s, want 169", got.Den())
	}
	if got.Num().String() != wantNum.String() {
		t.Fatalf("numerator = %s, want %s", got.Num(), wantNum)
	}
}

func TestRationalParse(t *testing.T) {
	tests := []struct{ in, want string }{
		{"8/3", "8/3"},
		{"1024/384", "8/3"},
		{"-12/8", "-3/2"},
		{"12/-8", "-3/2"},
		{"-12/-8", "3/2"},
		{"42", "42/1"},
		{"-0x10/0x20", "-1/2"},
		{"010/4", "2/1"},
	}
	for _, tc := range tests {
		r := mustRational(t, tc.in)
		checkNormalized(t, r)
		if r.String() != tc.want {
			t.Errorf("ParseRational(%q) = %s, want %s", tc.in, r, tc.want)
		}
	}
}

func TestRationalParseErrors(t *testing.T) {
	for _, in := range []string{"", "/", "1/", "/2", "1//2", "a/2", "08/3", "1/0x"} {
		if _, err := ParseRational(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseRational(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
	if _, err := ParseRational("3/0"); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("ParseRational(3/0) error = %v, want ErrDivideByZero", err)
	}
}

func TestRationalFormatVerbs(t *testing.T) {
	r := mustRational(t, "-255/16")
	tests := []struct{ format, want string }{
		{"%d", "-255/16"},
		{"%x", "-ff/10"},
		{"%X", "-FF/10"},
		{"%#x", "-0xff/0x10"},
		{"%#X", "-0XFF/0X10"},
		{"%o", "-377/20"},
		{"%#o", "-0377/020"},
		{"%v", "-255/16"},
	}
	for _, tc := range tests {
		if got := fmt.Sprintf(tc.format, r); got != tc.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestNaturalFormatVerbs(t *testing.T) {
	n := mustNatural(t, "255")
	tests := []struct{ format, want string }{
		{"%d", "255"},
		{"%x", "ff"},
		{"%X", "FF"},
		{"%#x", "0xff"},
		{"%#X", "0XFF"},
		{"%o", "377"},
		{"%#o", "0377"},
		{"%s", "255"},
	}
	for _, tc := range tests {
		if got := fmt.Sprintf(tc.format, n); got != tc.want {
			t.Errorf("Sprintf(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}
	if got := fmt.Sprintf("%#x", NewNatural(0)); got != "0x0" {
		t.Errorf("zero with prefix = %q", got)
	}
}

func TestIntegerFormatVerbs(t *testing.T) {
	v := mustInteger(t, "-255")
	if got := fmt.Sprintf("%#X", v); got != "-0XFF" {
		t.Errorf("Sprintf(%%#X) = %q", got)
	}
	if got := fmt.Sprintf("%d", v); got != "-255" {
		t.Errorf("Sprintf(%%d) = %q", got)
	}
}
