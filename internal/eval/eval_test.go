package eval

import (
	"context"
	"errors"
	"testing"

	"github.com/agbru/exactcalc/exact"
)

// evaluators returns every backend compiled into this test binary.
func evaluators() map[string]Evaluator {
	return All()
}

func TestRegistryHasCoreBackends(t *testing.T) {
	names := List()
	want := map[string]bool{"native": false, "bigmath": false}
	for _, n := range names {
		if _, ok := want[n]; ok {
			want[n] = true
		}
	}
	for n, seen := range want {
		if !seen {
			t.Errorf("backend %q not registered (have %v)", n, names)
		}
	}
}

func TestEvaluateAcrossBackends(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1 + 2", "3/1"},
		{"1/3 + 1/6", "1/2"},
		{"2/3 * 3/4", "1/2"},
		{"(1 + 2) * 4", "12/1"},
		{"1 - 2", "-1/1"},
		{"-5 % 3", "-2/1"},
		{"1313 % -39", "26/1"},
		{"1 << 10", "1024/1"},
		{"1024 >> 3", "128/1"},
		{"-8 >> 1", "-4/1"},
		{"0x10 * 2", "32/1"},
		{"0X10 + 0", "16/1"},
		{"010 + 0", "8/1"},
		{"1024/384", "8/3"},
		{"-1313/39", "-101/3"},
		{"2 - 2", "0/1"},
		{"--3", "3/1"},
		{"-(2 + 3)", "-5/1"},
		{"1 + 2 * 3", "7/1"},
		{"2 * 3 << 1", "12/1"},
		{"12345678901234567890 * 98765432109876543210", "1219326311370217952237463801111263526900/1"},
	}
	for name, ev := range evaluators() {
		for _, tc := range tests {
			got, err := ev.Evaluate(context.Background(), tc.expr)
			if err != nil {
				t.Errorf("[%s] %q: %v", name, tc.expr, err)
				continue
			}
			if got.Canonical != tc.want {
				t.Errorf("[%s] %q = %s, want %s", name, tc.expr, got.Canonical, tc.want)
			}
		}
	}
}

func TestEvaluateErrorsAcrossBackends(t *testing.T) {
	tests := []struct {
		expr string
		kind error
	}{
		{"1 / 0", exact.ErrDivideByZero},
		{"1/3 % 2", exact.ErrInvalidArgument},
		{"(1/3) << 2", exact.ErrInvalidArgument},
		{"1 << -1", exact.ErrInvalidArgument},
		{"5 % 0", exact.ErrDivideByZero},
		{"", exact.ErrInvalidArgument},
		{"1 +", exact.ErrInvalidArgument},
		{"(1 + 2", exact.ErrInvalidArgument},
		{"1 $ 2", exact.ErrInvalidArgument},
		{"09 + 1", exact.ErrInvalidArgument},
		{"1 2", exact.ErrInvalidArgument},
		{"1 << 99999999999", exact.ErrOverflow},
	}
	for name, ev := range evaluators() {
		for _, tc := range tests {
			_, err := ev.Evaluate(context.Background(), tc.expr)
			if !errors.Is(err, tc.kind) {
				t.Errorf("[%s] %q error = %v, want %v", name, tc.expr, err, tc.kind)
			}
		}
	}
}

func TestBackendsAgreeOnDivisionChains(t *testing.T) {
	exprs := []string{
		"1/3 + 1/5 + 1/7 + 1/11",
		"(12345678901234567890 / 6) * 6",
		"1 << 200 >> 100",
		"-1313 / -39 * 39",
		"0xffffffffffffffff * 0xffffffffffffffff % 97",
	}
	native, _ := New("native")
	oracle, _ := New("bigmath")
	for _, expr := range exprs {
		a, errA := native.Evaluate(context.Background(), expr)
		b, errB := oracle.Evaluate(context.Background(), expr)
		if errA != nil || errB != nil {
			t.Fatalf("%q: native err %v, bigmath err %v", expr, errA, errB)
		}
		if a.Canonical != b.Canonical {
			t.Errorf("%q: native %s, bigmath %s", expr, a.Canonical, b.Canonical)
		}
	}
}

func TestNativeResultCarriesValue(t *testing.T) {
	native, _ := New("native")
	res, err := native.Evaluate(context.Background(), "1024/384")
	if err != nil {
		t.Fatal(err)
	}
	if res.Value == nil || res.Value.String() != "8/3" {
		t.Fatalf("Value = %v", res.Value)
	}
}

func TestEvaluateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, ev := range evaluators() {
		if _, err := ev.Evaluate(ctx, "1 + 2"); !errors.Is(err, context.Canceled) {
			t.Errorf("[%s] error = %v, want context.Canceled", name, err)
		}
	}
}
