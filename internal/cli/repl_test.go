package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/exactcalc/internal/config"
	"github.com/agbru/exactcalc/internal/eval"
	"github.com/agbru/exactcalc/internal/ui"
)

func newTestREPL(t *testing.T, input string) (*REPL, *bytes.Buffer) {
	t.Helper()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetTheme("dark") })

	cfg := config.AppConfig{Backend: "native", Base: 10, Timeout: 10 * time.Second}
	r := NewREPL(eval.All(), cfg)
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	return r, &out
}

func TestREPLEvaluatesExpression(t *testing.T) {
	r, out := newTestREPL(t, "1/3 + 1/6\nexit\n")
	r.Start()

	if !strings.Contains(out.String(), "= 1/2") {
		t.Errorf("output missing result, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("exit should say goodbye")
	}
}

func TestREPLBaseCommand(t *testing.T) {
	r, out := newTestREPL(t, "base 16\n255\nbase 7\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "Output base changed to 16") {
		t.Errorf("base command not acknowledged:\n%s", s)
	}
	if !strings.Contains(s, "= ff") {
		t.Errorf("hex output missing:\n%s", s)
	}
	if !strings.Contains(s, "Invalid base: 7") {
		t.Errorf("invalid base not rejected:\n%s", s)
	}
}

func TestREPLBackendCommand(t *testing.T) {
	r, out := newTestREPL(t, "backend bigmath\nbackend abacus\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "Backend changed to") {
		t.Errorf("backend switch missing:\n%s", s)
	}
	if !strings.Contains(s, "Unknown backend: abacus") {
		t.Errorf("unknown backend not rejected:\n%s", s)
	}
}

func TestREPLCompare(t *testing.T) {
	r, out := newTestREPL(t, "compare 2/3 * 3/4\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "Comparison for") {
		t.Errorf("compare output missing:\n%s", s)
	}
	if strings.Contains(s, "INCONSISTENT") {
		t.Errorf("backends disagreed:\n%s", s)
	}
}

func TestREPLErrorsStayInSession(t *testing.T) {
	r, out := newTestREPL(t, "1/0\nstatus\nexit\n")
	r.Start()

	s := out.String()
	if !strings.Contains(s, "divide by zero") {
		t.Errorf("error not shown:\n%s", s)
	}
	if !strings.Contains(s, "Current configuration") {
		t.Errorf("session should continue after an error:\n%s", s)
	}
}

func TestREPLEOFExits(t *testing.T) {
	r, out := newTestREPL(t, "")
	r.Start()
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("EOF should end the session politely")
	}
}
