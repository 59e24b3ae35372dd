package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "github.com/agbru/exactcalc/internal/errors"
	"github.com/agbru/exactcalc/internal/logging"
	"github.com/agbru/exactcalc/internal/ui"
)

func newTestApp(t *testing.T, args ...string) *Application {
	t.Helper()
	ui.SetTheme("none")
	t.Cleanup(func() { ui.SetTheme("dark") })

	app, err := New(append([]string{"exactcalc"}, args...), &bytes.Buffer{},
		WithLogger(logging.NopLogger{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return app
}

func TestRunEvaluateQuiet(t *testing.T) {
	app := newTestApp(t, "-q", "1/3", "+", "1/6")
	var out bytes.Buffer
	code := app.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if strings.TrimSpace(out.String()) != "1/2" {
		t.Errorf("quiet output = %q, want 1/2", out.String())
	}
}

func TestRunEvaluateHexFlags(t *testing.T) {
	app := newTestApp(t, "-q", "-base", "16", "-show-base", "-upper", "255", "+", "0")
	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if strings.TrimSpace(out.String()) != "0XFF" {
		t.Errorf("output = %q, want 0XFF", out.String())
	}
}

func TestRunEvaluateAllBackendsAgree(t *testing.T) {
	app := newTestApp(t, "-q", "-backend", "all", "1313", "%", "-39")
	var out bytes.Buffer
	code := app.Run(context.Background(), &out)
	if code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d, output:\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "26/1") {
		t.Errorf("comparison output missing result:\n%s", out.String())
	}
}

func TestRunEvaluateDivideByZero(t *testing.T) {
	app := newTestApp(t, "-q", "1", "/", "0")
	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitErrorGeneric {
		t.Fatalf("exit code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
}

func TestRunNoExpression(t *testing.T) {
	app := newTestApp(t)
	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitErrorConfig {
		t.Fatalf("exit code = %d, want config error", code)
	}
}

func TestRunCompletion(t *testing.T) {
	app := newTestApp(t, "-completion", "bash")
	var out bytes.Buffer
	if code := app.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(out.String(), "_exactcalc") {
		t.Error("completion script missing")
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New([]string{"exactcalc", "-base", "3", "1"}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("invalid base should fail")
	}
}

func TestHasVersionFlag(t *testing.T) {
	if !HasVersionFlag([]string{"-version"}) || !HasVersionFlag([]string{"--version"}) || !HasVersionFlag([]string{"-V"}) {
		t.Error("version flags not detected")
	}
	if HasVersionFlag([]string{"1", "+", "2"}) {
		t.Error("expression misread as version flag")
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	PrintVersion(&out)
	if !strings.Contains(out.String(), "exactcalc") {
		t.Errorf("version banner = %q", out.String())
	}
}

func TestIsHelpError(t *testing.T) {
	_, err := New([]string{"exactcalc", "-h"}, &bytes.Buffer{})
	if !IsHelpError(err) {
		t.Errorf("-h should yield flag.ErrHelp, got %v", err)
	}
}
