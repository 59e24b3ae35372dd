package config

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/exactcalc/internal/errors"
)

var testBackends = []string{"native", "bigmath"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("exactcalc", args, io.Discard, testBackends)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t, "1", "+", "2")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Expr != "1 + 2" {
		t.Errorf("Expr = %q", cfg.Expr)
	}
	if cfg.Backend != "native" || cfg.Base != 10 || cfg.Timeout != 30*time.Second {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parse(t, "-backend", "all", "-base", "16", "-upper", "-show-base", "-timeout", "2m", "0xff * 2")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend != "all" || cfg.Base != 16 || !cfg.Upper || !cfg.ShowBase {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if cfg.Expr != "0xff * 2" {
		t.Errorf("Expr = %q", cfg.Expr)
	}
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad base", []string{"-base", "12", "1+1"}},
		{"unknown backend", []string{"-backend", "abacus", "1+1"}},
		{"negative timeout", []string{"-timeout", "-5s", "1+1"}},
		{"quiet and verbose", []string{"-q", "-v", "1+1"}},
		{"bad completion shell", []string{"-completion", "fish"}},
		{"repl and tui", []string{"-repl", "-tui"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("error = %v, want ConfigError", err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"BASE", "16")
	t.Setenv(EnvPrefix+"BACKEND", "bigmath")
	t.Setenv(EnvPrefix+"UPPER", "yes")

	cfg, err := parse(t, "1+1")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Base != 16 || cfg.Backend != "bigmath" || !cfg.Upper {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestFlagsBeatEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"BASE", "16")
	cfg, err := parse(t, "-base", "8", "1+1")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Base != 8 {
		t.Errorf("flag should beat env, got base %d", cfg.Base)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{"YES", false, true},
		{"false", true, false},
		{"0", true, false},
		{"No", true, false},
		{"maybe", true, true},
		{"", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}

func TestUsageMentionsBackends(t *testing.T) {
	var sb strings.Builder
	_, err := ParseConfig("exactcalc", []string{"-h"}, &sb, testBackends)
	if err == nil {
		t.Fatal("-h should return flag.ErrHelp")
	}
	if !strings.Contains(sb.String(), "native") {
		t.Errorf("usage should list backends, got: %s", sb.String())
	}
}
