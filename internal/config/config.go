// Package config defines the exactcalc application configuration and the
// logic that resolves it from command-line flags and environment variables.
// Priority: CLI flags > environment variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/exactcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "EXACTCALC_"

// Default values applied before flags and environment overrides.
const (
	DefaultBackend = "native"
	DefaultBase    = 10
	DefaultTimeout = 30 * time.Second
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Expr is the expression to evaluate, taken from the positional
	// arguments joined with spaces.
	Expr string
	// Backend selects the evaluation backend, or "all" to cross-check
	// every registered backend.
	Backend string
	// Base is the output base: 8, 10 or 16.
	Base int
	// Upper renders hexadecimal output in uppercase.
	Upper bool
	// ShowBase prefixes output with 0 / 0x / 0X.
	ShowBase bool
	// Timeout bounds a single evaluation.
	Timeout time.Duration
	// REPL starts the interactive line-oriented mode.
	REPL bool
	// TUI starts the full-screen dashboard.
	TUI bool
	// ServeAddr, when non-empty, serves /metrics and /healthz on the address.
	ServeAddr string
	// Completion requests a shell completion script ("bash" or "zsh").
	Completion string
	// Verbose lowers the log level to debug.
	Verbose bool
	// Quiet raises the log level to error.
	Quiet bool
}

// ParseConfig parses command-line arguments into an AppConfig, applies
// environment overrides for flags left unset, and validates the result.
// Usage and flag errors are written to errW.
func ParseConfig(programName string, args []string, errW io.Writer, backends []string) (AppConfig, error) {
	cfg := AppConfig{
		Backend: DefaultBackend,
		Base:    DefaultBase,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errW)

	fs.StringVar(&cfg.Backend, "backend", cfg.Backend,
		fmt.Sprintf("evaluation backend (%s, or all)", strings.Join(backends, ", ")))
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "alias for -backend")
	fs.IntVar(&cfg.Base, "base", cfg.Base, "output base: 8, 10 or 16")
	fs.BoolVar(&cfg.Upper, "upper", cfg.Upper, "uppercase hexadecimal output")
	fs.BoolVar(&cfg.ShowBase, "show-base", cfg.ShowBase, "prefix output with 0 / 0x / 0X")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "evaluation timeout")
	fs.BoolVar(&cfg.REPL, "repl", cfg.REPL, "start the interactive calculator")
	fs.BoolVar(&cfg.REPL, "i", cfg.REPL, "alias for -repl")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "start the full-screen dashboard")
	fs.StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "serve /metrics and /healthz on this address")
	fs.StringVar(&cfg.Completion, "completion", cfg.Completion, "emit a completion script (bash or zsh)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "debug logging")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "alias for -verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "errors only")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "alias for -quiet")

	fs.Usage = func() {
		fmt.Fprintf(errW, "Usage: %s [flags] <expression>\n\n", programName)
		fmt.Fprintf(errW, "Evaluate an exact arithmetic expression, e.g. %s '1/3 + 1/6'\n\n", programName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	cfg.Expr = strings.TrimSpace(strings.Join(fs.Args(), " "))
	applyEnvOverrides(&cfg, fs)

	if err := validate(cfg, backends); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects configurations the rest of the program cannot act on.
func validate(cfg AppConfig, backends []string) error {
	switch cfg.Base {
	case 8, 10, 16:
	default:
		return apperrors.NewConfigError("invalid base %d: must be 8, 10 or 16", cfg.Base)
	}

	if cfg.Backend != "all" && !slices.Contains(backends, cfg.Backend) {
		return apperrors.NewConfigError("unknown backend %q: available %s (or all)",
			cfg.Backend, strings.Join(backends, ", "))
	}

	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}

	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}

	if cfg.Completion != "" && cfg.Completion != "bash" && cfg.Completion != "zsh" {
		return apperrors.NewConfigError("unsupported completion shell %q", cfg.Completion)
	}

	if cfg.REPL && cfg.TUI {
		return apperrors.NewConfigError("repl and tui are mutually exclusive")
	}

	return nil
}
