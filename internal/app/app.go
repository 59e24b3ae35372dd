// Package app assembles the exactcalc application: configuration, logging,
// metrics, backends, and the dispatch across run modes (evaluate, compare,
// REPL, TUI, metrics server, completion).
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/exactcalc/internal/cli"
	"github.com/agbru/exactcalc/internal/config"
	apperrors "github.com/agbru/exactcalc/internal/errors"
	"github.com/agbru/exactcalc/internal/eval"
	"github.com/agbru/exactcalc/internal/logging"
	"github.com/agbru/exactcalc/internal/metrics"
	"github.com/agbru/exactcalc/internal/ui"
)

// Application represents the exactcalc application instance.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	Metrics   *metrics.OperationMetrics
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "exactcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, eval.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "exactcalc")
	}
	app.Metrics = metrics.NewOperationMetrics()
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	a.applyLogLevel()
	ui.InitTheme(false)

	switch {
	case a.Config.Completion != "":
		return a.runCompletion(out)
	case a.Config.ServeAddr != "":
		return a.runServe(ctx)
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.REPL:
		return a.runREPL()
	case a.Config.Expr != "":
		return a.runEvaluate(ctx, out)
	}

	fmt.Fprintf(a.ErrWriter, "no expression given; try %q or -repl\n", "exactcalc '1/3 + 1/6'")
	return apperrors.ExitErrorConfig
}

// applyLogLevel maps the quiet/verbose flags onto the global zerolog level.
func (a *Application) applyLogLevel() {
	switch {
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, eval.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive line-oriented calculator.
func (a *Application) runREPL() int {
	repl := cli.NewREPL(eval.All(), a.Config)
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
