package app

import (
	"context"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/agbru/exactcalc/internal/cli"
	apperrors "github.com/agbru/exactcalc/internal/errors"
	"github.com/agbru/exactcalc/internal/eval"
	"github.com/agbru/exactcalc/internal/logging"
	"github.com/agbru/exactcalc/internal/orchestration"
	"github.com/agbru/exactcalc/internal/server"
	"github.com/agbru/exactcalc/internal/tui"
)

// runEvaluate evaluates the configured expression, either on the selected
// backend or across all of them with cross-checking.
func (a *Application) runEvaluate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	backends := a.selectBackends()
	orch := orchestration.New(a.Logger, a.Metrics)
	presenter := cli.Presenter{Config: a.Config}

	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
	}
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go cli.DisplayProgress(&wg, done, "evaluating", progressOut)

	results := orch.ExecuteEvaluations(ctx, a.Config.Expr, backends)
	close(done)
	wg.Wait()

	if len(backends) > 1 {
		return orch.AnalyzeResults(a.Config.Expr, results, presenter, out)
	}

	res := results[0]
	presenter.PresentResult(res, out)
	if res.Err != nil {
		a.Logger.Error("evaluation failed", res.Err, logging.String("expr", a.Config.Expr))
		return apperrors.ExitCode(res.Err)
	}
	return apperrors.ExitSuccess
}

// selectBackends resolves the -backend flag into evaluator instances.
func (a *Application) selectBackends() map[string]eval.Evaluator {
	if a.Config.Backend == "all" {
		return eval.All()
	}
	backends := make(map[string]eval.Evaluator, 1)
	if ev, ok := eval.New(a.Config.Backend); ok {
		backends[a.Config.Backend] = ev
	}
	return backends
}

// runTUI launches the interactive dashboard on the selected backend.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	backend, ok := eval.New(a.Config.Backend)
	if !ok {
		backend, _ = eval.New("native")
	}
	return tui.Run(ctx, backend, a.Config, Version)
}

// runServe exposes the metrics endpoint until interrupted.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	srvMetrics := server.NewMetrics()
	srvMetrics.Register(a.Metrics.Registry())

	srv := server.New(a.Config.ServeAddr, srvMetrics, a.Logger)
	if err := srv.Run(ctx); err != nil {
		a.Logger.Error("metrics server failed", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
