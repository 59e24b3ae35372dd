package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/exactcalc/internal/errors"
	"github.com/agbru/exactcalc/internal/eval"
	"github.com/agbru/exactcalc/internal/logging"
	"github.com/agbru/exactcalc/internal/metrics"
)

// tracerName identifies this package's OpenTelemetry tracer. Spans are no-ops
// unless the embedding process installs an SDK.
const tracerName = "exactcalc/orchestration"

// Orchestrator fans one expression out across evaluation backends and
// cross-checks the results.
type Orchestrator struct {
	logger  logging.Logger
	metrics *metrics.OperationMetrics
}

// New creates an Orchestrator. A nil logger disables logging; a nil metrics
// sink disables instrumentation.
func New(logger logging.Logger, m *metrics.OperationMetrics) *Orchestrator {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Orchestrator{logger: logger, metrics: m}
}

// ExecuteEvaluations runs expr through every given backend concurrently and
// returns one result per backend, ordered by registry key. Individual backend
// failures are recorded in the results rather than aborting the group, so a
// crashing oracle still leaves the native answer usable.
func (o *Orchestrator) ExecuteEvaluations(ctx context.Context, expr string, backends map[string]eval.Evaluator) []EvaluationResult {
	keys := make([]string, 0, len(backends))
	for key := range backends {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "evaluate")
	span.SetAttributes(
		attribute.Int("expr.length", len(expr)),
		attribute.Int("backends", len(keys)),
	)
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]EvaluationResult, len(keys))

	for i, key := range keys {
		idx, k, backend := i, key, backends[key]
		g.Go(func() error {
			_, evalSpan := tracer.Start(ctx, "evaluate.backend")
			evalSpan.SetAttributes(attribute.String("backend", k))
			defer evalSpan.End()

			start := time.Now()
			res, err := backend.Evaluate(ctx, expr)
			elapsed := time.Since(start)

			results[idx] = EvaluationResult{
				Key: k, Name: backend.Name(), Result: res, Duration: elapsed, Err: err,
			}

			o.metrics.ObserveEvaluation(k, elapsed, err)
			if err != nil {
				o.logger.Error("evaluation failed", err,
					logging.String("backend", k))
				return nil
			}
			o.logger.Debug("evaluation complete",
				logging.String("backend", k),
				logging.Float64("seconds", elapsed.Seconds()))
			return nil
		})
	}

	g.Wait()
	return results
}

// AnalyzeResults validates the cross-backend results and returns the process
// exit code. All successful backends must agree on the canonical rendering;
// any disagreement is a critical inconsistency.
func (o *Orchestrator) AnalyzeResults(expr string, results []EvaluationResult, presenter ResultPresenter, out io.Writer) int {
	var first *EvaluationResult
	var firstErr error
	successes := 0

	for i := range results {
		if results[i].Err != nil {
			if firstErr == nil {
				firstErr = results[i].Err
			}
			continue
		}
		successes++
		if first == nil {
			first = &results[i]
		}
	}

	if presenter != nil {
		presenter.PresentComparisonTable(results, out)
	}

	if successes == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No backend could evaluate the expression.\n")
		return apperrors.ExitCode(firstErr)
	}

	rendered := make(map[string]string, len(results))
	mismatch := false
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		rendered[res.Key] = res.Result.Canonical
		if res.Result.Canonical != first.Result.Canonical {
			mismatch = true
		}
	}
	if mismatch {
		err := apperrors.MismatchError{Expr: expr, Results: rendered}
		o.logger.Error("backends disagree", err)
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %v\n", err)
		return apperrors.ExitErrorMismatch
	}

	// With partial failures the surviving answers agree; report the first
	// error but keep the successful status visible in the table.
	if firstErr != nil && successes < len(results) {
		o.logger.Warn("some backends failed", logging.Err(firstErr))
	}

	return apperrors.ExitSuccess
}
