package orchestration

import (
	"io"
	"time"

	"github.com/agbru/exactcalc/internal/eval"
)

// EvaluationResult encapsulates the outcome of a single backend evaluation.
// It is the shared domain type between orchestration and presentation layers.
type EvaluationResult struct {
	// Key is the registry key of the backend ("native", "bigmath", ...).
	Key string
	// Name is the human-readable backend name.
	Name string
	// Result holds the evaluation outcome; meaningless when Err is set.
	Result eval.Result
	// Duration is the time taken to complete the evaluation.
	Duration time.Duration
	// Err contains any error that occurred during the evaluation.
	Err error
}

// ResultPresenter defines the interface for presenting evaluation results.
// It decouples orchestration from presentation so different front-ends (CLI
// table, TUI, tests) can render the same results.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-backend comparison summary.
	PresentComparisonTable(results []EvaluationResult, out io.Writer)

	// PresentResult displays a single evaluation result.
	PresentResult(result EvaluationResult, out io.Writer)
}
