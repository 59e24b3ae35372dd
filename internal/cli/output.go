// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/exactcalc/exact"
	"github.com/agbru/exactcalc/internal/config"
	"github.com/agbru/exactcalc/internal/orchestration"
	"github.com/agbru/exactcalc/internal/ui"
)

// FormatRational renders a rational according to the output flags. Integral
// values print without the "/1" tail; everything else prints as
// numerator/denominator in the requested base.
func FormatRational(v *exact.Rational, cfg config.AppConfig) string {
	verb := "%d"
	switch {
	case cfg.Base == 16 && cfg.Upper:
		verb = "%X"
	case cfg.Base == 16:
		verb = "%x"
	case cfg.Base == 8:
		verb = "%o"
	}
	if cfg.ShowBase {
		verb = "%#" + verb[1:]
	}

	if v.IsInt() {
		return fmt.Sprintf(verb, v.Num())
	}
	return fmt.Sprintf(verb, v)
}

// Presenter renders evaluation results for the terminal. It implements
// orchestration.ResultPresenter.
type Presenter struct {
	// Config carries the output flags (base, case, prefixes, quiet).
	Config config.AppConfig
}

// PresentResult displays a single evaluation outcome.
func (p Presenter) PresentResult(result orchestration.EvaluationResult, out io.Writer) {
	if result.Err != nil {
		fmt.Fprintf(out, "%sError:%s %v\n", ui.ColorRed(), ui.ColorReset(), result.Err)
		return
	}

	value := result.Result.Canonical
	if result.Result.Value != nil {
		value = FormatRational(result.Result.Value, p.Config)
	}

	if p.Config.Quiet {
		fmt.Fprintln(out, value)
		return
	}

	fmt.Fprintf(out, "%s%s%s\n", ui.ColorGreen(), TruncateValue(value), ui.ColorReset())
	fmt.Fprintf(out, "%s(%s, %s)%s\n",
		ui.ColorSecondary(), result.Name, FormatExecutionDuration(result.Duration), ui.ColorReset())
}

// PresentComparisonTable displays the per-backend comparison summary used by
// the cross-check mode.
func (p Presenter) PresentComparisonTable(results []orchestration.EvaluationResult, out io.Writer) {
	fmt.Fprintf(out, "\n%sBackend comparison:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "  %s%-20s%s %12s  %sError: %v%s\n",
				ui.ColorYellow(), res.Key, ui.ColorReset(),
				FormatExecutionDuration(res.Duration),
				ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		fmt.Fprintf(out, "  %s%-20s%s %12s  %s%s%s\n",
			ui.ColorYellow(), res.Key, ui.ColorReset(),
			FormatExecutionDuration(res.Duration),
			ui.ColorGreen(), TruncateValue(res.Result.Canonical), ui.ColorReset())
	}

	fmt.Fprintf(out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
}
