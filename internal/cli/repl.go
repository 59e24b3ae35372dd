// Package cli provides the terminal front-ends of exactcalc: single-shot
// output, the REPL, spinner progress and shell completion.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/agbru/exactcalc/internal/config"
	"github.com/agbru/exactcalc/internal/eval"
	"github.com/agbru/exactcalc/internal/ui"
)

// REPL is an interactive exact-arithmetic calculator session.
type REPL struct {
	config     config.AppConfig
	backends   map[string]eval.Evaluator
	currentKey string
	in         io.Reader
	out        io.Writer
}

// NewREPL creates a new REPL over the given backends.
func NewREPL(backends map[string]eval.Evaluator, cfg config.AppConfig) *REPL {
	current := cfg.Backend
	if _, ok := backends[current]; !ok {
		for name := range backends {
			current = name
			break
		}
	}

	return &REPL{
		config:     cfg,
		backends:   backends,
		currentKey: current,
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start begins the interactive session. It reads commands until the user
// exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"exact> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s        %sexactcalc - Exact Arithmetic Calculator%s           %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sEnter any expression to evaluate it, e.g. 1/3 + 1/6%s\n\n", ui.ColorSecondary(), ui.ColorReset())
	fmt.Fprintf(r.out, "%sCommands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbase <8|10|16>%s - Change the output base\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbackend <name>%s - Change backend (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.backendList())
	fmt.Fprintf(r.out, "  %scompare <expr>%s - Evaluate with all backends and cross-check\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s           - List available backends\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Leave the calculator\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// backendList returns a comma-separated list of available backends.
func (r *REPL) backendList() string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "base":
		r.cmdBase(args)
	case "backend":
		r.cmdBackend(args)
	case "compare", "cmp":
		r.cmdCompare(strings.TrimSpace(strings.TrimPrefix(input, parts[0])))
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Anything else is an expression.
		r.evaluate(input)
	}

	return true
}

// evaluate runs an expression through the current backend with a spinner for
// slow evaluations.
func (r *REPL) evaluate(expr string) {
	backend, ok := r.backends[r.currentKey]
	if !ok {
		fmt.Fprintf(r.out, "%sBackend not found: %s%s\n", ui.ColorRed(), r.currentKey, ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, done, "evaluating", r.out)

	start := time.Now()
	res, err := backend.Evaluate(ctx, expr)
	duration := time.Since(start)
	close(done)
	wg.Wait()

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	value := res.Canonical
	if res.Value != nil {
		value = FormatRational(res.Value, r.config)
	}
	fmt.Fprintf(r.out, "= %s%s%s %s(%s)%s\n",
		ui.ColorGreen(), TruncateValue(value), ui.ColorReset(),
		ui.ColorSecondary(), FormatExecutionDuration(duration), ui.ColorReset())
}

// cmdBase handles the "base" command.
func (r *REPL) cmdBase(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: base <8|10|16>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	base, err := strconv.Atoi(args[0])
	if err != nil || (base != 8 && base != 10 && base != 16) {
		fmt.Fprintf(r.out, "%sInvalid base: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Base = base
	fmt.Fprintf(r.out, "Output base changed to %s%d%s\n", ui.ColorGreen(), base, ui.ColorReset())
}

// cmdBackend handles the "backend" command.
func (r *REPL) cmdBackend(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: backend <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available backends: %s\n", r.backendList())
		return
	}

	name := strings.ToLower(args[0])
	if _, ok := r.backends[name]; !ok {
		fmt.Fprintf(r.out, "%sUnknown backend: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available backends: %s\n", r.backendList())
		return
	}

	r.currentKey = name
	fmt.Fprintf(r.out, "Backend changed to: %s%s%s\n", ui.ColorGreen(), r.backends[name].Name(), ui.ColorReset())
}

// cmdCompare evaluates one expression with every backend and flags
// disagreements.
func (r *REPL) cmdCompare(expr string) {
	if strings.TrimSpace(expr) == "" {
		fmt.Fprintf(r.out, "%sUsage: compare <expr>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "\n%sComparison for %q:%s\n", ui.ColorBold(), expr, ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	var first string
	for name, backend := range r.backends {
		ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
		start := time.Now()
		res, err := backend.Evaluate(ctx, expr)
		duration := time.Since(start)
		cancel()

		if err != nil {
			fmt.Fprintf(r.out, "  %s%-10s%s: %sError - %v%s\n",
				ui.ColorYellow(), name, ui.ColorReset(),
				ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		if first == "" {
			first = res.Canonical
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if res.Canonical != first {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}

		fmt.Fprintf(r.out, "  %s%-10s%s: %s%12s%s %s\n",
			ui.ColorYellow(), name, ui.ColorReset(),
			ui.ColorCyan(), FormatExecutionDuration(duration), ui.ColorReset(),
			status)
	}

	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable backends:%s\n", ui.ColorBold(), ui.ColorReset())
	for name, backend := range r.backends {
		marker := "  "
		if name == r.currentKey {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-10s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), backend.Name())
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays the current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Backend:  %s%s%s\n", ui.ColorCyan(), r.currentKey, ui.ColorReset())
	fmt.Fprintf(r.out, "  Base:     %s%d%s\n", ui.ColorCyan(), r.config.Base, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:  %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}
