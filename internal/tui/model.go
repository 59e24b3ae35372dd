// Package tui implements the full-screen interactive calculator: an
// expression input, a scrolling history of results, and a header sampling
// process and system memory.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/exactcalc/internal/cli"
	"github.com/agbru/exactcalc/internal/config"
	apperrors "github.com/agbru/exactcalc/internal/errors"
	"github.com/agbru/exactcalc/internal/eval"
	"github.com/agbru/exactcalc/internal/metrics"
	"github.com/agbru/exactcalc/internal/sysmon"
)

// historyLimit bounds the kept history entries.
const historyLimit = 200

// sampleInterval is the header refresh cadence.
const sampleInterval = time.Second

// KeyMap defines the TUI key bindings.
type KeyMap struct {
	Evaluate key.Binding
	Clear    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Evaluate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear history")),
		Help:     key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.Clear, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Evaluate, k.Clear}, {k.Help, k.Quit}}
}

// historyEntry is one evaluated expression with its outcome.
type historyEntry struct {
	expr     string
	value    string
	err      error
	duration time.Duration
}

// resultMsg delivers an asynchronous evaluation outcome.
type resultMsg struct {
	entry historyEntry
}

// tickMsg drives the header sampling.
type tickMsg time.Time

// Model is the root bubbletea model for the calculator.
type Model struct {
	cfg     config.AppConfig
	backend eval.Evaluator
	version string

	input   textinput.Model
	keys    KeyMap
	help    help.Model
	history []historyEntry

	memory *metrics.MemoryCollector
	proc   metrics.MemorySnapshot
	sys    sysmon.Stats

	width    int
	height   int
	busy     bool
	started  time.Time
	exitCode int
}

// NewModel creates the TUI model over the given backend.
func NewModel(backend eval.Evaluator, cfg config.AppConfig, version string) Model {
	input := textinput.New()
	input.Placeholder = "1/3 + 1/6"
	input.Prompt = promptStyle.Render("exact> ")
	input.Focus()

	collector := metrics.NewMemoryCollector()
	return Model{
		cfg:     cfg,
		backend: backend,
		version: version,
		input:   input,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		memory:  collector,
		proc:    collector.Snapshot(),
		sys:     sysmon.Sample(),
		started: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(16, m.width-12)
		return m, nil

	case tickMsg:
		m.proc = m.memory.Snapshot()
		m.sys = sysmon.Sample()
		return m, tick()

	case resultMsg:
		m.busy = false
		m.history = append(m.history, msg.entry)
		if len(m.history) > historyLimit {
			m.history = m.history[len(m.history)-historyLimit:]
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.history = nil
			return m, nil
		case key.Matches(msg, m.keys.Evaluate):
			expr := strings.TrimSpace(m.input.Value())
			if expr == "" || m.busy {
				return m, nil
			}
			m.input.Reset()
			m.busy = true
			return m, m.evaluate(expr)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs one expression on the backend in a command goroutine.
func (m Model) evaluate(expr string) tea.Cmd {
	backend := m.backend
	timeout := m.cfg.Timeout
	cfg := m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		res, err := backend.Evaluate(ctx, expr)
		entry := historyEntry{expr: expr, err: err, duration: time.Since(start)}
		if err == nil {
			entry.value = res.Canonical
			if res.Value != nil {
				entry.value = cli.FormatRational(res.Value, cfg)
			}
		}
		return resultMsg{entry: entry}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewHistory())
	b.WriteString("\n")
	b.WriteString(panelStyle.Width(max(20, m.width-2)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// viewHeader renders the title bar with uptime and memory readings.
func (m Model) viewHeader() string {
	title := titleStyle.Render("exactcalc")
	if m.version != "" && m.version != "dev" {
		title += dimStyle.Render(" " + m.version)
	}

	stats := statStyle.Render(fmt.Sprintf(
		"up %s | heap %s | sys mem %.0f%%",
		cli.FormatExecutionDuration(time.Since(m.started).Truncate(time.Second)),
		formatBytes(m.proc.HeapAlloc),
		m.sys.MemPercent,
	))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(stats) - 2
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(title + strings.Repeat(" ", gap) + stats)
}

// viewHistory renders the scrollback of evaluations, newest at the bottom.
func (m Model) viewHistory() string {
	rows := max(3, m.height-8)
	start := 0
	if len(m.history) > rows {
		start = len(m.history) - rows
	}

	var b strings.Builder
	if len(m.history) == 0 {
		b.WriteString(dimStyle.Render("  no evaluations yet"))
	}
	for _, e := range m.history[start:] {
		b.WriteString(exprStyle.Render("  "+e.expr) + "\n")
		if e.err != nil {
			b.WriteString(errorStyle.Render("  ! "+e.err.Error()) + "\n")
			continue
		}
		b.WriteString(resultStyle.Render("  = "+cli.TruncateValue(e.value)) +
			dimStyle.Render("  ("+cli.FormatExecutionDuration(e.duration)+")") + "\n")
	}
	return b.String()
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Run starts the TUI over the selected backend and blocks until it exits.
func Run(ctx context.Context, backend eval.Evaluator, cfg config.AppConfig, version string) int {
	initTUIStyles()

	model := NewModel(backend, cfg, version)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		// Context cancellation surfaces as a killed program.
		if errors.Is(err, tea.ErrProgramKilled) || apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
