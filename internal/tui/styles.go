package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/exactcalc/internal/ui"
)

// Style variables for the TUI calculator.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle  lipgloss.Style
	headerStyle lipgloss.Style
	titleStyle  lipgloss.Style
	statStyle   lipgloss.Style
	promptStyle lipgloss.Style
	exprStyle   lipgloss.Style
	resultStyle lipgloss.Style
	errorStyle  lipgloss.Style
	dimStyle    lipgloss.Style
	footerStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has run.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	statStyle = lipgloss.NewStyle().Foreground(t.Info)

	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)

	exprStyle = lipgloss.NewStyle().Foreground(t.Text)

	resultStyle = lipgloss.NewStyle().Foreground(t.Success)

	errorStyle = lipgloss.NewStyle().Foreground(t.Error)

	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)

	footerStyle = lipgloss.NewStyle().Foreground(t.Dim).Padding(0, 1)
}
