package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for terminal status output. The report
// itself is never styled; styles only apply to the stderr status line and
// error messages.
var Styles = struct {
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style
}{
	Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:   lipgloss.NewStyle().Bold(true),
	Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),  // Green
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // Orange
	Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
}

// StatusText returns styled status text for the end of a run
func StatusText(hasErrors, hasWarnings bool) string {
	if hasErrors {
		return Styles.Danger.Render("ERRORS DETECTED")
	}
	if hasWarnings {
		return Styles.Warning.Render("WARNINGS DETECTED")
	}
	return Styles.Success.Render("OK")
}
