// Package tui renders startup items for the terminal: the interactive
// picker, the list table, and the confirmation prompt.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Success renders a completed action.
func Success(msg string) string { return okStyle.Render("✓ " + msg) }

// Warning renders a partial outcome that needs attention.
func Warning(msg string) string { return warnStyle.Render("! " + msg) }

// Failure renders a failed action.
func Failure(msg string) string { return errStyle.Render("✗ " + msg) }

// Dim renders secondary text.
func Dim(msg string) string { return dimStyle.Render(msg) }
