// Package ui provides styled terminal output for the Tabula CLI, built on
// lipgloss. Styling is dropped automatically when stdout is not a terminal.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Theme is the single source of truth for all UI styling.
type Theme struct {
	Primary lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Header  lipgloss.Style
	Border  lipgloss.Style
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // Blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // Red
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Yellow
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // Gray
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainTheme returns a theme with no styling, for non-TTY output.
func PlainTheme() *Theme {
	plain := lipgloss.NewStyle()
	return &Theme{
		Primary: plain, Success: plain, Error: plain, Warning: plain,
		Info: plain, Dim: plain, Header: plain, Border: plain,
	}
}

// Global theme instance.
var theme = func() *Theme {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return DefaultTheme()
	}
	return PlainTheme()
}()

// SetTheme replaces the global theme (used by tests for stable output).
func SetTheme(t *Theme) {
	theme = t
}

// Style helper functions for consistent text formatting across the CLI.

// Primary renders text in the primary color.
func Primary(text string) string {
	return theme.Primary.Render(text)
}

// Success renders text in the success color (green).
func Success(text string) string {
	return theme.Success.Render(text)
}

// Error renders text in the error color (red).
func Error(text string) string {
	return theme.Error.Render(text)
}

// Warning renders text in the warning color (yellow).
func Warning(text string) string {
	return theme.Warning.Render(text)
}

// Info renders text in the info color (cyan).
func Info(text string) string {
	return theme.Info.Render(text)
}

// Dim renders text in a dimmed color (gray).
func Dim(text string) string {
	return theme.Dim.Render(text)
}

// Header renders text as a header (bold primary).
func Header(text string) string {
	return theme.Header.Render(text)
}

// Done renders text with a success checkmark.
func Done(text string) string {
	return theme.Success.Render("✓ " + text)
}

// Failed renders text with an error cross.
func Failed(text string) string {
	return theme.Error.Render("✗ " + text)
}

// Note renders a note prefix.
func Note(text string) string {
	return theme.Info.Render(text)
}

// Help renders a help prefix.
func Help(text string) string {
	return theme.Dim.Render(text)
}

// FilePath renders a file path.
func FilePath(path string) string {
	return theme.Primary.Render(path)
}
