package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// panelWidth is the fixed width of rendered panels.
const panelWidth = 72

// RenderSuccessPanel renders a bordered success panel.
func RenderSuccessPanel(title, content string) string {
	return renderPanel(title, content, "✓", theme.Success)
}

// RenderErrorPanel renders a bordered error panel.
func RenderErrorPanel(title, content string) string {
	return renderPanel(title, content, "✗", theme.Error)
}

// RenderWarningPanel renders a bordered warning panel.
func RenderWarningPanel(title, content string) string {
	return renderPanel(title, content, "⚠", theme.Warning)
}

// renderPanel renders a titled panel with a rounded border.
func renderPanel(title, content, icon string, style lipgloss.Style) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border.GetForeground()).
		Padding(0, 1).
		Width(panelWidth)

	header := style.Render(icon + " " + title)
	return box.Render(header + "\n\n" + content)
}

// ShowSuccess displays a success message box.
func ShowSuccess(title, content string) {
	fmt.Println(RenderSuccessPanel(title, content))
}

// ShowError displays an error message box.
func ShowError(title, content string) {
	fmt.Println(RenderErrorPanel(title, content))
}
