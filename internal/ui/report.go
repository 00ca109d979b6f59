package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report collects the outcome lines a command prints in its summary: status
// lines for environment checks and labeled rows for generated artifacts.
// Labeled rows are aligned on one column when rendered.
type Report struct {
	rows []reportRow
}

type reportRow struct {
	marker string
	style  lipgloss.Style
	label  string
	text   string
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

// Ok records a passed check.
func (r *Report) Ok(text string) {
	r.push("✓", theme.Success, "", text)
}

// Fail records a failed check.
func (r *Report) Fail(text string) {
	r.push("✗", theme.Error, "", text)
}

// Warn records a skipped or degraded check.
func (r *Report) Warn(text string) {
	r.push("!", theme.Warning, "", text)
}

// Row records a labeled artifact line, e.g. Row("Model", "models/post.go").
func (r *Report) Row(label, text string) {
	r.push("→", theme.Info, label, text)
}

func (r *Report) push(marker string, style lipgloss.Style, label, text string) {
	r.rows = append(r.rows, reportRow{marker: marker, style: style, label: label, text: text})
}

// String renders the report, two-space indented, with all labeled rows
// sharing one label column.
func (r *Report) String() string {
	width := 0
	for _, row := range r.rows {
		if len(row.label) > width {
			width = len(row.label)
		}
	}

	lines := make([]string, 0, len(r.rows))
	for _, row := range r.rows {
		body := row.text
		if row.label != "" {
			body = fmt.Sprintf("%-*s %s", width+1, row.label+":", row.text)
		}
		lines = append(lines, "  "+row.style.Render(row.marker+" "+body))
	}
	return strings.Join(lines, "\n")
}
