package client

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// summaryStyles are bound to the output writer, so plain buffers and pipes
// get unstyled text.
type summaryStyles struct {
	title lipgloss.Style
	label lipgloss.Style
	score lipgloss.Style
	body  lipgloss.Style
}

func newSummaryStyles(w io.Writer) summaryStyles {
	r := lipgloss.NewRenderer(w)

	return summaryStyles{
		title: r.NewStyle().Bold(true).Underline(true),
		label: r.NewStyle().Bold(true),
		score: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		body:  r.NewStyle().Faint(true),
	}
}
