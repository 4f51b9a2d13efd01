package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used to render tasks.
type Styles struct {
	renderer *lipgloss.Renderer

	ID      lipgloss.Style
	Done    lipgloss.Style
	Pending lipgloss.Style
	Deleted lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds styles for output written to w. When color is false
// every style renders plain text.
func NewStyles(w io.Writer, color bool) Styles {
	renderer := lipgloss.NewRenderer(w)
	if color {
		renderer.SetColorProfile(termenv.ANSI256)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		renderer: renderer,
		ID:       renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Done:     renderer.NewStyle().Foreground(lipgloss.Color("2")),
		Pending:  renderer.NewStyle().Foreground(lipgloss.Color("252")),
		Deleted:  renderer.NewStyle().Foreground(lipgloss.Color("1")).Strikethrough(true),
		Label:    renderer.NewStyle().Bold(true),
		Muted:    renderer.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
