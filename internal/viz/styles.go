package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/loxodrome/internal/scene"
)

type styles struct {
	canvas lipgloss.Style
	panel  lipgloss.Style
	title  lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	status lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(0, 1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2).
			Width(40),
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Title).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		status: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		graph:  lipgloss.NewStyle().Foreground(t.Graph),
		help:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
	}
}

// RibbonStyles returns one foreground style per ribbon color.
func RibbonStyles(s *scene.Scene) []lipgloss.Style {
	out := make([]lipgloss.Style, len(s.Ribbons))
	for i, rb := range s.Ribbons {
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(rb.Color.Hex()))
	}
	return out
}

// ProgressBar renders percent in [0,1] as a fixed-width bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
