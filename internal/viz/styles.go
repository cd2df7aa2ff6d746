package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Cell = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899")).
		Align(lipgloss.Right)

	CellHighlight = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff")).
			Background(lipgloss.Color("#1a001a")).
			Align(lipgloss.Right)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	StatusOK  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusBad = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
)

// KeyValues renders label/value pairs one per line with aligned labels.
func KeyValues(pairs ...[2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		label := p[0] + strings.Repeat(" ", width-len(p[0]))
		lines[i] = MetricLabel.Render(label) + "  " + MetricValue.Render(p[1])
	}
	return strings.Join(lines, "\n")
}

// ProgressBar renders a bar filled to percent (0..1) over width cells.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 1 {
		return StatusOK.Render(bar)
	}
	return Subtle.Render(bar)
}
