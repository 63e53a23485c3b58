package tui

import "github.com/charmbracelet/lipgloss"

// Memory thresholds (MB) for row colouring
const (
	memoryHighMB = 500.0
	memoryWarnMB = 100.0
)

// UI styles for the TUI interface
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#9ECE6A"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1a1a1a")).
			Background(lipgloss.Color("#7DCFFF"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c0c0"))

	memoryHighStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	memoryWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E0AF68"))

	pidStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ECE6A"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BB9AF7"))

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#626262"))

	detailValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E0AF68"))

	cmdDetailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565656")).
			Italic(true)

	confirmStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9ECE6A")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginTop(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true).
			MarginTop(1)

	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DCFFF"))

	searchFilterStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#9ECE6A"))

	helpBarStyle = lipgloss.NewStyle().
			MarginTop(1)
)

// memoryStyle picks the colour for a memory cell
func memoryStyle(mb float64) lipgloss.Style {
	switch {
	case mb > memoryHighMB:
		return memoryHighStyle
	case mb > memoryWarnMB:
		return memoryWarnStyle
	default:
		return normalStyle
	}
}
