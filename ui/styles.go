package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")
	colorPanel  = lipgloss.Color("#44475A")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan).
				Padding(0, 1)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	upStyle       = lipgloss.NewStyle().Foreground(colorGreen)
	downStyle     = lipgloss.NewStyle().Foreground(colorGray)
	errStyle      = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(colorYellow)
	valueStyle    = lipgloss.NewStyle().Foreground(colorWhite)
	selectedStyle = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorGray)
)
