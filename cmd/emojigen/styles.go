package main

import "github.com/charmbracelet/lipgloss"

var (
	pink    = lipgloss.Color("#ff79c6")
	purple  = lipgloss.Color("#bd93f9")
	cyan    = lipgloss.Color("#8be9fd")
	comment = lipgloss.Color("#6272a4")
	red     = lipgloss.Color("#ff5555")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(pink)

	keywordStyle = lipgloss.NewStyle().
			Foreground(cyan).
			Width(12)

	labelStyle = lipgloss.NewStyle().
			Foreground(purple).
			Width(8)

	dimStyle = lipgloss.NewStyle().
			Foreground(comment)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(red)
)

// field renders one "label value" line of a summary.
func field(label, value string) string {
	return labelStyle.Render(label) + value
}
