package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("39")  // Sky
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray

	barStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor)

	condensedBarStyle = lipgloss.NewStyle().
				Padding(0, 2).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(primaryColor)

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	entryStyle = lipgloss.NewStyle().
			PaddingRight(2)

	activeEntryStyle = entryStyle.
				Foreground(primaryColor).
				Underline(true)

	cursorEntryStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
