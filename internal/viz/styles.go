package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/voltlab/electroanim/internal/palette"
)

// Terminal styles shared by the live viewer, built on the scene palette.
var (
	CanvasStyle = lipgloss.NewStyle().Padding(1, 2)

	StatsStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(42)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Accent1)).
			Bold(true).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Width(10)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.FG))

	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Accent2)).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Warn)).
			Bold(true)

	GraphStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(palette.Accent1)).
			Padding(1, 0)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
