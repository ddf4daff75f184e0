// Package ui provides the interactive terminal dashboard: an ingredient
// input with chips, the live-ranked recipe list, and a recipe detail view.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6c7a89")
	colorBorder  = lipgloss.Color("#3a4a5a")
	colorWarning = lipgloss.Color("#FFC107")
	colorMissing = lipgloss.Color("#e57373")
)

// Styles holds the pre-built lipgloss styles for the dashboard.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	InputBox lipgloss.Style
	Chip     lipgloss.Style
	Selected lipgloss.Style
	Row      lipgloss.Style
	Score    lipgloss.Style
	Matched  lipgloss.Style
	Missing  lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
		Header: lipgloss.NewStyle().Bold(true),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Chip: lipgloss.NewStyle().Foreground(colorAccent),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Row:      lipgloss.NewStyle(),
		Score:    lipgloss.NewStyle().Foreground(colorWarning),
		Matched:  lipgloss.NewStyle().Foreground(colorAccent),
		Missing:  lipgloss.NewStyle().Foreground(colorMissing),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Help:     lipgloss.NewStyle().Foreground(colorMuted).Padding(1, 1, 0, 1),
	}
}
