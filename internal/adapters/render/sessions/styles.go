package sessions

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	character lipgloss.Style
	detail    lipgloss.Style
	path      lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	warning   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		character: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		path:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
