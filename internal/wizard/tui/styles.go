package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title lipgloss.Style
	Muted lipgloss.Style
	Error lipgloss.Style
	Email lipgloss.Style
	Help  lipgloss.Style
	Frame lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0067B8")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#B00020")),
		Email: lipgloss.NewStyle().Bold(true),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1),
		Frame: lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#CCCCCC")),
	}
}
