package tui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	danger    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F5F"}
	gold      = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD75F"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(highlight)

	labelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(subtle)

	focusedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(0, 1).
			Margin(0, 1, 1, 0)

	reversedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("13"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(danger).
			Foreground(danger).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(gold)

	helpStyle = lipgloss.NewStyle().
			Foreground(subtle).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().Foreground(highlight)
)
