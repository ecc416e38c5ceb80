package ui

import "github.com/charmbracelet/lipgloss"

const (
	faceWidth = 22
	barWidth  = 5
)

var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	glyphStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 3).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	barStyle = lipgloss.NewStyle().
			Width(barWidth).
			Align(lipgloss.Center).
			Background(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#111111"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)
