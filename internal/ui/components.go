package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/randlet/internal/watch"
)

func renderGlyph(char string, offset int) string {
	if char == "" {
		char = " "
	}
	glyph := glyphStyle.Render(char)
	indent := (faceWidth-lipgloss.Width(glyph))/2 + offset
	if indent < 0 {
		indent = 0
	}
	return indentBlock(glyph, strings.Repeat(" ", indent))
}

func renderStatus(caption string) string {
	return lipgloss.NewStyle().
		Width(faceWidth).
		Align(lipgloss.Center).
		Render(statusStyle.Render(caption))
}

// renderActionBar draws the three button icons top to bottom, spread over
// height rows.
func renderActionBar(mode watch.Mode, height int) string {
	if height < 5 {
		height = 5
	}
	modeIcon := "123"
	if mode == watch.NumberMode {
		modeIcon = "ABC"
	}
	rows := make([]string, height)
	rows[1] = modeIcon
	rows[height/2] = "●"
	rows[height-2] = "↺"
	return barStyle.Height(height).Render(strings.Join(rows, "\n"))
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
