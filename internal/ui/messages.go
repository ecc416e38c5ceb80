package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time
type shakeFrameMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func shakeFrameCmd() tea.Cmd {
	return tea.Tick(time.Second/shakeFPS, func(time.Time) tea.Msg {
		return shakeFrameMsg{}
	})
}
