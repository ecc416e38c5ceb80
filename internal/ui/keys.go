package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/randlet/internal/watch"
)

// keyMap binds terminal keys to the three watch buttons. Quit stands in for
// the watch's back button.
type keyMap struct {
	Mode  key.Binding
	Next  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Mode: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "mode"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", " ", "l"),
			key.WithHelp("space", "next"),
		),
		Reset: key.NewBinding(
			key.WithKeys("down", "j", "r"),
			key.WithHelp("↓/j", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Mode, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// button returns the watch button msg presses, if any.
func (k keyMap) button(msg tea.KeyMsg) (watch.Button, bool) {
	switch {
	case key.Matches(msg, k.Mode):
		return watch.ButtonUp, true
	case key.Matches(msg, k.Next):
		return watch.ButtonSelect, true
	case key.Matches(msg, k.Reset):
		return watch.ButtonDown, true
	}
	return 0, false
}
