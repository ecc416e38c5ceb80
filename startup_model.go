package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/randlet/internal/haptic"
	"github.com/olivier-w/randlet/internal/ui"
	"github.com/op/go-logging"
)

type startupHapticsMsg struct {
	sink haptic.Sink
	err  error
}

// startupModel shows a spinner while the audio device opens, then hands
// over to the watch face.
type startupModel struct {
	opts    options
	cues    map[haptic.Pattern][]byte
	log     *logging.Logger
	spinner spinner.Model
	width   int
	height  int
}

func newStartupModel(opts options, cues map[haptic.Pattern][]byte, log *logging.Logger) startupModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	return startupModel{
		opts:    opts,
		cues:    cues,
		log:     log,
		spinner: s,
	}
}

func (m startupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, openHapticsCmd(m.opts, m.cues, m.log))
}

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case startupHapticsMsg:
		sink := msg.sink
		notice := ""
		if msg.err != nil {
			m.log.Warningf("falling back to silent haptics: %v", msg.err)
			sink = haptic.Silent{}
			notice = "haptics unavailable: " + msg.err.Error()
		}
		face := ui.New(m.opts.source(), sink, m.log).WithNotice(notice)

		cmds := []tea.Cmd{face.Init()}
		if m.width > 0 || m.height > 0 {
			w, h := m.width, m.height
			cmds = append(cmds, func() tea.Msg {
				return tea.WindowSizeMsg{Width: w, Height: h}
			})
		}
		return face, tea.Batch(cmds...)

	case tea.KeyMsg:
		if startupIsQuit(msg) {
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}
	return m, nil
}

func (m startupModel) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(startupHeaderStyle.Render("randlet"))
	b.WriteString("\n\n  ")
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(startupStatusStyle.Render("Warming up haptics..."))
	b.WriteString("\n\n  ")
	b.WriteString(startupHelpStyle.Render("q quit"))
	b.WriteString("\n")
	return b.String()
}

func openHapticsCmd(opts options, cues map[haptic.Pattern][]byte, log *logging.Logger) tea.Cmd {
	return func() tea.Msg {
		sink, err := openHaptics(opts, cues, log)
		return startupHapticsMsg{sink: sink, err: err}
	}
}

func startupIsQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

var (
	startupHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})
	startupStatusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})
	startupHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
