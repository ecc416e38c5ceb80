package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/randlet/internal/haptic"
	"github.com/olivier-w/randlet/internal/random"
	"github.com/olivier-w/randlet/internal/util"
	"github.com/olivier-w/randlet/internal/watch"
	"github.com/op/go-logging"
)

// Model is the Bubbletea model for the watch face. It owns the watch state
// and performs the effects every transition returns.
type Model struct {
	state   watch.State
	haptics haptic.Sink
	log     *logging.Logger
	keys    keyMap
	help    help.Model

	display string
	status  string
	notice  string // shown under the face, e.g. when audio is unavailable
	now     time.Time
	shake   shake

	width    int
	height   int
	quitting bool
}

// New creates a Model with a fresh shuffle and the first letter showing.
func New(src random.Source, sink haptic.Sink, log *logging.Logger) Model {
	state, effects := watch.Start(src)
	m := Model{
		state:   state,
		haptics: sink,
		log:     log,
		keys:    defaultKeyMap(),
		help:    help.New(),
		now:     time.Now(),
		shake:   newShake(),
	}
	m.perform(effects)
	return m
}

// WithNotice returns m with a one-line notice under the face.
func (m Model) WithNotice(notice string) Model {
	m.notice = notice
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("randlet"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(m.keys, msg) {
			m.quitting = true
			m.closeHaptics()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if b, ok := m.keys.button(msg); ok {
			return m, m.press(b)
		}
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()

	case shakeFrameMsg:
		if m.shake.step() {
			return m, shakeFrameCmd()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// press runs b through the state machine and performs the resulting effects.
func (m *Model) press(b watch.Button) tea.Cmd {
	ev := watch.EventFor(b)
	next, effects := watch.Apply(m.state, ev)
	m.state = next
	m.log.Debugf("%s: mode=%s display=%q remaining=%d", ev, next.Mode(), next.Display(), next.Remaining())
	return m.perform(effects)
}

func (m *Model) perform(effects []watch.Effect) tea.Cmd {
	var cmd tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case watch.Display:
			m.display = e.Char
		case watch.DisplayStatus:
			m.status = e.Caption
		case watch.Vibrate:
			m.haptics.Play(e.Pattern)
			if m.shake.kick(e.Pattern) {
				cmd = shakeFrameCmd()
			}
		}
	}
	return cmd
}

func (m Model) closeHaptics() {
	if c, ok := m.haptics.(interface{ Close() }); ok {
		c.Close()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var face strings.Builder
	face.WriteString(clockStyle.Render(util.FormatClock(m.now)))
	face.WriteString("\n\n")
	face.WriteString(renderGlyph(m.display, m.shake.offset()))
	face.WriteString("\n\n")
	face.WriteString(renderStatus(m.status))

	faceBlock := lipgloss.NewStyle().Width(faceWidth).Render(face.String())
	watchFace := lipgloss.JoinHorizontal(lipgloss.Top,
		faceBlock,
		" ",
		renderActionBar(m.state.Mode(), lipgloss.Height(faceBlock)),
	)

	lines := "\n"
	lines += indentBlock(watchFace, "  ") + "\n"
	if m.notice != "" {
		lines += "\n  " + noticeStyle.Render(m.notice) + "\n"
	}
	lines += "\n  " + helpStyle.Render(m.help.View(m.keys)) + "\n"
	return lines
}

func isQuit(k keyMap, msg tea.KeyMsg) bool {
	return key.Matches(msg, k.Quit)
}
