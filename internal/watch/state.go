// Package watch is the randlet state machine: a letter sequencer, a
// letter/number mode and the last displayed value, driven by button events.
// It has no dependency on any UI.
package watch

import (
	"fmt"

	"github.com/olivier-w/randlet/internal/haptic"
	"github.com/olivier-w/randlet/internal/random"
	"github.com/olivier-w/randlet/internal/sequencer"
)

const (
	minNumber = 1
	maxNumber = 6

	numberCaption = "Random Number\n(1..6)"
)

// State is the whole application state. It is a value; Apply never mutates
// the State it is given. Build one with Start: the zero State has no
// shuffle and no random source, and Apply leaves it untouched.
type State struct {
	mode    Mode
	seq     sequencer.Sequencer
	src     random.Source
	display string
	status  string
}

// Start builds the initial state: a fresh shuffle in letter mode with the
// first letter already dealt. The returned effects render it.
func Start(src random.Source) (State, []Effect) {
	s := State{
		mode: LetterMode,
		seq:  *sequencer.New(src),
		src:  src,
	}
	c, _ := s.seq.NextLetter()
	s.display = string(c)
	s.status = s.caption()
	return s, []Effect{Display{Char: s.display}, DisplayStatus{Caption: s.status}}
}

// Apply runs one event through the state machine and returns the new state
// with the effects the host must perform.
func Apply(s State, ev Event) (State, []Effect) {
	if s.src == nil {
		return s, nil
	}
	switch ev {
	case ToggleMode:
		s.mode = s.mode.Toggle()
		s.status = s.caption()
		return s, []Effect{
			Vibrate{Pattern: haptic.ModePulse},
			DisplayStatus{Caption: s.status},
		}

	case ForceReset:
		s.seq.Reshuffle()
		s.display = ""
		s.status = s.caption()
		return s, []Effect{
			Vibrate{Pattern: haptic.ResetPulses},
			Display{Char: s.display},
			DisplayStatus{Caption: s.status},
		}

	case PrimaryAction:
		if s.mode == NumberMode {
			s.display = fmt.Sprintf("%d", s.src.Between(minNumber, maxNumber))
			return s, []Effect{Display{Char: s.display}}
		}
		var effects []Effect
		c, reshuffled := s.seq.NextLetter()
		if reshuffled {
			effects = append(effects, Vibrate{Pattern: haptic.ResetPulses})
		}
		s.display = string(c)
		s.status = s.caption()
		return s, append(effects, Display{Char: s.display}, DisplayStatus{Caption: s.status})
	}
	return s, nil
}

// Dispatch applies the event bound to button b.
func Dispatch(s State, b Button) (State, []Effect) {
	return Apply(s, EventFor(b))
}

func (s State) caption() string {
	if s.mode == NumberMode {
		return numberCaption
	}
	return fmt.Sprintf("Random Letter\n(%d left)", s.seq.Remaining())
}

// Mode returns the current mode.
func (s State) Mode() Mode { return s.mode }

// Display returns the displayed glyph, empty right after a reshuffle.
func (s State) Display() string { return s.display }

// Status returns the caption under the glyph.
func (s State) Status() string { return s.status }

// Remaining returns how many letters are left in the current pass.
func (s State) Remaining() int { return s.seq.Remaining() }

// Order returns the current letter permutation.
func (s State) Order() [sequencer.Size]byte { return s.seq.Order() }
