package watch

import "github.com/olivier-w/randlet/internal/haptic"

// Effect is a side effect requested by a transition. The host performs
// effects in order.
type Effect interface {
	isEffect()
}

// Display replaces the big glyph. An empty Char clears it.
type Display struct {
	Char string
}

// DisplayStatus replaces the caption under the glyph.
type DisplayStatus struct {
	Caption string
}

// Vibrate requests a haptic pattern. It is fire-and-forget.
type Vibrate struct {
	Pattern haptic.Pattern
}

func (Display) isEffect()       {}
func (DisplayStatus) isEffect() {}
func (Vibrate) isEffect()       {}
