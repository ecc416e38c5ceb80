// Package haptic describes the vibration patterns of the watch face and the
// sink that plays them. Audio playback lives in package buzz.
package haptic

import "time"

// Pattern identifies a vibration pattern.
type Pattern int

const (
	// ModePulse is the single short pulse played on a mode change.
	ModePulse Pattern = iota
	// ResetPulses is the pulse train played when the alphabet is reshuffled.
	ResetPulses
)

var segments = map[Pattern][]time.Duration{
	ModePulse:   {50 * time.Millisecond},
	ResetPulses: {50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond, 50 * time.Millisecond},
}

// Segments returns the pattern's alternating on/off durations, starting
// with on.
func (p Pattern) Segments() []time.Duration {
	s := segments[p]
	out := make([]time.Duration, len(s))
	copy(out, s)
	return out
}

// Duration returns the total length of the pattern.
func (p Pattern) Duration() time.Duration {
	var d time.Duration
	for _, s := range segments[p] {
		d += s
	}
	return d
}

// Pulses returns the number of "on" segments.
func (p Pattern) Pulses() int {
	return (len(segments[p]) + 1) / 2
}

// String returns the name of the pattern.
func (p Pattern) String() string {
	switch p {
	case ModePulse:
		return "mode"
	case ResetPulses:
		return "reset"
	default:
		return "unknown"
	}
}

// Sink plays vibration patterns. Play must not block on playback.
type Sink interface {
	Play(p Pattern)
}

// Silent is a Sink that discards every pattern.
type Silent struct{}

func (Silent) Play(Pattern) {}
