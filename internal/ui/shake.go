package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/randlet/internal/haptic"
)

const (
	shakeFPS      = 60
	shakeKick     = 40.0 // columns per second per pulse
	maxShake      = 3
	shakeSettleAt = 0.05
)

// shake moves the glyph sideways while a vibration plays.
type shake struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	active bool
}

func newShake() shake {
	return shake{spring: harmonica.NewSpring(harmonica.FPS(shakeFPS), 18.0, 0.3)}
}

// kick adds an impulse for p. It reports whether a frame loop must be
// started.
func (s *shake) kick(p haptic.Pattern) bool {
	dir := 1.0
	if s.vel > 0 {
		dir = -1
	}
	s.vel += dir * shakeKick * float64(p.Pulses())
	if s.active {
		return false
	}
	s.active = true
	return true
}

// step advances one frame and reports whether the glyph is still moving.
func (s *shake) step() bool {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 0)
	if math.Abs(s.pos) < shakeSettleAt && math.Abs(s.vel) < shakeSettleAt {
		s.pos, s.vel = 0, 0
		s.active = false
	}
	return s.active
}

func (s shake) offset() int {
	o := int(math.Round(s.pos))
	if o > maxShake {
		return maxShake
	}
	if o < -maxShake {
		return -maxShake
	}
	return o
}
