// Package random provides the bounded random draws used by the letter
// sequencer and the number mode.
package random

import "math/rand/v2"

// Source draws uniformly distributed integers.
type Source interface {
	// Between returns an integer in [min, max]. It returns min when max < min.
	Between(min, max int) int
}

type globalSource struct{}

// New returns a Source backed by the auto-seeded math/rand/v2 generator.
func New() Source {
	return globalSource{}
}

func (globalSource) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + rand.IntN(max-min+1)
}

// Seeded is a deterministic Source. Two Seeded sources created with the same
// seed produce the same sequence of draws.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded creates a Seeded source from seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}
