// Package sequencer deals letters A-Z in a random order without repeats.
package sequencer

import "github.com/olivier-w/randlet/internal/random"

// Size is the number of letters in one pass.
const Size = 26

// Sequencer owns a shuffled alphabet and a cursor into it. A Sequencer is a
// plain value: copying it snapshots the pass, though copies share the
// random source.
type Sequencer struct {
	alphabet [Size]byte
	cursor   int
	src      random.Source
}

// New creates a Sequencer with a freshly shuffled alphabet.
func New(src random.Source) *Sequencer {
	s := &Sequencer{src: src}
	for i := range s.alphabet {
		s.alphabet[i] = 'A' + byte(i)
	}
	s.Reshuffle()
	return s
}

// Reshuffle permutes the alphabet in place (Fisher-Yates, front to back)
// and rewinds the cursor.
func (s *Sequencer) Reshuffle() {
	for i := 0; i < Size-1; i++ {
		j := s.src.Between(i, Size-1)
		s.alphabet[i], s.alphabet[j] = s.alphabet[j], s.alphabet[i]
	}
	s.cursor = 0
}

// Next returns the next letter of the current pass.
func (s *Sequencer) Next() byte {
	c, _ := s.NextLetter()
	return c
}

// NextLetter returns the next letter and whether the alphabet had to be
// reshuffled first because the previous pass was exhausted.
func (s *Sequencer) NextLetter() (byte, bool) {
	reshuffled := false
	if s.Exhausted() {
		s.Reshuffle()
		reshuffled = true
	}
	c := s.alphabet[s.cursor]
	s.cursor++
	return c, reshuffled
}

// Exhausted reports whether every letter of the pass has been dealt.
func (s *Sequencer) Exhausted() bool {
	return s.cursor >= Size
}

// Remaining returns how many letters are left in the current pass.
func (s *Sequencer) Remaining() int {
	return Size - s.cursor
}

// Cursor returns how many letters of the current pass have been dealt.
func (s *Sequencer) Cursor() int {
	return s.cursor
}

// Order returns a copy of the current permutation.
func (s *Sequencer) Order() [Size]byte {
	return s.alphabet
}
