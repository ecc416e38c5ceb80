package watch

// Mode selects what the primary button produces.
type Mode int

const (
	LetterMode Mode = iota
	NumberMode
)

// Toggle switches between letter and number mode.
func (m Mode) Toggle() Mode {
	if m == NumberMode {
		return LetterMode
	}
	return NumberMode
}

// String returns the name of the mode.
func (m Mode) String() string {
	if m == NumberMode {
		return "number"
	}
	return "letter"
}
