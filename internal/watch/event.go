package watch

// Event is an input delivered to the state machine.
type Event int

const (
	PrimaryAction Event = iota
	ToggleMode
	ForceReset
)

func (e Event) String() string {
	switch e {
	case PrimaryAction:
		return "primary"
	case ToggleMode:
		return "toggle"
	case ForceReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Button is one of the three physical buttons beside the action bar.
type Button int

const (
	ButtonUp Button = iota
	ButtonSelect
	ButtonDown
)

// EventFor maps a button to the event it triggers.
func EventFor(b Button) Event {
	switch b {
	case ButtonUp:
		return ToggleMode
	case ButtonDown:
		return ForceReset
	default:
		return PrimaryAction
	}
}
