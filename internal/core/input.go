package core

import "strconv"

// Action represents a semantic trainer action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionDigit          // 0-9 keys and "x" for ten - pick an answer
	ActionNext           // right/l - move the answer cursor right
	ActionPrev           // left/h - move the answer cursor left
	ActionConfirm        // Enter - pack the units
	ActionTap            // Space - tap the background to skip ahead
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDigit:
		return "Digit"
	case ActionNext:
		return "Next"
	case ActionPrev:
		return "Prev"
	case ActionConfirm:
		return "Confirm"
	case ActionTap:
		return "Tap"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is a single user event. Digit is meaningful only for ActionDigit.
type Input struct {
	Action Action
	Digit  int
}

// DigitInput returns an input selecting the given digit.
func DigitInput(d int) Input {
	return Input{Action: ActionDigit, Digit: d}
}

// String returns a compact description, e.g. "Digit(7)".
func (in Input) String() string {
	if in.Action == ActionDigit {
		return "Digit(" + strconv.Itoa(in.Digit) + ")"
	}
	return in.Action.String()
}
