package division

import (
	"math/rand"

	"github.com/vovakirdan/tui-division/internal/core"
)

// CorrectPlayer answers every problem correctly.
func CorrectPlayer() Script {
	return func(s Snapshot) []core.Input {
		if s.Phase != PhaseAwaitingInput {
			return nil
		}
		return []core.Input{core.DigitInput(s.Problem.Quotient), {Action: core.ActionConfirm}}
	}
}

// RandomPlayer answers correctly with probability accuracy and otherwise
// picks a wrong digit. With skip set it taps through result screens.
func RandomPlayer(rng *rand.Rand, accuracy float64, skip bool) Script {
	return func(s Snapshot) []core.Input {
		switch {
		case s.Phase == PhaseAwaitingInput:
			digit := s.Problem.Quotient
			if rng.Float64() >= accuracy {
				digit = wrongDigit(rng, s.Problem.Quotient)
			}
			return []core.Input{core.DigitInput(digit), {Action: core.ActionConfirm}}
		case skip && s.Phase.Resolved():
			return []core.Input{{Action: core.ActionTap}}
		}
		return nil
	}
}

// wrongDigit returns a pad digit other than quotient.
func wrongDigit(rng *rand.Rand, quotient int) int {
	d := rng.Intn(MaxAnswer)
	if d >= quotient {
		d++
	}
	return d
}
