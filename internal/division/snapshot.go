package division

import "fmt"

// Snapshot is the read-only view of a round handed to renderers.
type Snapshot struct {
	Phase   Phase
	Problem Problem
	Units   []Unit
	Answer  Answer
	Message string // Set only in PhaseFailure
	Round   int    // Round token; changes whenever the unit set is replaced
}

// Headline returns the problem text shown at the top of the screen.
func (s Snapshot) Headline() string {
	p := s.Problem
	switch s.Phase {
	case PhaseShowProblem:
		return fmt.Sprint(p.Dividend)
	case PhaseShowContainers, PhaseAwaitingInput, PhaseChecking, PhaseFailure:
		return fmt.Sprintf("%d : %d", p.Dividend, p.Divisor)
	case PhaseSuccess:
		return fmt.Sprintf("%d : %d = %d", p.Dividend, p.Divisor, p.Quotient)
	}
	return ""
}

// UnitsVisible reports whether units are drawn in this phase.
func (s Snapshot) UnitsVisible() bool {
	return s.Phase >= PhaseShowProblem
}

// ContainersVisible reports whether containers are drawn in this phase.
func (s Snapshot) ContainersVisible() bool {
	return s.Phase >= PhaseShowContainers
}

// PadVisible reports whether the answer pad accepts input.
func (s Snapshot) PadVisible() bool {
	return s.Phase == PhaseAwaitingInput
}

// CanConfirm reports whether the pack button is enabled.
func (s Snapshot) CanConfirm() bool {
	return s.Phase == PhaseAwaitingInput && s.Answer.Valid
}
