package division

import (
	"time"

	"github.com/vovakirdan/tui-division/internal/config"
)

// Placement is where and how a unit is drawn.
type Placement struct {
	Pos     Position
	Scale   float64
	Opacity float64
	Delay   time.Duration // Wait before moving towards Pos
}

// Layout maps round state to unit placements. It is a pure function of
// its arguments and the configuration it was built with.
type Layout struct {
	cfg    config.LayoutConfig
	timing config.TimingConfig
}

// NewLayout creates a layout from the trainer configuration.
func NewLayout(cfg config.DivisionConfig) Layout {
	return Layout{cfg: cfg.Layout, timing: cfg.Timing}
}

// Place returns the placement of unit u.
//
// On success units shrink into their container one container at a time.
// While an answer above zero is selected, and after a wrong answer, units
// are staged in columns of that many above the containers; units beyond
// the last container stay in the grid. Otherwise units sit in the grid.
func (l Layout) Place(phase Phase, p Problem, u Unit, answer Answer) Placement {
	grid := Placement{Pos: u.Initial, Scale: 1, Opacity: 1}

	if phase == PhaseSuccess {
		box := p.ContainerOf(u.ID)
		inBox := 0
		if p.Quotient > 0 {
			inBox = u.ID % p.Quotient
		}
		delay := config.Duration(box*l.timing.ContainerDelayMS + inBox*l.timing.UnitDelayMS)
		return Placement{Pos: u.Final, Scale: 0.2, Opacity: 0, Delay: delay}
	}

	previewing := phase == PhaseAwaitingInput || phase == PhaseFailure
	if !previewing || !answer.Valid || answer.Digit <= 0 || p.Divisor <= 0 {
		return grid
	}

	perBox := answer.Digit
	box := u.ID / perBox
	if box >= p.Divisor {
		return grid
	}
	row := u.ID % perBox

	bandWidth := 100 / float64(p.Divisor)
	top := l.cfg.PreviewBottom - float64(perBox)*l.cfg.PreviewSpacing
	return Placement{
		Pos: Position{
			X: float64(box)*bandWidth + bandWidth/2,
			Y: top + float64(row)*l.cfg.PreviewSpacing,
		},
		Scale:   1,
		Opacity: 1,
	}
}

// PlaceAll returns placements for every unit in the snapshot, by unit ID.
func (l Layout) PlaceAll(s Snapshot) []Placement {
	out := make([]Placement, len(s.Units))
	for i, u := range s.Units {
		out[i] = l.Place(s.Phase, s.Problem, u, s.Answer)
	}
	return out
}

// Transition returns how long units take to reach a new placement.
// Preview moves are quick; entering the grid and packing are slow.
func (l Layout) Transition(phase Phase, answer Answer) time.Duration {
	if (phase == PhaseAwaitingInput && answer.Valid) || phase == PhaseFailure {
		return config.Duration(l.timing.PreviewMoveMS)
	}
	return config.Duration(l.timing.MoveMS)
}
