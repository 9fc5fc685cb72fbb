package division

import "testing"

func TestHeadline(t *testing.T) {
	p := Problem{Dividend: 12, Divisor: 4, Quotient: 3}

	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseGenerating, ""},
		{PhaseShowProblem, "12"},
		{PhaseShowContainers, "12 : 4"},
		{PhaseAwaitingInput, "12 : 4"},
		{PhaseFailure, "12 : 4"},
		{PhaseSuccess, "12 : 4 = 3"},
	}

	for _, tt := range tests {
		s := Snapshot{Phase: tt.phase, Problem: p}
		if got := s.Headline(); got != tt.want {
			t.Errorf("%s headline = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestVisibility(t *testing.T) {
	tests := []struct {
		phase      Phase
		answer     Answer
		units      bool
		containers bool
		pad        bool
		confirm    bool
	}{
		{PhaseGenerating, Answer{}, false, false, false, false},
		{PhaseShowProblem, Answer{}, true, false, false, false},
		{PhaseShowContainers, Answer{}, true, true, false, false},
		{PhaseAwaitingInput, Answer{}, true, true, true, false},
		{PhaseAwaitingInput, AnswerOf(0), true, true, true, true},
		{PhaseSuccess, AnswerOf(3), true, true, false, false},
		{PhaseFailure, AnswerOf(5), true, true, false, false},
	}

	for _, tt := range tests {
		s := Snapshot{Phase: tt.phase, Answer: tt.answer}
		if s.UnitsVisible() != tt.units {
			t.Errorf("%s UnitsVisible = %v", tt.phase, s.UnitsVisible())
		}
		if s.ContainersVisible() != tt.containers {
			t.Errorf("%s ContainersVisible = %v", tt.phase, s.ContainersVisible())
		}
		if s.PadVisible() != tt.pad {
			t.Errorf("%s PadVisible = %v", tt.phase, s.PadVisible())
		}
		if s.CanConfirm() != tt.confirm {
			t.Errorf("%s/%s CanConfirm = %v", tt.phase, tt.answer, s.CanConfirm())
		}
	}
}

func TestPhaseStrings(t *testing.T) {
	if PhaseAwaitingInput.String() != "awaiting_input" {
		t.Errorf("PhaseAwaitingInput = %q", PhaseAwaitingInput.String())
	}
	if Phase(99).String() != "unknown" {
		t.Errorf("Phase(99) = %q", Phase(99).String())
	}
	if !PhaseFailure.Resolved() || PhaseChecking.Resolved() {
		t.Error("Resolved mismatch")
	}
}
