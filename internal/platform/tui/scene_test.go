package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-division/internal/config"
	"github.com/vovakirdan/tui-division/internal/core"
	"github.com/vovakirdan/tui-division/internal/division"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

// drawScene renders a fixed 12 : 4 round with every unit at rest.
func drawScene(t *testing.T, locale string, phase division.Phase, answer division.Answer, message string) *core.Screen {
	t.Helper()
	cfg := config.DefaultDivisionConfig()
	p := division.Problem{Dividend: 12, Divisor: 4, Quotient: 3}
	snap := division.Snapshot{
		Phase:   phase,
		Problem: p,
		Units:   division.NewGenerator(cfg).Units(p),
		Answer:  answer,
		Message: message,
		Round:   1,
	}

	placements := division.NewLayout(cfg).PlaceAll(snap)
	frames := make([]Frame, len(placements))
	for i, pl := range placements {
		frames[i] = frameOf(pl)
	}

	screen := core.NewScreen(80, 23)
	NewRenderer(i18n.New(locale), cfg.Display).Draw(screen, snap, frames)
	return screen
}

func countRune(s *core.Screen, r rune) int {
	return strings.Count(s.String(), string(r))
}

func TestDrawHeadline(t *testing.T) {
	tests := []struct {
		phase division.Phase
		want  string
	}{
		{division.PhaseShowProblem, "12"},
		{division.PhaseShowContainers, "12 : 4"},
		{division.PhaseSuccess, "12 : 4 = 3"},
	}

	for _, tt := range tests {
		s := drawScene(t, "en", tt.phase, division.Answer{}, "")
		if got := strings.TrimSpace(s.Row(headlineRow)); got != tt.want {
			t.Errorf("%s headline = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestDrawUnitsVisibility(t *testing.T) {
	tests := []struct {
		phase  division.Phase
		answer division.Answer
		units  int
	}{
		{division.PhaseGenerating, division.Answer{}, 0},
		{division.PhaseShowProblem, division.Answer{}, 12},
		{division.PhaseAwaitingInput, division.AnswerOf(3), 12},
		// Packed units have faded out.
		{division.PhaseSuccess, division.AnswerOf(3), 0},
	}

	for _, tt := range tests {
		s := drawScene(t, "en", tt.phase, tt.answer, "")
		if got := countRune(s, '●'); got != tt.units {
			t.Errorf("%s: %d units drawn, want %d", tt.phase, got, tt.units)
		}
	}
}

func TestDrawContainers(t *testing.T) {
	hidden := drawScene(t, "en", division.PhaseShowProblem, division.Answer{}, "")
	if countRune(hidden, '▄') != 0 {
		t.Error("containers drawn before show_containers")
	}

	shown := drawScene(t, "en", division.PhaseShowContainers, division.Answer{}, "")
	// Each container has two walls on every row above its floor.
	walls := countRune(shown, '│')
	if walls == 0 || walls%(2*4) != 0 {
		t.Errorf("%d wall cells, want a positive multiple of 8", walls)
	}
	if countRune(shown, '▄') == 0 {
		t.Error("container floors missing")
	}
}

func TestDrawPad(t *testing.T) {
	s := drawScene(t, "en", division.PhaseAwaitingInput, division.AnswerOf(3), "")
	l := layoutScene(80, 23, "Pack")

	pad := s.Row(l.padY)
	for _, label := range []string{"0", "5", "10", "Pack"} {
		if !strings.Contains(pad, label) {
			t.Errorf("pad row %q missing %q", pad, label)
		}
	}

	selected := l.digits[3]
	cell := s.GetCell(selected.X+selected.W-1, selected.Y)
	if cell.Rune != '3' || cell.Color != core.ColorDigitActive {
		t.Errorf("selected digit cell = %+v", cell)
	}
	if c := s.GetCell(l.button.X+2, l.padY).Color; c != core.ColorButton {
		t.Errorf("pack button color = %v, want enabled", c)
	}

	none := drawScene(t, "en", division.PhaseAwaitingInput, division.Answer{}, "")
	if c := none.GetCell(l.button.X+2, l.padY).Color; c != core.ColorDisabled {
		t.Errorf("pack button color without answer = %v, want disabled", c)
	}
}

func TestDrawResultBanners(t *testing.T) {
	success := drawScene(t, "ru", division.PhaseSuccess, division.AnswerOf(3), "")
	if !strings.Contains(success.String(), "Заказ готов!") {
		t.Error("success banner missing")
	}

	failure := drawScene(t, "en", division.PhaseFailure, division.AnswerOf(5), "5 × 4 = 20")
	out := failure.String()
	for _, want := range []string{"Oops!", "5 × 4 = 20", "press space to continue"} {
		if !strings.Contains(out, want) {
			t.Errorf("failure screen missing %q", want)
		}
	}
	if strings.Contains(out, "Pack") {
		t.Error("pad drawn during failure")
	}
}

func TestDrawTooSmall(t *testing.T) {
	screen := core.NewScreen(30, 10)
	r := NewRenderer(i18n.New("en"), config.DefaultDivisionConfig().Display)
	r.Draw(screen, division.Snapshot{Phase: division.PhaseShowProblem}, nil)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("too-small message missing:\n%s", screen.String())
	}
}

func TestLayoutSceneHit(t *testing.T) {
	l := layoutScene(80, 23, "Pack")

	tests := []struct {
		name string
		x, y int
		want core.Input
		ok   bool
	}{
		{"digit 0", l.digits[0].X, l.padY, core.DigitInput(0), true},
		{"digit 10", l.digits[10].X + 1, l.padY, core.DigitInput(10), true},
		{"button", l.button.X + 1, l.button.Y, core.Input{Action: core.ActionConfirm}, true},
		{"background", 0, 0, core.Input{}, false},
	}

	for _, tt := range tests {
		got, ok := l.hit(tt.x, tt.y)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: hit = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFirstRuneFallback(t *testing.T) {
	if got := firstRune("", '●'); got != '●' {
		t.Errorf("empty = %q", got)
	}
	if got := firstRune("★x", '●'); got != '★' {
		t.Errorf("got %q", got)
	}
}
