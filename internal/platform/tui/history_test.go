package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-division/internal/division"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

func TestHistoryRecord(t *testing.T) {
	h := NewHistory(i18n.New("en"), 80, 24)
	p := division.Problem{Dividend: 12, Divisor: 4, Quotient: 3}

	if h.Record(division.Snapshot{Phase: division.PhaseAwaitingInput, Problem: p, Round: 1}) {
		t.Error("unresolved round recorded")
	}
	if !h.Record(division.Snapshot{Phase: division.PhaseSuccess, Problem: p, Answer: division.AnswerOf(3), Round: 1}) {
		t.Error("resolved round not recorded")
	}
	if h.Record(division.Snapshot{Phase: division.PhaseSuccess, Problem: p, Answer: division.AnswerOf(3), Round: 1}) {
		t.Error("round recorded twice")
	}
	h.Record(division.Snapshot{Phase: division.PhaseFailure, Problem: p, Answer: division.AnswerOf(5), Round: 2})

	results := h.Results()
	if len(results) != 2 {
		t.Fatalf("%d results, want 2", len(results))
	}
	if !results[0].Correct || results[1].Correct {
		t.Errorf("results = %+v", results)
	}
	if correct, total := h.Score(); correct != 1 || total != 2 {
		t.Errorf("Score() = %d/%d, want 1/2", correct, total)
	}
}

func TestHistoryView(t *testing.T) {
	h := NewHistory(i18n.New("ru"), 80, 24)
	if !strings.Contains(h.View(), "Пока нет ответов") {
		t.Error("empty history message missing")
	}

	h.Record(division.Snapshot{
		Phase:   division.PhaseFailure,
		Problem: division.Problem{Dividend: 18, Divisor: 6, Quotient: 3},
		Answer:  division.AnswerOf(4),
		Round:   1,
	})
	out := h.View()
	for _, want := range []string{"Раунды за сессию", "18 : 6", "неверно", "0 / 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("history view missing %q:\n%s", want, out)
		}
	}
}
