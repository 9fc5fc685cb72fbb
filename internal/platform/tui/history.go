package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-division/internal/division"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

// RoundResult is one answered round.
type RoundResult struct {
	Round   int
	Problem division.Problem
	Answer  division.Answer
	Correct bool
}

// History lists the rounds answered in this session. It lives only as
// long as the session.
type History struct {
	strings i18n.Strings
	results []RoundResult
	table   table.Model
	width   int
	height  int
}

// NewHistory creates an empty history view.
func NewHistory(s i18n.Strings, width, height int) History {
	h := History{strings: s, width: width, height: height}
	h.table = h.createTable()
	return h
}

// Record adds the snapshot's round if it is resolved and not yet recorded.
// It returns true when a row was added.
func (h *History) Record(snap division.Snapshot) bool {
	if !snap.Phase.Resolved() {
		return false
	}
	if n := len(h.results); n > 0 && h.results[n-1].Round == snap.Round {
		return false
	}
	h.results = append(h.results, RoundResult{
		Round:   snap.Round,
		Problem: snap.Problem,
		Answer:  snap.Answer,
		Correct: snap.Phase == division.PhaseSuccess,
	})
	h.updateRows()
	return true
}

// Results returns the recorded rounds, oldest first.
func (h History) Results() []RoundResult {
	return h.results
}

// Score returns how many recorded rounds were answered correctly.
func (h History) Score() (correct, total int) {
	for _, r := range h.results {
		if r.Correct {
			correct++
		}
	}
	return correct, len(h.results)
}

// Resize rebuilds the table for a new terminal size.
func (h *History) Resize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateRows()
}

// Update passes scrolling keys to the table.
func (h History) Update(msg tea.Msg) (History, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

func (h History) createTable() table.Model {
	columns := []table.Column{
		{Title: h.strings.T(i18n.KeyColRound), Width: 5},
		{Title: h.strings.T(i18n.KeyColProblem), Width: 14},
		{Title: h.strings.T(i18n.KeyColAnswer), Width: 8},
		{Title: h.strings.T(i18n.KeyColResult), Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(h.height-6, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (h *History) updateRows() {
	rows := make([]table.Row, len(h.results))
	// Newest first.
	for i, r := range h.results {
		result := h.strings.T(i18n.KeyResultWrong)
		if r.Correct {
			result = h.strings.T(i18n.KeyResultRight)
		}
		rows[len(h.results)-1-i] = table.Row{
			strconv.Itoa(r.Round),
			fmt.Sprintf("%d : %d", r.Problem.Dividend, r.Problem.Divisor),
			r.Answer.String(),
			result,
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// View renders the history table with a title and score line.
func (h History) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(h.strings.T(i18n.KeyHistoryTitle), h.width)))
	b.WriteString("\n\n")

	if len(h.results) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		b.WriteString(empty.Render(centerText(h.strings.T(i18n.KeyHistoryEmpty), h.width)))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(h.table.View())
	b.WriteString("\n")

	correct, total := h.Score()
	b.WriteString(centerText(fmt.Sprintf("%d / %d", correct, total), h.width))
	b.WriteString("\n")
	return b.String()
}
