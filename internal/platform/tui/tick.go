// Package tui provides the Bubble Tea front end for the division trainer.
// It runs the terminal UI loop, maps keys to trainer inputs and turns
// controller timers into tea messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-division/internal/division"
)

// TickMsg is sent to trigger a redraw frame.
type TickMsg time.Time

// PhaseTimerMsg carries a controller timer back into the update loop once
// it has elapsed. tea.Tick cannot be cancelled, so the controller decides
// whether the timer is still current.
type PhaseTimerMsg struct {
	Timer division.Timer
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// timerCmd schedules delivery of t. The zero Timer schedules nothing.
func timerCmd(t division.Timer) tea.Cmd {
	if t.IsZero() {
		return nil
	}
	return tea.Tick(t.After, func(time.Time) tea.Msg {
		return PhaseTimerMsg{Timer: t}
	})
}
