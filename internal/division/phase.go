package division

import (
	"time"

	"github.com/vovakirdan/tui-division/internal/config"
)

// Phase is the round state machine's current state.
type Phase int

const (
	PhaseGenerating     Phase = iota // new problem drawn, nothing shown yet
	PhaseShowProblem                 // units appear with the dividend
	PhaseShowContainers              // containers appear
	PhaseAwaitingInput               // answer pad active
	PhaseChecking                    // answer being compared, never observed between events
	PhaseSuccess                     // units packed into containers
	PhaseFailure                     // staged preview with the wrong computation
)

var phaseNames = map[Phase]string{
	PhaseGenerating:     "generating",
	PhaseShowProblem:    "show_problem",
	PhaseShowContainers: "show_containers",
	PhaseAwaitingInput:  "awaiting_input",
	PhaseChecking:       "checking",
	PhaseSuccess:        "success",
	PhaseFailure:        "failure",
}

func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// Resolved reports whether the round has an outcome.
func (p Phase) Resolved() bool {
	return p == PhaseSuccess || p == PhaseFailure
}

// Trigger is an event that may move the state machine.
type Trigger int

const (
	TriggerTimer   Trigger = iota // the phase's timer elapsed
	TriggerSelect                 // a digit was picked
	TriggerConfirm                // the pack button was pressed
	TriggerCorrect                // check found the answer equal to the quotient
	TriggerWrong                  // check found a different answer
	TriggerTap                    // background tapped
)

var triggerNames = map[Trigger]string{
	TriggerTimer:   "timer",
	TriggerSelect:  "select",
	TriggerConfirm: "confirm",
	TriggerCorrect: "correct",
	TriggerWrong:   "wrong",
	TriggerTap:     "tap",
}

func (t Trigger) String() string {
	if s, ok := triggerNames[t]; ok {
		return s
	}
	return "unknown"
}

// transitions is the round state machine. A missing entry means the
// trigger is ignored in that phase.
var transitions = map[Phase]map[Trigger]Phase{
	PhaseGenerating:     {TriggerTimer: PhaseShowProblem},
	PhaseShowProblem:    {TriggerTimer: PhaseShowContainers},
	PhaseShowContainers: {TriggerTimer: PhaseAwaitingInput},
	PhaseAwaitingInput: {
		TriggerSelect:  PhaseAwaitingInput,
		TriggerConfirm: PhaseChecking,
	},
	PhaseChecking: {
		TriggerCorrect: PhaseSuccess,
		TriggerWrong:   PhaseFailure,
	},
	PhaseSuccess: {
		TriggerTimer: PhaseGenerating,
		TriggerTap:   PhaseGenerating,
	},
	PhaseFailure: {
		TriggerTimer: PhaseGenerating,
		TriggerTap:   PhaseGenerating,
	},
}

// Next returns the phase reached from p on trigger t.
func Next(p Phase, t Trigger) (Phase, bool) {
	to, ok := transitions[p][t]
	return to, ok
}

// Timings holds how long each timed phase lasts.
type Timings map[Phase]time.Duration

// NewTimings reads phase durations from the configuration.
func NewTimings(cfg config.TimingConfig) Timings {
	return Timings{
		PhaseGenerating:     config.Duration(cfg.GeneratingMS),
		PhaseShowProblem:    config.Duration(cfg.ShowProblemMS),
		PhaseShowContainers: config.Duration(cfg.ShowContainersMS),
		PhaseSuccess:        config.Duration(cfg.ResultMS),
		PhaseFailure:        config.Duration(cfg.ResultMS),
	}
}

// Timed reports whether phase p owns a timer.
func (t Timings) Timed(p Phase) bool {
	_, ok := t[p]
	return ok
}
