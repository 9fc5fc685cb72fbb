package division

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-division/internal/config"
	"github.com/vovakirdan/tui-division/internal/core"
)

// MaxAnswer is the largest digit on the answer pad.
const MaxAnswer = config.PadMax

// Answer is the player's guess of units per container. The zero value
// means nothing is selected.
type Answer struct {
	Digit int
	Valid bool
}

// AnswerOf returns a selected answer.
func AnswerOf(d int) Answer {
	return Answer{Digit: d, Valid: true}
}

func (a Answer) String() string {
	if !a.Valid {
		return "none"
	}
	return fmt.Sprint(a.Digit)
}

// Timer is a pending phase timeout. It carries the round token and a
// sequence number so the controller can recognise timers it no longer
// expects. The zero Timer means "no timer".
type Timer struct {
	Round int
	Seq   uint64
	Phase Phase
	After time.Duration
}

// IsZero reports whether t is the empty timer.
func (t Timer) IsZero() bool {
	return t.Seq == 0
}

// Controller owns one trainer instance's round state. It is not safe
// for concurrent use: callers serialise events (the Bubble Tea update
// loop or Driver does this).
//
// Every operation that may start a timer returns it; the caller arranges
// for Fire to be called with it after Timer.After. Only the most recently
// returned timer is honoured.
type Controller struct {
	gen     *Generator
	rng     *rand.Rand
	timings Timings
	logger  *log.Logger

	phase   Phase
	problem Problem
	units   []Unit
	answer  Answer
	message string
	round   int
	timer   Timer
	seq     uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a controller. The round does not begin until Start.
func NewController(cfg config.DivisionConfig, rng *rand.Rand, opts ...Option) *Controller {
	c := &Controller{
		gen:     NewGenerator(cfg),
		rng:     rng,
		timings: NewTimings(cfg.Timing),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a new round and returns its first timer. Calling Start
// again abandons the current round.
func (c *Controller) Start() Timer {
	return c.newRound()
}

// SelectAnswer stores a digit while the answer pad is active.
// Returns false if the phase or digit does not allow it.
func (c *Controller) SelectAnswer(d int) bool {
	if d < 0 || d > MaxAnswer {
		return false
	}
	to, ok := Next(c.phase, TriggerSelect)
	if !ok {
		return false
	}
	c.answer = AnswerOf(d)
	c.enter(to, TriggerSelect)
	return true
}

// Confirm packs the units with the selected answer and resolves the
// round. It is a no-op until an answer is selected.
func (c *Controller) Confirm() (Timer, bool) {
	if !c.answer.Valid {
		return Timer{}, false
	}
	to, ok := Next(c.phase, TriggerConfirm)
	if !ok {
		return Timer{}, false
	}
	c.enter(to, TriggerConfirm)
	return c.check(), true
}

// TapBackground skips the result display and starts the next round.
func (c *Controller) TapBackground() (Timer, bool) {
	if _, ok := Next(c.phase, TriggerTap); !ok {
		return Timer{}, false
	}
	return c.newRound(), true
}

// Fire applies an elapsed timer. Timers from an earlier round, or
// superseded within the round, are ignored.
func (c *Controller) Fire(t Timer) (Timer, bool) {
	if t.IsZero() || t != c.timer {
		c.logger.Debug("stale timer ignored",
			"timer_round", t.Round, "timer_phase", t.Phase, "round", c.round, "phase", c.phase)
		return Timer{}, false
	}
	c.timer = Timer{}

	to, ok := Next(c.phase, TriggerTimer)
	if !ok {
		return Timer{}, false
	}
	if to == PhaseGenerating {
		return c.newRound(), true
	}
	c.enter(to, TriggerTimer)
	return c.schedule(), true
}

// Apply dispatches a semantic input. Next/Prev move the selection along
// the answer pad, wrapping at either end.
func (c *Controller) Apply(in core.Input) (Timer, bool) {
	switch in.Action {
	case core.ActionDigit:
		return Timer{}, c.SelectAnswer(in.Digit)
	case core.ActionNext:
		return Timer{}, c.SelectAnswer(c.stepAnswer(1))
	case core.ActionPrev:
		return Timer{}, c.SelectAnswer(c.stepAnswer(-1))
	case core.ActionConfirm:
		return c.Confirm()
	case core.ActionTap:
		return c.TapBackground()
	}
	return Timer{}, false
}

func (c *Controller) stepAnswer(delta int) int {
	if !c.answer.Valid {
		if delta < 0 {
			return MaxAnswer
		}
		return 0
	}
	return (c.answer.Digit + delta + MaxAnswer + 1) % (MaxAnswer + 1)
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Round returns the current round token.
func (c *Controller) Round() int {
	return c.round
}

// Pending returns the outstanding timer, or the zero Timer.
func (c *Controller) Pending() Timer {
	return c.timer
}

// Snapshot returns a copy of the state the renderer may read.
func (c *Controller) Snapshot() Snapshot {
	units := make([]Unit, len(c.units))
	copy(units, c.units)
	return Snapshot{
		Phase:   c.phase,
		Problem: c.problem,
		Units:   units,
		Answer:  c.answer,
		Message: c.message,
		Round:   c.round,
	}
}

// newRound replaces the problem and units wholesale and schedules the
// generating timer. The new token invalidates every earlier timer.
func (c *Controller) newRound() Timer {
	c.round++
	c.problem, c.units = c.gen.Generate(c.rng)
	c.answer = Answer{}
	c.message = ""
	c.phase = PhaseGenerating

	c.logger.Info("new round",
		"round", c.round, "dividend", c.problem.Dividend, "divisor", c.problem.Divisor)
	return c.schedule()
}

// check resolves the CHECKING phase synchronously.
func (c *Controller) check() Timer {
	if c.answer.Digit == c.problem.Quotient {
		to, _ := Next(c.phase, TriggerCorrect)
		c.enter(to, TriggerCorrect)
	} else {
		to, _ := Next(c.phase, TriggerWrong)
		c.message = FailureMessage(c.answer.Digit, c.problem.Divisor)
		c.enter(to, TriggerWrong)
	}
	return c.schedule()
}

// schedule starts the current phase's timer, replacing any other.
// Untimed phases clear the outstanding timer.
func (c *Controller) schedule() Timer {
	if !c.timings.Timed(c.phase) {
		c.timer = Timer{}
		return Timer{}
	}
	c.seq++
	c.timer = Timer{Round: c.round, Seq: c.seq, Phase: c.phase, After: c.timings[c.phase]}
	return c.timer
}

func (c *Controller) enter(to Phase, t Trigger) {
	from := c.phase
	c.phase = to
	if from != to {
		c.logger.Debug("phase", "round", c.round, "from", from, "to", to, "trigger", t)
	}
}

// FailureMessage formats the computation shown after a wrong answer.
func FailureMessage(answer, divisor int) string {
	return fmt.Sprintf("%d × %d = %d", answer, divisor, answer*divisor)
}
