package tui

import (
	"time"

	"github.com/vovakirdan/tui-division/internal/core"
	"github.com/vovakirdan/tui-division/internal/division"
)

// Frame is a unit's interpolated appearance at one instant.
type Frame struct {
	Pos     division.Position
	Scale   float64
	Opacity float64
}

func frameOf(p division.Placement) Frame {
	return Frame{Pos: p.Pos, Scale: p.Scale, Opacity: p.Opacity}
}

// unitTween moves one unit between two frames.
type unitTween struct {
	from     Frame
	to       Frame
	start    time.Time // When the move begins, after any delay
	duration time.Duration
}

// at returns the tween's frame at now.
func (t unitTween) at(now time.Time) Frame {
	if t.duration <= 0 || !now.Before(t.start.Add(t.duration)) {
		return t.to
	}
	if now.Before(t.start) {
		return t.from
	}
	progress := core.EaseInOut(float64(now.Sub(t.start)) / float64(t.duration))
	return Frame{
		Pos: division.Position{
			X: core.Lerp(t.from.Pos.X, t.to.Pos.X, progress),
			Y: core.Lerp(t.from.Pos.Y, t.to.Pos.Y, progress),
		},
		Scale:   core.Lerp(t.from.Scale, t.to.Scale, progress),
		Opacity: core.Lerp(t.from.Opacity, t.to.Opacity, progress),
	}
}

func (t unitTween) done(now time.Time) bool {
	return !now.Before(t.start.Add(t.duration))
}

// Animator tweens units from their current frame to new placements.
// All animation state belongs to one round; a new round token drops it
// and units appear at their targets without moving.
type Animator struct {
	round  int
	tweens []unitTween
}

// NewAnimator creates an empty animator.
func NewAnimator() *Animator {
	return &Animator{}
}

// Retarget sends units towards targets over duration. Units whose target
// has not changed keep their running tween.
func (a *Animator) Retarget(now time.Time, round int, targets []division.Placement, duration time.Duration) {
	if round != a.round || len(targets) != len(a.tweens) {
		a.round = round
		a.tweens = make([]unitTween, len(targets))
		for i, p := range targets {
			f := frameOf(p)
			a.tweens[i] = unitTween{from: f, to: f, start: now}
		}
		return
	}

	for i, p := range targets {
		to := frameOf(p)
		if to == a.tweens[i].to {
			continue
		}
		a.tweens[i] = unitTween{
			from:     a.tweens[i].at(now),
			to:       to,
			start:    now.Add(p.Delay),
			duration: duration,
		}
	}
}

// Frames returns every unit's frame at now, by unit ID.
func (a *Animator) Frames(now time.Time) []Frame {
	out := make([]Frame, len(a.tweens))
	for i, t := range a.tweens {
		out[i] = t.at(now)
	}
	return out
}

// Animating reports whether any unit is still moving at now.
func (a *Animator) Animating(now time.Time) bool {
	for _, t := range a.tweens {
		if !t.done(now) {
			return true
		}
	}
	return false
}

// Round returns the round the animation state belongs to.
func (a *Animator) Round() int {
	return a.round
}
