package tui

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/tui-division/internal/division"
)

func placement(x, y float64) division.Placement {
	return division.Placement{Pos: division.Position{X: x, Y: y}, Scale: 1, Opacity: 1}
}

func TestAnimatorNewRoundSnaps(t *testing.T) {
	a := NewAnimator()
	now := time.Unix(100, 0)

	a.Retarget(now, 1, []division.Placement{placement(10, 20)}, time.Second)

	if a.Animating(now) {
		t.Error("first placement should not animate")
	}
	if f := a.Frames(now)[0]; f.Pos != (division.Position{X: 10, Y: 20}) {
		t.Errorf("frame = %+v, want target", f)
	}
}

func TestAnimatorTweens(t *testing.T) {
	a := NewAnimator()
	start := time.Unix(100, 0)
	a.Retarget(start, 1, []division.Placement{placement(0, 0)}, time.Second)
	a.Retarget(start, 1, []division.Placement{placement(100, 50)}, time.Second)

	tests := []struct {
		at   time.Duration
		want division.Position
	}{
		{0, division.Position{X: 0, Y: 0}},
		{500 * time.Millisecond, division.Position{X: 50, Y: 25}},
		{time.Second, division.Position{X: 100, Y: 50}},
		{2 * time.Second, division.Position{X: 100, Y: 50}},
	}

	for _, tt := range tests {
		got := a.Frames(start.Add(tt.at))[0].Pos
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("at %v: %+v, want %+v", tt.at, got, tt.want)
		}
	}

	if !a.Animating(start.Add(500 * time.Millisecond)) {
		t.Error("should be animating halfway")
	}
	if a.Animating(start.Add(time.Second)) {
		t.Error("should be done after the duration")
	}
}

func TestAnimatorDelay(t *testing.T) {
	a := NewAnimator()
	start := time.Unix(100, 0)
	a.Retarget(start, 1, []division.Placement{placement(0, 0)}, time.Second)

	target := placement(100, 0)
	target.Delay = 300 * time.Millisecond
	target.Opacity = 0
	a.Retarget(start, 1, []division.Placement{target}, time.Second)

	if f := a.Frames(start.Add(200 * time.Millisecond))[0]; f.Pos.X != 0 || f.Opacity != 1 {
		t.Errorf("moved during delay: %+v", f)
	}
	if f := a.Frames(start.Add(1300 * time.Millisecond))[0]; f.Pos.X != 100 || f.Opacity != 0 {
		t.Errorf("not at target after delay+duration: %+v", f)
	}
}

func TestAnimatorKeepsRunningTween(t *testing.T) {
	a := NewAnimator()
	start := time.Unix(100, 0)
	a.Retarget(start, 1, []division.Placement{placement(0, 0)}, time.Second)
	a.Retarget(start, 1, []division.Placement{placement(100, 0)}, time.Second)

	// Same target again halfway must not restart the move.
	half := start.Add(500 * time.Millisecond)
	a.Retarget(half, 1, []division.Placement{placement(100, 0)}, time.Second)

	if f := a.Frames(start.Add(time.Second))[0]; f.Pos.X != 100 {
		t.Errorf("tween restarted: %+v", f)
	}
}

func TestAnimatorRetargetMidway(t *testing.T) {
	a := NewAnimator()
	start := time.Unix(100, 0)
	a.Retarget(start, 1, []division.Placement{placement(0, 0)}, time.Second)
	a.Retarget(start, 1, []division.Placement{placement(100, 0)}, time.Second)

	half := start.Add(500 * time.Millisecond)
	a.Retarget(half, 1, []division.Placement{placement(0, 0)}, time.Second)

	// The new move starts from where the unit was, not from the old origin.
	if f := a.Frames(half)[0]; math.Abs(f.Pos.X-50) > 1e-9 {
		t.Errorf("retarget jumped: %+v", f)
	}
}

func TestAnimatorRoundChangeDropsState(t *testing.T) {
	a := NewAnimator()
	start := time.Unix(100, 0)
	a.Retarget(start, 1, []division.Placement{placement(0, 0)}, time.Second)
	a.Retarget(start, 1, []division.Placement{placement(100, 0)}, time.Second)

	a.Retarget(start, 2, []division.Placement{placement(30, 30), placement(40, 30)}, time.Second)

	if a.Round() != 2 {
		t.Errorf("round = %d, want 2", a.Round())
	}
	if a.Animating(start) {
		t.Error("new round should start at rest")
	}
	frames := a.Frames(start)
	if len(frames) != 2 || frames[0].Pos.X != 30 || frames[1].Pos.X != 40 {
		t.Errorf("frames = %+v", frames)
	}
}
