package tui

import (
	"strconv"
	"unicode/utf8"

	"github.com/vovakirdan/tui-division/internal/config"
	"github.com/vovakirdan/tui-division/internal/core"
	"github.com/vovakirdan/tui-division/internal/division"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

// Scene size limits, in cells. The help line is drawn below the scene.
const (
	minSceneWidth  = 50
	minSceneHeight = 17

	headlineRow   = 1
	promptRow     = 2
	fieldTop      = 3
	digitWidth    = 3  // "10" plus a gap
	containerTop  = 80 // Percent of the field where containers begin
	dimScale      = 0.6
	dimOpacity    = 0.5
	hiddenOpacity = 0.05
)

// sceneLayout is the cell geometry of one screen size.
type sceneLayout struct {
	field  core.Rect
	padY   int
	digits []core.Rect // Indexed by digit
	button core.Rect
}

// layoutScene computes the geometry for a w x h scene.
func layoutScene(w, h int, buttonLabel string) sceneLayout {
	padY := h - 2
	l := sceneLayout{
		field: core.NewRect(0, fieldTop, w, max(padY-2-fieldTop, 0)),
		padY:  padY,
	}

	buttonW := utf8.RuneCountInString(buttonLabel) + 4
	total := (division.MaxAnswer+1)*digitWidth + 2 + buttonW
	x := max((w-total)/2, 0)

	l.digits = make([]core.Rect, division.MaxAnswer+1)
	for d := range l.digits {
		l.digits[d] = core.NewRect(x+d*digitWidth, padY, digitWidth-1, 1)
	}
	l.button = core.NewRect(x+(division.MaxAnswer+1)*digitWidth+2, padY-1, buttonW, 3)
	return l
}

// hit maps a click on the answer pad to an input.
func (l sceneLayout) hit(x, y int) (core.Input, bool) {
	for d, r := range l.digits {
		if r.Contains(x, y) {
			return core.DigitInput(d), true
		}
	}
	if l.button.Contains(x, y) {
		return core.Input{Action: core.ActionConfirm}, true
	}
	return core.Input{}, false
}

// cell maps a position in percent of the field to a screen cell.
func (l sceneLayout) cell(p division.Position) (int, int) {
	return l.field.X + core.PercentToCell(p.X, l.field.W),
		l.field.Y + core.PercentToCell(p.Y, l.field.H)
}

// Renderer draws a round snapshot onto a screen buffer.
type Renderer struct {
	strings   i18n.Strings
	unit      rune
	container rune
}

// NewRenderer creates a renderer using the given strings and display runes.
func NewRenderer(s i18n.Strings, display config.DisplayConfig) Renderer {
	return Renderer{
		strings:   s,
		unit:      firstRune(display.UnitRune, '●'),
		container: firstRune(display.ContainerRune, '▄'),
	}
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}

// TooSmall reports whether a w x h scene cannot fit the trainer.
func TooSmall(w, h int) bool {
	return w < minSceneWidth || h < minSceneHeight
}

// Draw renders the snapshot. frames holds each unit's current appearance
// by unit ID.
func (r Renderer) Draw(dst *core.Screen, snap division.Snapshot, frames []Frame) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if TooSmall(w, h) {
		msg := r.strings.T(i18n.KeyTooSmall, minSceneWidth, minSceneHeight+1)
		dst.DrawTextCentered(h/2, msg, core.ColorMessage)
		return
	}

	l := layoutScene(w, h, r.strings.T(i18n.KeyPack))

	dst.DrawText(1, 0, r.strings.T(i18n.KeyTitle), core.ColorDisabled)
	dst.DrawTextCentered(headlineRow, snap.Headline(), core.ColorHeadline)

	if snap.ContainersVisible() {
		r.drawContainers(dst, l, snap.Problem.Divisor)
	}
	if snap.UnitsVisible() {
		r.drawUnits(dst, l, frames)
	}

	switch snap.Phase {
	case division.PhaseAwaitingInput:
		dst.DrawTextCentered(promptRow, r.strings.T(i18n.KeyPrompt), core.ColorDisabled)
		r.drawPad(dst, l, snap)
	case division.PhaseSuccess:
		dst.DrawTextCentered(l.field.Y+l.field.H/3, r.strings.T(i18n.KeySuccess), core.ColorSuccess)
		dst.DrawTextCentered(l.padY, r.strings.T(i18n.KeyTapHint), core.ColorDisabled)
	case division.PhaseFailure:
		y := l.field.Y + l.field.H/3
		dst.DrawTextCentered(y, r.strings.T(i18n.KeyFailure), core.ColorFailure)
		dst.DrawTextCentered(y+1, snap.Message, core.ColorMessage)
		dst.DrawTextCentered(l.padY, r.strings.T(i18n.KeyTapHint), core.ColorDisabled)
	}
}

// drawContainers draws one open-topped container per divisor band.
func (r Renderer) drawContainers(dst *core.Screen, l sceneLayout, divisor int) {
	if divisor <= 0 {
		return
	}
	band := 100 / float64(divisor)
	top := l.field.Y + core.PercentToCell(containerTop, l.field.H)
	bottom := l.field.Bottom() - 1

	for box := 0; box < divisor; box++ {
		left := l.field.X + core.PercentToCell(float64(box)*band, l.field.W) + 1
		right := l.field.X + core.PercentToCell(float64(box+1)*band, l.field.W) - 1
		if box == divisor-1 {
			right = l.field.Right() - 2
		}
		if right <= left {
			continue
		}
		for y := top; y < bottom; y++ {
			dst.Set(left, y, '│', core.ColorContainer)
			dst.Set(right, y, '│', core.ColorContainer)
		}
		dst.FillRect(core.Rect{X: left, Y: bottom, W: right - left + 1, H: 1}, r.container, core.ColorContainer)
	}
}

// drawUnits draws every visible unit at its current frame.
func (r Renderer) drawUnits(dst *core.Screen, l sceneLayout, frames []Frame) {
	for _, f := range frames {
		if f.Opacity <= hiddenOpacity {
			continue
		}
		x, y := l.cell(f.Pos)
		if f.Scale < dimScale || f.Opacity < dimOpacity {
			dst.Set(x, y, '·', core.ColorUnitDim)
			continue
		}
		dst.Set(x, y, r.unit, core.ColorUnit)
	}
}

// drawPad draws the answer digits and the pack button.
func (r Renderer) drawPad(dst *core.Screen, l sceneLayout, snap division.Snapshot) {
	for d, rect := range l.digits {
		label := strconv.Itoa(d)
		c := core.ColorDigit
		if snap.Answer.Valid && snap.Answer.Digit == d {
			c = core.ColorDigitActive
		}
		x := rect.X + rect.W - utf8.RuneCountInString(label)
		dst.DrawText(x, rect.Y, label, c)
	}

	c := core.ColorDisabled
	if snap.CanConfirm() {
		c = core.ColorButton
	}
	dst.DrawBox(l.button, c)
	dst.DrawText(l.button.X+2, l.padY, r.strings.T(i18n.KeyPack), c)
}
