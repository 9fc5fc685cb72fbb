package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-division/internal/core"
	"github.com/vovakirdan/tui-division/internal/division"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

// tenKey selects the answer 10, which has no digit key of its own.
const tenKey = "x"

// KeyMap defines the trainer's key bindings. Help text is localised.
type KeyMap struct {
	Digit   key.Binding
	Prev    key.Binding
	Next    key.Binding
	Confirm key.Binding
	Tap     key.Binding
	History key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Prev, k.Next, k.Confirm, k.Tap, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Prev, k.Next, k.Confirm},
		{k.Tap, k.History, k.Quit},
	}
}

// NewKeyMap returns the default bindings with help in the given language.
func NewKeyMap(s i18n.Strings) KeyMap {
	digits := make([]string, 0, division.MaxAnswer+1)
	for d := 0; d < division.MaxAnswer; d++ {
		digits = append(digits, strconv.Itoa(d))
	}
	digits = append(digits, tenKey)

	return KeyMap{
		Digit: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp("0-9/x", s.T(i18n.KeyHelpPick)),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", s.T(i18n.KeyHelpMove)),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", s.T(i18n.KeyHelpMove)),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", s.T(i18n.KeyHelpPack)),
		),
		Tap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", s.T(i18n.KeyHelpContinue)),
		),
		History: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", s.T(i18n.KeyHelpHistory)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", s.T(i18n.KeyHelpQuit)),
		),
	}
}

// Input translates a key message into a trainer input.
// Returns ActionNone for keys the trainer does not use.
func (k KeyMap) Input(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Digit):
		if msg.String() == tenKey {
			return core.DigitInput(division.MaxAnswer)
		}
		d, err := strconv.Atoi(msg.String())
		if err != nil {
			return core.Input{}
		}
		return core.DigitInput(d)
	case key.Matches(msg, k.Prev):
		return core.Input{Action: core.ActionPrev}
	case key.Matches(msg, k.Next):
		return core.Input{Action: core.ActionNext}
	case key.Matches(msg, k.Confirm):
		return core.Input{Action: core.ActionConfirm}
	case key.Matches(msg, k.Tap):
		return core.Input{Action: core.ActionTap}
	}
	return core.Input{}
}

// MenuKeyMap defines the key bindings for the language menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
