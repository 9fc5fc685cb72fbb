package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-division/internal/core"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapInput(t *testing.T) {
	keys := NewKeyMap(i18n.New("en"))

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Input
	}{
		{"digit 0", runeKey('0'), core.DigitInput(0)},
		{"digit 7", runeKey('7'), core.DigitInput(7)},
		{"ten", runeKey('x'), core.DigitInput(10)},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.Input{Action: core.ActionPrev}},
		{"h", runeKey('h'), core.Input{Action: core.ActionPrev}},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.Input{Action: core.ActionNext}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.Input{Action: core.ActionConfirm}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.Input{Action: core.ActionTap}},
		{"q", runeKey('q'), core.Input{Action: core.ActionQuit}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Input{Action: core.ActionQuit}},
		{"unbound", runeKey('z'), core.Input{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Input(tt.msg); got != tt.want {
				t.Errorf("Input(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelpIsLocalised(t *testing.T) {
	en := NewKeyMap(i18n.New("en"))
	ru := NewKeyMap(i18n.New("ru"))

	if got := en.Confirm.Help().Desc; got != "pack" {
		t.Errorf("en confirm help = %q", got)
	}
	if got := ru.Confirm.Help().Desc; got != "упаковать" {
		t.Errorf("ru confirm help = %q", got)
	}
	if len(en.ShortHelp()) == 0 || len(en.FullHelp()) == 0 {
		t.Error("help bindings missing")
	}
}
