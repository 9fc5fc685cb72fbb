package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"ru", language.Russian},
		{"ru-RU", language.Russian},
		{"ru_RU", language.Russian},
		{"not a locale!", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Resolve(tt.in); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringsPerLocale(t *testing.T) {
	en := New("en")
	ru := New("ru")

	if got := en.T(KeySuccess); got != "Order ready!" {
		t.Errorf("en success = %q", got)
	}
	if got := ru.T(KeySuccess); got != "Заказ готов!" {
		t.Errorf("ru success = %q", got)
	}
	if got := ru.T(KeyPack); got != "Упаковать" {
		t.Errorf("ru pack = %q", got)
	}
	if got := en.T(KeyTooSmall, 40, 20); got != "Window too small (need 40x20)" {
		t.Errorf("en too small = %q", got)
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	keys := []string{
		KeyTitle, KeySuccess, KeyFailure, KeyPack, KeyPrompt, KeyTapHint,
		KeyHelpPick, KeyHelpMove, KeyHelpPack, KeyHelpContinue, KeyHelpQuit,
		KeyMenuSubtitle, KeyMenuSelect, KeyLanguageName, KeyHelpHistory,
		KeyHistoryTitle, KeyHistoryEmpty, KeyColProblem, KeyColAnswer,
		KeyColResult, KeyResultRight, KeyResultWrong,
	}

	for _, tag := range Supported() {
		s := New(tag.String())
		for _, key := range keys {
			if got := s.T(key); got == key || got == "" {
				t.Errorf("%s: key %q has no translation", tag, key)
			}
		}
	}
}

func TestZeroStringsFallsBack(t *testing.T) {
	var s Strings
	if got := s.T(KeyFailure); got != "Oops!" {
		t.Errorf("zero Strings T() = %q, want English fallback", got)
	}
}
