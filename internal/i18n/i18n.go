// Package i18n holds the trainer's fixed display strings.
// Strings are swapped per locale; there is no other localisation logic.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	KeyTitle        = "title"
	KeySuccess      = "banner.success"
	KeyFailure      = "banner.failure"
	KeyPack         = "button.pack"
	KeyPrompt       = "prompt.pick"
	KeyTapHint      = "hint.tap"
	KeyTooSmall     = "screen.too_small"
	KeyHelpPick     = "help.pick"
	KeyHelpMove     = "help.move"
	KeyHelpPack     = "help.pack"
	KeyHelpContinue = "help.continue"
	KeyHelpQuit     = "help.quit"
	KeyMenuSubtitle = "menu.subtitle"
	KeyMenuSelect   = "menu.select"
	KeyLanguageName = "language.name"
	KeyHelpHistory  = "help.history"
	KeyHistoryTitle = "history.title"
	KeyHistoryEmpty = "history.empty"
	KeyColRound     = "history.col.round"
	KeyColProblem   = "history.col.problem"
	KeyColAnswer    = "history.col.answer"
	KeyColResult    = "history.col.result"
	KeyResultRight  = "history.result.right"
	KeyResultWrong  = "history.result.wrong"
)

var supportedTags = []language.Tag{
	language.English,
	language.Russian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Resolve maps a locale string such as "ru", "ru-RU" or "en_US" to the
// closest supported tag. Unknown or empty locales resolve to Default.
func Resolve(locale string) language.Tag {
	locale = strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if locale == "" {
		return Default()
	}
	parsed, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Strings looks up display strings for one locale.
type Strings struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns the strings for the given locale.
func New(locale string) Strings {
	tag := Resolve(locale)
	return Strings{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the resolved language tag.
func (s Strings) Tag() language.Tag {
	return s.tag
}

// T returns the string for key, formatted with args.
func (s Strings) T(key string, args ...any) string {
	if s.printer == nil {
		s = New("")
	}
	return s.printer.Sprintf(key, args...)
}
