package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-division/internal/core"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

// MenuItem is a selectable language.
type MenuItem struct {
	Locale string // BCP 47 tag, e.g. "ru"
	Title  string // Language name in that language
}

// MenuModel is the Bubble Tea model for the language picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	strings  i18n.Strings
	quitting bool
	selected *MenuItem
}

// NewMenuModel creates a language menu with the cursor on locale.
func NewMenuModel(cfg core.RuntimeConfig, locale string) MenuModel {
	current := i18n.Resolve(locale)

	tags := i18n.Supported()
	items := make([]MenuItem, 0, len(tags))
	cursor := 0
	for i, tag := range tags {
		if tag == current {
			cursor = i
		}
		items = append(items, MenuItem{
			Locale: tag.String(),
			Title:  i18n.New(tag.String()).T(i18n.KeyLanguageName),
		})
	}

	return MenuModel{
		items:   items,
		cursor:  cursor,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		strings: i18n.New(locale),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.strings = i18n.New(m.items[m.cursor].Locale)

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		m.strings = i18n.New(m.items[m.cursor].Locale)

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu in the language under the cursor.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(m.strings.T(i18n.KeyTitle), m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.strings.T(i18n.KeyMenuSubtitle), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(hint.Render(centerText(m.strings.T(i18n.KeyMenuSelect), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Locale string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the language picker and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, locale string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, locale),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	return MenuResult{
		Locale: m.Selected().Locale,
		Config: m.Config(),
	}, nil
}
