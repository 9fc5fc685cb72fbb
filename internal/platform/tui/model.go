package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-division/internal/config"
	"github.com/vovakirdan/tui-division/internal/core"
	"github.com/vovakirdan/tui-division/internal/division"
	"github.com/vovakirdan/tui-division/internal/i18n"
)

// helpHeight is the number of rows below the scene reserved for key help.
const helpHeight = 1

// GameOptions configures a trainer model.
type GameOptions struct {
	Config  config.DivisionConfig
	Runtime core.RuntimeConfig
	Locale  string      // Overrides Config.Display.Locale when set
	Logger  *log.Logger // Defaults to discarding output
}

func (o GameOptions) locale() string {
	if o.Locale != "" {
		return o.Locale
	}
	return o.Config.Display.Locale
}

// frameLoop records whether tick messages are in flight.
type frameLoop struct {
	running bool
}

// GameModel is the Bubble Tea model for one trainer session. The
// controller, animator, history and frame loop are pointers so the model
// can be copied by value through Update.
type GameModel struct {
	ctrl     *division.Controller
	layout   division.Layout
	anim     *Animator
	loop     *frameLoop
	renderer Renderer
	screen   *core.Screen
	history  *History
	keys     KeyMap
	help     help.Model
	strings  i18n.Strings
	config   core.RuntimeConfig
	logger   *log.Logger
	now      func() time.Time

	showHistory bool
	quitting    bool
}

// NewGameModel creates a trainer model. The first round starts in Init.
func NewGameModel(opts GameOptions) GameModel {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := i18n.New(opts.locale())
	h := help.New()
	h.Width = cfg.ScreenW
	history := NewHistory(s, cfg.ScreenW, cfg.ScreenH)

	return GameModel{
		ctrl: division.NewController(opts.Config, rand.New(rand.NewSource(cfg.Seed)),
			division.WithLogger(logger)),
		layout:   division.NewLayout(opts.Config),
		anim:     NewAnimator(),
		loop:     &frameLoop{},
		renderer: NewRenderer(s, opts.Config.Display),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		history:  &history,
		keys:     NewKeyMap(s),
		help:     h,
		strings:  s,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Init starts the first round.
func (m GameModel) Init() tea.Cmd {
	t := m.ctrl.Start()
	m.retarget()
	return tea.Batch(timerCmd(t), m.wake())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.history.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case PhaseTimerMsg:
		next, ok := m.ctrl.Fire(msg.Timer)
		if !ok {
			return m, nil
		}
		m.retarget()
		return m, tea.Batch(timerCmd(next), m.wake())

	case TickMsg:
		if !m.anim.Animating(m.now()) {
			m.loop.running = false
			return m, nil
		}
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.History) {
		m.showHistory = !m.showHistory
		return m, nil
	}

	in := m.keys.Input(msg)
	if in.Action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showHistory {
		h, cmd := m.history.Update(msg)
		*m.history = h
		return m, cmd
	}

	return m.apply(in)
}

// handleMouse maps clicks to the answer pad, or to a background tap.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHistory || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	l := layoutScene(m.screen.Width(), m.screen.Height(), m.strings.T(i18n.KeyPack))
	if in, ok := l.hit(msg.X, msg.Y); ok && m.ctrl.Phase() == division.PhaseAwaitingInput {
		return m.apply(in)
	}
	return m.apply(core.Input{Action: core.ActionTap})
}

// apply forwards an input to the controller and schedules its timer.
func (m GameModel) apply(in core.Input) (tea.Model, tea.Cmd) {
	if in.Action == core.ActionNone {
		return m, nil
	}
	t, ok := m.ctrl.Apply(in)
	if !ok {
		m.logger.Debug("input ignored", "input", in, "phase", m.ctrl.Phase())
		return m, nil
	}
	m.retarget()
	return m, tea.Batch(timerCmd(t), m.wake())
}

// wake restarts the frame loop when units start moving. Bubble Tea
// redraws after every message, so a still scene needs no ticks.
func (m GameModel) wake() tea.Cmd {
	if m.loop.running || !m.anim.Animating(m.now()) {
		return nil
	}
	m.loop.running = true
	return tickCmd(m.config.TickRate)
}

// retarget points the animator at the controller's current layout and
// records resolved rounds.
func (m GameModel) retarget() {
	snap := m.ctrl.Snapshot()
	m.anim.Retarget(m.now(), snap.Round, m.layout.PlaceAll(snap), m.layout.Transition(snap.Phase, snap.Answer))
	m.history.Record(snap)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.showHistory {
		return m.history.View() + "\n" + helpStyle.Render(m.help.View(m.keys))
	}

	m.renderer.Draw(m.screen, m.ctrl.Snapshot(), m.anim.Frames(m.now()))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot returns the current round state.
func (m GameModel) Snapshot() division.Snapshot {
	return m.ctrl.Snapshot()
}

// History returns the rounds answered so far.
func (m GameModel) History() []RoundResult {
	return m.history.Results()
}

// IsQuitting returns true if the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a trainer model and returns the
// rounds answered before the user quit.
func Run(opts GameOptions) ([]RoundResult, error) {
	model := NewGameModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.History(), nil
	}
	return nil, nil
}
