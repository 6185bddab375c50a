package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	canvas     *core.Canvas
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	held       *KeyHold
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	now        func() time.Time
	showRules  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards game events.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	surface := game.Config().Surface
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	releaseAfter := time.Duration(game.Config().Input.ReleaseAfterMS) * time.Millisecond

	return Model{
		game:       game,
		screen:     screen,
		canvas:     core.NewCanvas(screen, surface.Width, surface.Height),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		held:       NewKeyHold(releaseAfter),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     logger,
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRules:
		m.showRules = !m.showRules
		return m, nil
	case core.ActionBack:
		m.showRules = false
		return m, nil
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
		return m, nil
	}

	if k, ok := m.keyMapper.MapMoveKey(msg); ok {
		m.held.Press(k, m.now())
		m.inputFrame.Press(k)
	}

	return m, nil
}

// handleResize processes window resize events.
// The game works in surface units, so only the cell buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick and schedules the next one until the
// game is over.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.gameState.GameOver {
		return m, nil
	}

	if k, ok := m.held.Expire(now); ok {
		m.inputFrame.Release(k)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.held.Reset()
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// logEvents writes game events to the log. Brick hits are frequent, so they
// go to debug.
func (m Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.(type) {
		case breakout.BrickHitEvent:
			m.logger.Debug(ev.EventName(), ev.KeyVals()...)
		default:
			m.logger.Info(ev.EventName(), ev.KeyVals()...)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showRules {
		return renderRules(m.keyMapper.Keys(), m.help, m.screen.Width(), m.screen.Height())
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and returns the final game state.
func Run(game *breakout.Game, cfg core.RuntimeConfig, logger *log.Logger) (core.GameState, error) {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return game.State(), err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
