package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vporoshin/tetrois/internal/core"
	"github.com/vporoshin/tetrois/internal/registry"
	"github.com/vporoshin/tetrois/internal/storage"
)

// resizable is implemented by games that adapt their layout to the terminal
// size without restarting the session.
type resizable interface {
	SetScreenSize(w, h int)
}

// highScoreKeeper is implemented by games that track a session-spanning high
// score seeded from persistent storage.
type highScoreKeeper interface {
	SetHighScore(hs int)
	HighScore() int
}

// Model is the Bubble Tea model that drives a game session: it owns the
// tick loop, the pending input frame, and the screen buffer.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the result has been persisted for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game, seeds its high score from storage, and starts the
// tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	if keeper, ok := m.game.(highScoreKeeper); ok && m.store != nil {
		if hs, err := m.store.HighScore(); err == nil {
			keeper.SetHighScore(hs)
		}
	}

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
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps the key to an action and leaves it pending for the next
// tick. Only one action is held at a time; a newer key replaces it.
// Quitting ends the session, so the result is persisted on the way out
// unless the game-over path already wrote it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.gameState.GameOver) {
		if !m.resultSaved {
			m.saveResult()
			m.resultSaved = true
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer and the game's layout to the new
// terminal size. The session itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizable); ok {
		r.SetScreenSize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick runs one simulation step with the pending input, persists the
// result when the session ends, and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// Restarted: the next game over persists again
		m.resultSaved = false
	}

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
		m.resultSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveResult persists the finished session when it beats or matches the
// stored record. A zero score still refreshes a zero record, matching the
// tie-overwrite rule. Best-effort: the session continues regardless.
func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	//nolint:errcheck
	m.store.RecordIfBest(m.gameState.Score, m.gameState.Level, m.gameState.Lines)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RenderOnce resets the game, renders a single frame, and returns it as a
// plain string without ANSI styling. Used for snapshot output.
func RenderOnce(game registry.Game, cfg core.RuntimeConfig) string {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Render(screen)
	return screen.String()
}
