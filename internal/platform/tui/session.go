package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/levels"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// SessionConfig describes one terminal session.
type SessionConfig struct {
	Levels   []levels.Level
	Store    *storage.Store
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	Player   string
	UISize   int

	// Start is the level to open directly. Empty opens the menu.
	Start string
}

type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScores
)

// SessionModel manages the full flow: menu -> game -> menu, plus the
// scoreboard. It is the top-level model for local and SSH sessions.
type SessionModel struct {
	cfg      SessionConfig
	state    sessionState
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session. When cfg.Start names a level the
// session opens straight into that board.
func NewSessionModel(cfg SessionConfig) (SessionModel, error) {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Renderer == nil {
		cfg.Renderer = lipgloss.DefaultRenderer()
	}

	m := SessionModel{cfg: cfg}
	m.menu = m.newMenu()

	if cfg.Start != "" {
		lvl, err := levels.Find(cfg.Levels, cfg.Start)
		if err != nil {
			return SessionModel{}, err
		}
		game, err := m.newGame(lvl)
		if err != nil {
			return SessionModel{}, err
		}
		m.game = &game
		m.state = stateGame
	}
	return m, nil
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.cfg.Levels, m.cfg.Store, m.cfg.Runtime, m.cfg.Renderer)
}

func (m SessionModel) newGame(lvl levels.Level) (GameModel, error) {
	return NewGameModel(lvl, m.cfg.Store, m.cfg.Runtime,
		WithLogger(m.cfg.Logger),
		WithPlayer(m.cfg.Player),
		WithRenderer(m.cfg.Renderer),
		WithUISize(m.cfg.UISize),
	)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.state == stateGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		rt := m.cfg.Runtime
		m.scores = NewScoreboardModel(m.cfg.Levels, m.menu.Cursor(), m.cfg.Store, rt.ScreenW, rt.ScreenH, m.cfg.Renderer)
		m.menu = m.menu.withStatus("")
		m.state = stateScores
		return m, m.scores.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := m.newGame(*selected)
		if err != nil {
			m.cfg.Logger.Error("cannot start level", "level", selected.ID, "error", err)
			m.menu = m.menu.withStatus(err.Error())
			return m, nil
		}
		m.game = &game
		m.state = stateGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.state = stateMenu
		// Rebuild so new results show up.
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.state = stateMenu
		m.menu = m.newMenu()
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session in the current terminal.
func Run(cfg SessionConfig) error {
	model, err := NewSessionModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err = p.Run()
	return err
}
