package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/dots"
	"github.com/vovakirdan/tui-dots/internal/engine"
	"github.com/vovakirdan/tui-dots/internal/levels"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// DefaultUISize is the height of the board's UI bar in pixels (half rows).
const DefaultUISize = 6

// minGridSize is the smallest cell, in pixels, that still shows a dot.
const minGridSize = 3

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithLogger sets the logger shared by the model and its board.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPlayer sets the name results are recorded under.
func WithPlayer(name string) GameOption {
	return func(m *GameModel) {
		if name != "" {
			m.player = name
		}
	}
}

// WithRenderer sets the lipgloss renderer, e.g. one bound to an SSH session.
func WithRenderer(r *lipgloss.Renderer) GameOption {
	return func(m *GameModel) {
		if r != nil {
			m.renderer = r
		}
	}
}

// WithUISize sets the UI bar height in pixels.
func WithUISize(px int) GameOption {
	return func(m *GameModel) {
		if px > 0 {
			m.uiSize = px
		}
	}
}

// GameModel is the Bubble Tea model for one board.
// The engine and board are pointers, so copies of the model share them.
type GameModel struct {
	level    levels.Level
	eng      *engine.Engine
	board    *dots.Board
	surface  *Surface
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	renderer *lipgloss.Renderer
	player   string
	uiSize   int

	keys   KeyMap
	help   help.Model
	status string

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a board for lvl sized to the configured screen.
// A non-zero cfg.Seed overrides the level's own seed.
func NewGameModel(lvl levels.Level, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) (GameModel, error) {
	settings, err := lvl.Settings()
	if err != nil {
		return GameModel{}, err
	}
	if cfg.Seed != 0 {
		settings.Seed = cfg.Seed
	}

	m := GameModel{
		level:    lvl,
		store:    store,
		config:   cfg,
		logger:   log.New(io.Discard),
		renderer: lipgloss.DefaultRenderer(),
		player:   "local",
		uiSize:   DefaultUISize,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	m.surface = NewSurface(cfg.ScreenW, max(cfg.ScreenH-1, 0))
	m.help.Width = cfg.ScreenW

	m.eng, err = engine.New(m.surface)
	if err != nil {
		return GameModel{}, err
	}
	m.board, err = dots.New(m.eng, settings,
		dots.WithLogger(m.logger.With("level", lvl.ID, "player", m.player)),
		dots.WithUISize(float64(m.uiSize)),
	)
	if err != nil {
		return GameModel{}, err
	}
	m.board.OnEnd(recordResult(store, m.logger, lvl.ID, m.player))

	m.relayout()
	m.draw()
	return m, nil
}

// recordResult saves finished sessions. Failures are logged and otherwise
// ignored; the game goes on without a saved score.
func recordResult(store *storage.Store, logger *log.Logger, levelID, player string) func(dots.Result) {
	return func(r dots.Result) {
		if store == nil {
			return
		}
		_, err := store.SaveResult(storage.Result{
			LevelID:   levelID,
			Player:    player,
			Won:       r.Outcome == dots.OutcomeWon,
			Score:     r.Score,
			MovesUsed: r.MovesUsed,
		})
		if err != nil {
			logger.Warn("could not save result", "level", levelID, "error", err)
		}
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := pointerEvent(msg); ok {
			m.eng.HandlePointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		m.draw()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
	case core.ActionRestart:
		m.board.Restart()
		m.status = ""
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			m.status = "screenshot failed"
		} else {
			m.status = "saved " + path
		}
	}
	return m, nil
}

// draw runs one engine frame into the screen buffer. When the terminal is
// too small for the board a notice covers it.
func (m *GameModel) draw() {
	m.eng.Frame()
	m.surface.Compose(m.screen)
	if m.board.Layout().GridSize < minGridSize {
		m.drawTooSmall()
	}
}

func (m *GameModel) drawTooSmall() {
	s := m.board.Settings()
	needCols := minGridSize * (s.Width + 1)
	needRows := (minGridSize*(s.Height+1)+m.uiSize+1)/2 + lipgloss.Height(m.footer())

	w := min(m.screen.Width(), 24)
	h := min(m.screen.Height(), 4)
	r := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)
	m.screen.FillRect(r, core.Cell{Rune: ' '})
	m.screen.DrawBox(r, core.ColorWarn)

	_, cy := r.Center()
	m.screen.DrawTextCentered(cy-1, "terminal too small", core.ColorText)
	m.screen.DrawTextCentered(cy, fmt.Sprintf("need %dx%d", needCols, needRows), core.ColorDim)
}

// relayout gives the board every row the help view does not use.
func (m *GameModel) relayout() {
	rows := m.config.ScreenH - lipgloss.Height(m.footer())
	m.surface.SetLayout(m.config.ScreenW, max(rows, 0))
}

// pointerEvent converts a terminal mouse message into an engine pointer
// event. Only the left button drives the board; the wheel is ignored.
func pointerEvent(msg tea.MouseMsg) (engine.PointerEvent, bool) {
	x, y := cellPointer(msg.X, msg.Y)
	ev := engine.PointerEvent{Source: engine.SourceMouse, X: x, Y: y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return ev, false
		}
		ev.Kind = engine.PointerDown
		ev.Buttons = 1
	case tea.MouseActionRelease:
		ev.Kind = engine.PointerUp
	case tea.MouseActionMotion:
		ev.Kind = engine.PointerMove
		if msg.Button == tea.MouseButtonLeft {
			ev.Buttons = 1
		}
	default:
		return ev, false
	}
	return ev, true
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".dots", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.level.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m GameModel) footer() string {
	line := m.help.View(m.keys)
	if m.status != "" {
		line += "  " + m.status
	}
	return m.renderer.NewStyle().Foreground(lipgloss.Color("241")).Render(line)
}

// View renders the last composed frame and the help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return renderScreen(m.renderer, m.screen) + "\n" + m.footer()
}

// Board returns the running board.
func (m GameModel) Board() *dots.Board {
	return m.board
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

var _ help.KeyMap = KeyMap{}
