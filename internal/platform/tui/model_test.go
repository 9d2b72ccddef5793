package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/dots"
	"github.com/vovakirdan/tui-dots/internal/engine"
	"github.com/vovakirdan/tui-dots/internal/levels"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// stripLevel is a 3x1 all-red board that ends after one move.
// On an 80x24 terminal the dots sit at cells (20,12), (40,12) and (60,12).
func stripLevel() levels.Level {
	return levels.Level{
		ID:   "strip",
		Name: "Strip",
		Game: config.GameConfig{
			Width:       3,
			Height:      1,
			Moves:       1,
			Script:      []string{"r", "r", "r"},
			AfterScript: "dummy",
		},
	}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPointerEvent(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.MouseMsg
		ok      bool
		kind    engine.PointerKind
		buttons int
	}{
		{"left press", mouse(3, 4, tea.MouseActionPress, tea.MouseButtonLeft), true, engine.PointerDown, 1},
		{"right press ignored", mouse(3, 4, tea.MouseActionPress, tea.MouseButtonRight), false, 0, 0},
		{"wheel ignored", mouse(3, 4, tea.MouseActionPress, tea.MouseButtonWheelUp), false, 0, 0},
		{"release", mouse(3, 4, tea.MouseActionRelease, tea.MouseButtonNone), true, engine.PointerUp, 0},
		{"drag", mouse(3, 4, tea.MouseActionMotion, tea.MouseButtonLeft), true, engine.PointerMove, 1},
		{"hover", mouse(3, 4, tea.MouseActionMotion, tea.MouseButtonNone), true, engine.PointerMove, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := pointerEvent(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if ev.Kind != tt.kind || ev.Buttons != tt.buttons {
				t.Errorf("event = %+v, expected kind %v buttons %d", ev, tt.kind, tt.buttons)
			}
			if ev.Source != engine.SourceMouse || ev.X != 3.5 || ev.Y != 4.5 {
				t.Errorf("event position = %+v, expected mouse at (3.5, 4.5)", ev)
			}
		})
	}
}

func TestNewGameModelInvalidLevel(t *testing.T) {
	lvl := stripLevel()
	lvl.Game.Moves = 0
	if _, err := NewGameModel(lvl, nil, testRuntime()); err == nil {
		t.Error("NewGameModel() accepted a level with no moves")
	}
}

func TestGameModelDragClearsAndRecords(t *testing.T) {
	store := openStore(t)
	m, err := NewGameModel(stripLevel(), store, testRuntime(), WithPlayer("alice"))
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}

	if got := m.Board().Snapshot().Row(0); got != "rrr" {
		t.Fatalf("initial row = %q, expected rrr", got)
	}

	m = update(t, m, mouse(20, 12, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(40, 12, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = update(t, m, mouse(60, 12, tea.MouseActionMotion, tea.MouseButtonLeft))
	if got := len(m.Board().Sequence()); got != 3 {
		t.Fatalf("sequence length = %d, expected 3", got)
	}
	m = update(t, m, mouse(60, 12, tea.MouseActionRelease, tea.MouseButtonNone))

	b := m.Board()
	if b.Outcome() != dots.OutcomeWon || b.Score() != 3 {
		t.Fatalf("outcome = %v score = %d, expected won with 3", b.Outcome(), b.Score())
	}

	results, err := store.TopScores("strip", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("recorded %d results, expected 1", len(results))
	}
	r := results[0]
	if !r.Won || r.Score != 3 || r.MovesUsed != 1 || r.Player != "alice" {
		t.Errorf("recorded %+v", r)
	}
}

func TestGameModelTickDraws(t *testing.T) {
	m, err := NewGameModel(stripLevel(), nil, testRuntime())
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	m = update(t, m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "█") {
		t.Error("View() has no dot pixels")
	}
	if !strings.Contains(view, "restart") {
		t.Error("View() has no help line")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("View() has %d lines, expected 24", lines)
	}
}

func TestGameModelKeys(t *testing.T) {
	m, err := NewGameModel(stripLevel(), nil, testRuntime())
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}

	m = update(t, m, keyMsg("?"))
	if !m.help.ShowAll {
		t.Error("? did not open the full help")
	}
	m = update(t, m, keyMsg("?"))

	m = update(t, m, keyMsg("esc"))
	if !m.BackToMenu() {
		t.Error("esc did not request the menu")
	}

	next, cmd := m.Update(keyMsg("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if next.View() != "" {
		t.Error("View() after quit is not empty")
	}
}

func TestGameModelRestartKey(t *testing.T) {
	m, err := NewGameModel(stripLevel(), nil, testRuntime())
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	m = update(t, m, mouse(20, 12, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(40, 12, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = update(t, m, mouse(40, 12, tea.MouseActionRelease, tea.MouseButtonNone))
	if m.Board().Phase() != dots.PhaseEnded {
		t.Fatalf("phase = %v, expected ended", m.Board().Phase())
	}

	m = update(t, m, keyMsg("r"))
	b := m.Board()
	if b.Phase() != dots.PhaseActive || b.MovesRemaining() != 1 || b.Score() != 0 {
		t.Errorf("after restart: phase %v, moves %d, score %d", b.Phase(), b.MovesRemaining(), b.Score())
	}
}

func TestGameModelResize(t *testing.T) {
	m, err := NewGameModel(stripLevel(), nil, testRuntime())
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	m = update(t, m, TickMsg{})

	if w, h := m.surface.Size(); w != 40 || h != 22 {
		t.Errorf("surface size = %v, %v, expected 40, 22", w, h)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 11 {
		t.Errorf("screen = %dx%d, expected 40x11", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelTooSmall(t *testing.T) {
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 10, 6
	m, err := NewGameModel(stripLevel(), nil, rt)
	if err != nil {
		t.Fatalf("NewGameModel() error = %v", err)
	}

	if !strings.Contains(m.screen.String(), "need 12x") {
		t.Errorf("screen does not ask for a bigger terminal:\n%s", m.screen.String())
	}
}
