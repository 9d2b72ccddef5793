package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/levels"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// MenuItem is a selectable level in the menu.
type MenuItem struct {
	Level     levels.Level
	HighScore int
	Played    bool
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	status   string

	quitting       bool
	selected       *levels.Level
	openScoreboard bool
}

// NewMenuModel creates a menu listing catalog, annotated with the best score
// recorded for each level.
func NewMenuModel(catalog []levels.Level, store *storage.Store, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var stats map[string]*storage.LevelStats
	if store != nil {
		// Best-effort: the menu works without scores.
		stats, _ = store.GetAllLevelStats()
	}

	items := make([]MenuItem, 0, len(catalog))
	for _, lvl := range catalog {
		item := MenuItem{Level: lvl}
		if st, ok := stats[lvl.ID]; ok {
			item.HighScore = st.HighScore
			item.Played = st.Plays > 0
		}
		items = append(items, item)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:    items,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		keys:     DefaultKeyMap(),
		help:     h,
		renderer: r,
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, max(len(m.items)-1, 0))

	case core.ActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, max(len(m.items)-1, 0))

	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor].Level
			m.selected = &selected
		}

	case core.ActionScores:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorAccent))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color(core.ColorDim))
	cursorStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorAccent))
	warnStyle := m.renderer.NewStyle().Foreground(lipgloss.Color(core.ColorWarn))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  D O T S  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("Select a level", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		best := "-"
		if item.Played {
			best = fmt.Sprintf("%d", item.HighScore)
		}
		line := fmt.Sprintf("%-16s %-34s best %s", item.Level.Name, item.Level.Summary(), best)

		if i == m.cursor {
			b.WriteString(cursorStyle.Render(centerText("> "+line, m.width)))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(centerText(m.status, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.help.View(menuHelp{m.keys}), m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected level, or nil if none selected.
func (m MenuModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Cursor returns the index of the highlighted level.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// withStatus clears the selection and shows msg under the list.
func (m MenuModel) withStatus(msg string) MenuModel {
	m.selected = nil
	m.openScoreboard = false
	m.status = msg
	return m
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
