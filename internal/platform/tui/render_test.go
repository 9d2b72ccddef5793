package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dots/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawText(0, 0, "ab", core.ColorText)
	screen.SetCell(2, 0, core.Cell{Rune: '▀', Fg: "#FF0000", Bg: "#0000FF"})
	screen.SetCell(3, 0, core.Cell{Rune: '▀', Fg: "#FF0000", Bg: "#0000FF"})
	screen.DrawText(1, 1, "dots", core.ColorDefault)

	// A renderer without a terminal emits no escape sequences.
	r := lipgloss.NewRenderer(io.Discard)
	got := renderScreen(r, screen)
	if got != screen.String() {
		t.Errorf("renderScreen() = %q, expected %q", got, screen.String())
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if got := RenderScreen(core.NewScreen(0, 0)); got != "" {
		t.Errorf("RenderScreen() of empty screen = %q", got)
	}
}

func TestStyleForDefaultColors(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	style := styleFor(r, cellStyle{fg: "#FF0000"})
	if _, ok := style.GetBackground().(lipgloss.NoColor); !ok {
		t.Errorf("background = %v, expected NoColor", style.GetBackground())
	}
	if got := style.GetForeground(); got != lipgloss.Color("#FF0000") {
		t.Errorf("foreground = %v, expected #FF0000", got)
	}
}
