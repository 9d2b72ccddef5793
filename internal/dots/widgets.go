package dots

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-dots/internal/engine"
)

const (
	barColor      = "#777777"
	barAlpha      = 0x55 / 255.0
	barHoverAlpha = 0x88 / 255.0
	endAlpha      = 0xCC / 255.0
	textColor     = "#EEEEEE"
)

// BarElement is a rounded box in the UI bar showing an icon and a short text.
// A non-empty IconColor draws a colored dot instead of the Icon glyph.
type BarElement struct {
	engine.Interaction

	Rect        engine.Rect
	Text        string
	Icon        string
	IconColor   string
	HoverEffect bool
}

func (b *BarElement) Update(w, h float64) {}

func (b *BarElement) Draw(c engine.Canvas, f engine.Frame) {
	alpha := barAlpha
	if b.HoverEffect && b.Hovered() {
		alpha = barHoverAlpha
	}
	c.FillRect(b.Rect, shade(barColor, alpha))

	r := b.Rect
	switch {
	case b.IconColor != "":
		c.FillCircle(r.X+r.H/2, r.Y+r.H/2, r.H/4, b.IconColor)
	case b.Icon != "":
		c.Text(r.X+r.H/2, r.Y+r.H/2, b.Icon, engine.AlignCenter, textColor)
	}
	c.Text(r.X+r.W/2+r.H*0.45, r.Y+r.H/2, b.Text, engine.AlignCenter, textColor)
}

func (b *BarElement) UpdateInteraction(p engine.Pointer) []engine.Edge {
	return b.Step(b.Rect.Contains(p.X, p.Y), p.Pressed)
}

// EndScreen announces the outcome. It slides down into place and fades in;
// clicking it starts a new session.
type EndScreen struct {
	engine.Interaction

	Rect engine.Rect
	Icon string
	Text string
	Hint string

	offset *engine.Tween
	alpha  *engine.Tween
}

func newEndScreen(icon, text, hint string, clock engine.Clock) *EndScreen {
	e := &EndScreen{
		Icon:   icon,
		Text:   text,
		Hint:   hint,
		offset: engine.NewEaseOut(-0.25, clock),
		alpha:  engine.NewSpring(0, clock),
	}
	e.offset.Set(0)
	e.alpha.Set(1)
	return e
}

// Update centers the screen on the surface.
func (e *EndScreen) Update(w, h float64) {
	e.Rect.W = min(w, max(e.Rect.W, 0))
	e.Rect.H = min(h, max(e.Rect.H, 0))
	e.Rect.X = (w - e.Rect.W) / 2
	e.Rect.Y = (h - e.Rect.H) / 2
}

func (e *EndScreen) Draw(c engine.Canvas, f engine.Frame) {
	a := min(max(e.alpha.Value(), 0), 1)
	r := e.Rect
	r.Y += e.offset.Value() * r.H

	c.FillRect(r, shade(barColor, endAlpha*a))
	if a < 0.5 {
		return
	}

	cx := r.X + r.W/2
	c.Text(cx, r.Y+r.H*0.3, e.Icon, engine.AlignCenter, textColor)
	c.Text(cx, r.Y+r.H*0.6, e.Text, engine.AlignCenter, textColor)
	if e.Hint != "" {
		c.Text(cx, r.Y+r.H*0.85, e.Hint, engine.AlignCenter, shade(textColor, 0.6))
	}
}

func (e *EndScreen) UpdateInteraction(p engine.Pointer) []engine.Edge {
	return e.Step(e.Rect.Contains(p.X, p.Y), p.Pressed)
}

// shade darkens a "#rrggbb" color toward black by alpha in [0, 1].
// Unparseable input is returned unchanged.
func shade(hex string, alpha float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return hex
	}
	alpha = min(max(alpha, 0), 1)
	r := uint8(float64(v>>16&0xFF) * alpha)
	g := uint8(float64(v>>8&0xFF) * alpha)
	b := uint8(float64(v&0xFF) * alpha)
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
