package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/engine"
)

// Surface is an engine.Surface backed by a terminal. Each cell holds two
// vertically stacked pixels drawn with half-block glyphs, so the pixel buffer
// is cols × rows·2. Text is overlaid at cell resolution.
type Surface struct {
	cols, rows int // layout box in cells
	w, h       int // backing store in pixels

	pix  []core.Color
	text map[int]overlay
}

type overlay struct {
	r  rune
	fg core.Color
}

var _ engine.Surface = (*Surface)(nil)

// NewSurface creates a surface for a terminal of cols × rows cells.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{text: make(map[int]overlay)}
	s.SetLayout(cols, rows)
	s.Sync()
	return s
}

// SetLayout records the terminal size. The backing store follows on the next
// Sync.
func (s *Surface) SetLayout(cols, rows int) {
	s.cols = max(cols, 0)
	s.rows = max(rows, 0)
}

// LayoutBox returns the terminal size in cells.
func (s *Surface) LayoutBox() engine.Box {
	return engine.Box{Width: float64(s.cols), Height: float64(s.rows)}
}

// Sync resizes the pixel buffer to the layout and clears it.
func (s *Surface) Sync() {
	w, h := s.cols, s.rows*2
	if w != s.w || h != s.h || len(s.pix) != w*h {
		s.w, s.h = w, h
		s.pix = make([]core.Color, w*h)
	} else {
		clear(s.pix)
	}
	clear(s.text)
}

// Size returns the pixel buffer dimensions.
func (s *Surface) Size() (w, h float64) {
	return float64(s.w), float64(s.h)
}

// Pixel returns the color at pixel (x, y), or the default color out of range.
func (s *Surface) Pixel(x, y int) core.Color {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return core.ColorDefault
	}
	return s.pix[y*s.w+x]
}

func (s *Surface) plot(x, y int, c core.Color) {
	if x < 0 || x >= s.w || y < 0 || y >= s.h {
		return
	}
	s.pix[y*s.w+x] = c
}

// span clamps the pixel index range whose centers may fall in [lo, hi].
func span(lo, hi float64, limit int) (int, int) {
	a := max(int(math.Floor(lo)), 0)
	b := min(int(math.Ceil(hi)), limit-1)
	return a, b
}

// FillCircle paints every pixel whose center lies within r of (cx, cy).
func (s *Surface) FillCircle(cx, cy, r float64, color string) {
	if r <= 0 {
		return
	}
	x0, x1 := span(cx-r, cx+r, s.w)
	y0, y1 := span(cy-r, cy+r, s.h)
	c := engine.Circle{X: cx, Y: cy, R: r}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if c.Contains(float64(x)+0.5, float64(y)+0.5) {
				s.plot(x, y, core.Color(color))
			}
		}
	}
}

// StrokePath paints a polyline. Lines thinner than a pixel are widened to one.
func (s *Surface) StrokePath(points []engine.Point, width float64, color string) {
	half := max(width/2, 0.5)
	for i := 1; i < len(points); i++ {
		s.segment(points[i-1], points[i], half, core.Color(color))
	}
}

func (s *Surface) segment(a, b engine.Point, half float64, c core.Color) {
	x0, x1 := span(min(a.X, b.X)-half, max(a.X, b.X)+half, s.w)
	y0, y1 := span(min(a.Y, b.Y)-half, max(a.Y, b.Y)+half, s.h)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if distToSegment(float64(x)+0.5, float64(y)+0.5, a, b) <= half {
				s.plot(x, y, c)
			}
		}
	}
}

func distToSegment(px, py float64, a, b engine.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = ((px-a.X)*dx + (py-a.Y)*dy) / l2
		t = core.ClampF(t, 0, 1)
	}
	return math.Hypot(px-(a.X+t*dx), py-(a.Y+t*dy))
}

// FillRect paints every pixel whose center lies inside r.
func (s *Surface) FillRect(r engine.Rect, color string) {
	x0, x1 := span(r.X, r.X+r.W, s.w)
	y0, y1 := span(r.Y, r.Y+r.H, s.h)
	for y := y0; y <= y1; y++ {
		fy := float64(y) + 0.5
		if fy < r.Y || fy >= r.Y+r.H {
			continue
		}
		for x := x0; x <= x1; x++ {
			fx := float64(x) + 0.5
			if fx >= r.X && fx < r.X+r.W {
				s.plot(x, y, core.Color(color))
			}
		}
	}
}

// Text writes s on the cell row containing pixel row y, anchored at x.
func (s *Surface) Text(x, y float64, str string, align engine.Align, color string) {
	row := int(math.Floor(y / 2))
	if row < 0 || row >= s.rows {
		return
	}

	col := int(math.Floor(x))
	switch w := lipgloss.Width(str); align {
	case engine.AlignCenter:
		col -= w / 2
	case engine.AlignRight:
		col -= w
	}

	for _, r := range str {
		if col >= 0 && col < s.cols {
			s.text[row*s.cols+col] = overlay{r: r, fg: core.Color(color)}
		}
		col++
	}
}

// Compose renders the pixel buffer and text overlay into screen, resizing it
// to the layout.
func (s *Surface) Compose(screen *core.Screen) {
	screen.Resize(s.cols, s.rows)
	for cy := 0; cy < s.rows; cy++ {
		for cx := 0; cx < s.cols; cx++ {
			top := s.Pixel(cx, cy*2)
			bot := s.Pixel(cx, cy*2+1)
			if o, ok := s.text[cy*s.cols+cx]; ok {
				bg := top
				if bg == core.ColorDefault {
					bg = bot
				}
				screen.SetCell(cx, cy, core.Cell{Rune: o.r, Fg: o.fg, Bg: bg})
				continue
			}
			screen.SetCell(cx, cy, halfBlock(top, bot))
		}
	}
}

// halfBlock picks the glyph and colors showing top over bot in one cell.
func halfBlock(top, bot core.Color) core.Cell {
	switch {
	case top == core.ColorDefault && bot == core.ColorDefault:
		return core.Cell{Rune: ' '}
	case top == bot:
		return core.Cell{Rune: '█', Fg: top}
	case top == core.ColorDefault:
		return core.Cell{Rune: '▄', Fg: bot}
	default:
		return core.Cell{Rune: '▀', Fg: top, Bg: bot}
	}
}

// cellPointer maps a terminal cell to layout coordinates at the cell center.
func cellPointer(col, row int) (x, y float64) {
	return float64(col) + 0.5, float64(row) + 0.5
}
