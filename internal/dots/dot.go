package dots

import (
	"github.com/vovakirdan/tui-dots/internal/engine"
)

// spawnDrop is how many rows above its cell a new dot starts falling from.
const spawnDrop = 5

// Dot is one cell of the board. It is registered with the engine while it is
// on the grid and removed when cleared.
type Dot struct {
	engine.Interaction

	x, y   int
	color  DotColor
	row    *engine.Tween
	layout *Layout

	cx, cy, radius float64
}

func newDot(x, y int, color DotColor, layout *Layout, clock engine.Clock) *Dot {
	d := &Dot{
		x:      x,
		y:      y,
		color:  color,
		row:    engine.NewSpring(float64(y-spawnDrop), clock),
		layout: layout,
	}
	d.row.Set(float64(y))
	return d
}

// X returns the dot's column.
func (d *Dot) X() int { return d.x }

// Y returns the dot's row.
func (d *Dot) Y() int { return d.y }

// Color returns the dot's color.
func (d *Dot) Color() DotColor { return d.color }

// Center returns the settled pixel center as of the last Update.
func (d *Dot) Center() (x, y float64) { return d.cx, d.cy }

// Radius returns the hit radius as of the last Update.
func (d *Dot) Radius() float64 { return d.radius }

// moveTo slides the dot to row y, animating from wherever it is drawn now.
func (d *Dot) moveTo(y int) {
	d.y = y
	d.row.Set(float64(y))
}

// Update places the dot for the current layout.
func (d *Dot) Update(w, h float64) {
	d.cx, d.cy = d.layout.CellCenter(d.x, float64(d.y))
	d.radius = d.layout.DotRadius()
}

// Draw paints the dot at its animated row, with a ring while hovered.
func (d *Dot) Draw(c engine.Canvas, f engine.Frame) {
	x, y := d.layout.CellCenter(d.x, d.row.Value())
	if d.Hovered() {
		c.FillCircle(x, y, d.radius, d.color.Highlight)
	}
	c.FillCircle(x, y, d.radius/3*2, d.color.Primary)
}

// UpdateInteraction hit-tests the pointer against the dot's circle.
func (d *Dot) UpdateInteraction(p engine.Pointer) []engine.Edge {
	hit := engine.Circle{X: d.cx, Y: d.cy, R: d.radius}
	return d.Step(hit.Contains(p.X, p.Y), p.Pressed)
}

func (d *Dot) adjacent(o *Dot) bool {
	dx := d.x - o.x
	dy := d.y - o.y
	return dx*dx+dy*dy == 1
}
