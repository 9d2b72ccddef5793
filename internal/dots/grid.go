package dots

// Grid is a Width×Height matrix of dots. Cells are nil only while a move is
// being resolved.
type Grid struct {
	width, height int
	cells         []*Dot
}

// NewGrid creates an empty grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]*Dot, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the dot at (x, y), or nil when empty or out of bounds.
func (g *Grid) At(x, y int) *Dot {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) set(x, y int, d *Dot) {
	g.cells[y*g.width+x] = d
}

// Dense reports whether every cell holds a dot.
func (g *Grid) Dense() bool {
	for _, d := range g.cells {
		if d == nil {
			return false
		}
	}
	return true
}

// Count returns the number of dots of color c.
func (g *Grid) Count(c DotColor) int {
	n := 0
	for _, d := range g.cells {
		if d != nil && d.color == c {
			n++
		}
	}
	return n
}

// Each calls fn for every non-empty cell, row by row.
func (g *Grid) Each(fn func(d *Dot)) {
	for _, d := range g.cells {
		if d != nil {
			fn(d)
		}
	}
}

func (g *Grid) reset() {
	clear(g.cells)
}
