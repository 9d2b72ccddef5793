package dots

// Layout maps grid coordinates to surface pixels. The board recomputes it at
// the start of every frame and dots read it during Update.
type Layout struct {
	GridSize float64
	XOff     float64
	YOff     float64
	UISize   float64
}

// Fit sizes the grid to the largest square cell that fits a surface of w×h
// below the UI bar and centers it.
func (l *Layout) Fit(w, h float64, cols, rows int) {
	gs := min(w/float64(cols+1), (h-l.UISize)/float64(rows+1))
	gs = max(gs, 0)

	l.GridSize = gs
	l.XOff = (w - float64(cols+1)*gs) / 2
	l.YOff = ((h-l.UISize)-float64(rows+1)*gs)/2 + l.UISize
}

// CellCenter returns the pixel center of column x at (possibly fractional)
// row y.
func (l Layout) CellCenter(x int, y float64) (cx, cy float64) {
	return (float64(x)+1)*l.GridSize + l.XOff, (y+1)*l.GridSize + l.YOff
}

// DotRadius is the outer radius of a dot.
func (l Layout) DotRadius() float64 {
	return l.GridSize / 2.5
}

// LineWidth is the stroke width of the path.
func (l Layout) LineWidth() float64 {
	return l.GridSize / 7
}
