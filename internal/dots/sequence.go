package dots

import "github.com/vovakirdan/tui-dots/internal/engine"

// Sequence is the path being traced. Consecutive dots are orthogonal
// neighbours of one color.
type Sequence struct {
	dots []*Dot
}

// Begin starts a new path at d, discarding any previous one.
func (s *Sequence) Begin(d *Dot) {
	s.dots = append(s.dots[:0], d)
}

// TryExtend applies the step onto d. Stepping back onto the previous dot
// retracts the last step. Illegal steps leave the path unchanged. It reports
// whether the path changed.
func (s *Sequence) TryExtend(d *Dot) bool {
	n := len(s.dots)
	if n == 0 {
		return false
	}

	first := s.dots[0]
	if d.color != first.color || first.color.IsDummy() {
		return false
	}
	if !s.dots[n-1].adjacent(d) {
		return false
	}

	if n >= 2 && s.dots[n-2] == d {
		s.dots = s.dots[:n-1]
		return true
	}

	s.dots = append(s.dots, d)
	return true
}

// IsLoop reports whether the path visits some cell twice.
func (s *Sequence) IsLoop() bool {
	seen := make(map[[2]int]struct{}, len(s.dots))
	for _, d := range s.dots {
		k := [2]int{d.x, d.y}
		if _, ok := seen[k]; ok {
			return true
		}
		seen[k] = struct{}{}
	}
	return false
}

// Len returns the number of steps in the path.
func (s *Sequence) Len() int {
	return len(s.dots)
}

// Dots returns a copy of the path.
func (s *Sequence) Dots() []*Dot {
	out := make([]*Dot, len(s.dots))
	copy(out, s.dots)
	return out
}

// First returns the dot the path started on, or nil.
func (s *Sequence) First() *Dot {
	if len(s.dots) == 0 {
		return nil
	}
	return s.dots[0]
}

// Reset empties the path.
func (s *Sequence) Reset() {
	s.dots = s.dots[:0]
}

// PathObject draws the current path from dot to dot and on to the pointer.
type PathObject struct {
	seq    *Sequence
	layout *Layout
}

func (p *PathObject) Update(w, h float64) {}

func (p *PathObject) UpdateInteraction(engine.Pointer) []engine.Edge { return nil }

func (p *PathObject) Draw(c engine.Canvas, f engine.Frame) {
	if p.seq.Len() == 0 {
		return
	}

	points := make([]engine.Point, 0, p.seq.Len()+1)
	for _, d := range p.seq.dots {
		x, y := p.layout.CellCenter(d.x, float64(d.y))
		points = append(points, engine.Point{X: x, Y: y})
	}
	points = append(points, engine.Point{X: f.Pointer.X, Y: f.Pointer.Y})

	c.StrokePath(points, p.layout.LineWidth(), p.seq.First().color.Primary)
}
