package dots

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-dots/internal/engine"
)

type testSurface struct {
	w, h float64
}

func (s *testSurface) FillCircle(cx, cy, r float64, color string) {}
func (s *testSurface) StrokePath(pts []engine.Point, w float64, c string) {}
func (s *testSurface) FillRect(r engine.Rect, color string) {}
func (s *testSurface) Text(x, y float64, str string, a engine.Align, c string) {}
func (s *testSurface) Sync() {}
func (s *testSurface) Size() (float64, float64) { return s.w, s.h }
func (s *testSurface) LayoutBox() engine.Box {
	return engine.Box{Width: s.w, Height: s.h}
}

// newTestBoard builds a board on a surface sized for 100px cells and runs one
// frame so every dot has a hit area.
func newTestBoard(t *testing.T, s Settings) (*Board, *engine.Engine) {
	t.Helper()

	surf := &testSurface{
		w: float64(100 * (s.Width + 1)),
		h: float64(100*(s.Height+1)) + DefaultUISize,
	}
	clock := engine.NewManualClock(time.Unix(0, 0))
	eng, err := engine.New(surf, engine.WithClock(clock))
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	b, err := New(eng, s)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	eng.Frame()
	return b, eng
}

// drag presses on the first cell, moves through the rest and releases.
func drag(b *Board, eng *engine.Engine, cells ...[2]int) {
	l := b.Layout()
	for i, c := range cells {
		x, y := l.CellCenter(c[0], float64(c[1]))
		kind := engine.PointerMove
		if i == 0 {
			kind = engine.PointerDown
		}
		eng.HandlePointer(engine.PointerEvent{Source: engine.SourceMouse, Kind: kind, X: x, Y: y, Buttons: 1})
	}
	last := cells[len(cells)-1]
	x, y := l.CellCenter(last[0], float64(last[1]))
	eng.HandlePointer(engine.PointerEvent{Source: engine.SourceMouse, Kind: engine.PointerUp, X: x, Y: y})
	eng.Frame()
}

func repeat(c DotColor, n int) []DotColor {
	out := make([]DotColor, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func countDots(eng *engine.Engine) int {
	n := 0
	for _, obj := range eng.Objects() {
		if _, ok := obj.(*Dot); ok {
			n++
		}
	}
	return n
}
