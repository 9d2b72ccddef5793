package engine

import (
	"errors"
	"slices"
	"testing"
)

type fakeSurface struct {
	w, h  float64
	box   Box
	log   *[]string
	syncs int
}

func (s *fakeSurface) FillCircle(cx, cy, r float64, color string) {}
func (s *fakeSurface) StrokePath(pts []Point, width float64, c string) {}
func (s *fakeSurface) FillRect(r Rect, color string) {}
func (s *fakeSurface) Text(x, y float64, str string, a Align, c string) {}
func (s *fakeSurface) LayoutBox() Box { return s.box }
func (s *fakeSurface) Size() (float64, float64) { return s.w, s.h }

func (s *fakeSurface) Sync() {
	s.syncs++
	*s.log = append(*s.log, "sync")
}

type fakeObject struct {
	name   string
	log    *[]string
	hit    Rect
	in     Interaction
	onDraw func()
}

func (o *fakeObject) Update(w, h float64) {
	*o.log = append(*o.log, "update:"+o.name)
}

func (o *fakeObject) Draw(c Canvas, f Frame) {
	*o.log = append(*o.log, "draw:"+o.name)
	if o.onDraw != nil {
		o.onDraw()
	}
}

func (o *fakeObject) UpdateInteraction(p Pointer) []Edge {
	return o.in.Step(o.hit.Contains(p.X, p.Y), p.Pressed)
}

type fakeListener struct {
	log          *[]string
	edges        []EdgeEvent
	interactions []InteractionKind
	onEdge       func(EdgeEvent)
}

func (l *fakeListener) OnFrame(w, h float64) {
	*l.log = append(*l.log, "frame")
}

func (l *fakeListener) OnEdge(ev EdgeEvent) {
	l.edges = append(l.edges, ev)
	if l.onEdge != nil {
		l.onEdge(ev)
	}
}

func (l *fakeListener) OnInteraction(kind InteractionKind, p Pointer) {
	l.interactions = append(l.interactions, kind)
}

func newTestEngine(t *testing.T) (*Engine, *fakeSurface, *[]string) {
	t.Helper()
	log := &[]string{}
	s := &fakeSurface{w: 200, h: 100, box: Box{Left: 10, Top: 20, Width: 100, Height: 50}, log: log}
	e, err := New(s)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return e, s, log
}

func TestNewWithoutSurface(t *testing.T) {
	e, err := New(nil)
	if !errors.Is(err, ErrNoSurface) {
		t.Fatalf("New(nil) error = %v, expected ErrNoSurface", err)
	}
	if e != nil {
		t.Error("expected no engine on error")
	}
}

func TestFrameOrdering(t *testing.T) {
	e, _, log := newTestEngine(t)
	e.AddListener(&fakeListener{log: log})
	e.AddObject(&fakeObject{name: "a", log: log})
	e.AddObject(&fakeObject{name: "b", log: log})

	e.Frame()

	want := []string{"sync", "frame", "update:a", "update:b", "draw:a", "draw:b"}
	if !slices.Equal(*log, want) {
		t.Errorf("frame log = %v, expected %v", *log, want)
	}
}

func TestRemoveDuringDraw(t *testing.T) {
	e, _, log := newTestEngine(t)
	b := &fakeObject{name: "b", log: log}
	a := &fakeObject{name: "a", log: log, onDraw: func() { e.RemoveObject(b) }}
	e.AddObject(a)
	e.AddObject(b)

	e.Frame()

	want := []string{"sync", "update:a", "update:b", "draw:a"}
	if !slices.Equal(*log, want) {
		t.Errorf("frame log = %v, expected %v", *log, want)
	}
	if e.Registered(b) {
		t.Error("b should be unregistered")
	}
	if got := len(e.Objects()); got != 1 {
		t.Errorf("len(Objects()) = %d, expected 1", got)
	}
}

func TestAddObjectTwice(t *testing.T) {
	e, _, log := newTestEngine(t)
	a := &fakeObject{name: "a", log: log}
	e.AddObject(a)
	e.AddObject(a)
	if got := len(e.Objects()); got != 1 {
		t.Errorf("len(Objects()) = %d, expected 1", got)
	}
	e.RemoveObject(a)
	e.RemoveObject(a)
	if got := len(e.Objects()); got != 0 {
		t.Errorf("len(Objects()) = %d, expected 0", got)
	}
}

func TestPointerNormalization(t *testing.T) {
	tests := []struct {
		name   string
		events []PointerEvent
		want   Pointer
	}{
		{
			name:   "mouse move scales offset",
			events: []PointerEvent{{Source: SourceMouse, Kind: PointerMove, X: 50, Y: 25}},
			want:   Pointer{X: 100, Y: 50},
		},
		{
			name:   "mouse move with button held",
			events: []PointerEvent{{Source: SourceMouse, Kind: PointerMove, X: 10, Y: 5, Buttons: 1}},
			want:   Pointer{X: 20, Y: 10, Pressed: true},
		},
		{
			name:   "mouse up releases",
			events: []PointerEvent{{Source: SourceMouse, Kind: PointerDown, X: 10, Y: 5, Buttons: 1}, {Source: SourceMouse, Kind: PointerUp, X: 10, Y: 5}},
			want:   Pointer{X: 20, Y: 10},
		},
		{
			name:   "touch subtracts box origin",
			events: []PointerEvent{{Source: SourceTouch, Kind: PointerDown, X: 60, Y: 45, Touches: 1}},
			want:   Pointer{X: 100, Y: 50, Pressed: true},
		},
		{
			name: "touch end without touches keeps position",
			events: []PointerEvent{
				{Source: SourceTouch, Kind: PointerDown, X: 60, Y: 45, Touches: 1},
				{Source: SourceTouch, Kind: PointerUp, X: 0, Y: 0},
			},
			want: Pointer{X: 100, Y: 50},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t)
			for _, ev := range tc.events {
				e.HandlePointer(ev)
			}
			if got := e.Pointer(); got != tc.want {
				t.Errorf("Pointer() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestHandlePointerDeliversEdges(t *testing.T) {
	e, _, log := newTestEngine(t)
	obj := &fakeObject{name: "a", log: log, hit: Rect{X: 0, Y: 0, W: 50, H: 50}}
	other := &fakeObject{name: "b", log: log, hit: Rect{X: 0, Y: 0, W: 50, H: 50}}
	l := &fakeListener{log: log}
	e.AddObject(obj)
	e.AddObject(other)
	e.AddListener(l)

	// The listener drops b as soon as a raises its first edge.
	l.onEdge = func(ev EdgeEvent) {
		if ev.Target == obj {
			e.RemoveObject(other)
		}
	}

	e.HandlePointer(PointerEvent{Source: SourceMouse, Kind: PointerDown, X: 10, Y: 10, Buttons: 1})

	var got []Edge
	for _, ev := range l.edges {
		if ev.Target != obj {
			t.Errorf("edge %v delivered for removed object", ev.Edge)
		}
		got = append(got, ev.Edge)
	}
	if want := []Edge{EdgeEnter, EdgeDown}; !slices.Equal(got, want) {
		t.Errorf("edges = %v, expected %v", got, want)
	}
	if want := []InteractionKind{InteractionDown}; !slices.Equal(l.interactions, want) {
		t.Errorf("interactions = %v, expected %v", l.interactions, want)
	}
}
