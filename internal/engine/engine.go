package engine

import "errors"

// ErrNoSurface is returned by New when no drawing surface is supplied.
var ErrNoSurface = errors.New("engine: no drawing surface")

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Align controls horizontal text anchoring.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas is the set of paint operations objects draw with.
// Colors are "#rrggbb" hex strings.
type Canvas interface {
	FillCircle(cx, cy, r float64, color string)
	StrokePath(points []Point, width float64, color string)
	FillRect(r Rect, color string)
	Text(x, y float64, s string, align Align, color string)
}

// Surface is the host's drawing target.
type Surface interface {
	Canvas
	// LayoutBox reports where the surface sits in host coordinates.
	LayoutBox() Box
	// Sync resizes the backing store to the layout box and clears it.
	Sync()
	// Size returns the backing store dimensions in pixels.
	Size() (w, h float64)
}

// Frame is the per-frame context handed to Draw.
type Frame struct {
	Width, Height float64
	Pointer       Pointer
}

// Object is anything registered with the engine.
// Implementations must be comparable (normally a pointer).
type Object interface {
	Update(w, h float64)
	Draw(c Canvas, f Frame)
	UpdateInteraction(p Pointer) []Edge
}

// EdgeEvent is an edge raised by a registered object.
type EdgeEvent struct {
	Target  Object
	Edge    Edge
	Pointer Pointer
}

// Listener receives engine-wide notifications.
type Listener interface {
	// OnFrame runs at the start of every frame, before any object updates.
	OnFrame(w, h float64)
	// OnEdge receives each object edge raised while handling a pointer event.
	OnEdge(ev EdgeEvent)
	// OnInteraction runs once per pointer event after all edges.
	OnInteraction(kind InteractionKind, p Pointer)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock shared by animations created through the engine.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// Engine owns the ordered object registry and drives the frame loop.
// It is not safe for concurrent use; the host serializes all calls.
type Engine struct {
	surface   Surface
	clock     Clock
	objects   []Object
	live      map[Object]struct{}
	listeners []Listener
	pointer   Pointer
}

// New creates an engine drawing to surface.
func New(surface Surface, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}

	e := &Engine{
		surface: surface,
		clock:   SystemClock{},
		live:    make(map[Object]struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Clock returns the engine's clock.
func (e *Engine) Clock() Clock {
	return e.clock
}

// AddObject registers obj. Later registrations paint on top.
// Adding an object that is already registered is a no-op.
func (e *Engine) AddObject(obj Object) {
	if _, ok := e.live[obj]; ok {
		return
	}
	e.live[obj] = struct{}{}
	e.objects = append(e.objects, obj)
}

// RemoveObject unregisters obj. Safe to call while the engine is iterating:
// the removed object is skipped for the rest of that pass.
func (e *Engine) RemoveObject(obj Object) {
	if _, ok := e.live[obj]; !ok {
		return
	}
	delete(e.live, obj)

	kept := make([]Object, 0, len(e.objects)-1)
	for _, o := range e.objects {
		if o != obj {
			kept = append(kept, o)
		}
	}
	e.objects = kept
}

// AddListener subscribes l to frame, edge and interaction notifications.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Registered reports whether obj is currently registered.
func (e *Engine) Registered(obj Object) bool {
	_, ok := e.live[obj]
	return ok
}

// Objects returns a copy of the registry in paint order.
func (e *Engine) Objects() []Object {
	out := make([]Object, len(e.objects))
	copy(out, e.objects)
	return out
}

// Pointer returns the last normalized pointer.
func (e *Engine) Pointer() Pointer {
	return e.pointer
}

// Size returns the surface dimensions.
func (e *Engine) Size() (w, h float64) {
	return e.surface.Size()
}

// Frame runs one animation frame: sync the surface, notify listeners, update
// every object, then draw every object in registration order.
func (e *Engine) Frame() {
	e.surface.Sync()
	w, h := e.surface.Size()

	for _, l := range e.listeners {
		l.OnFrame(w, h)
	}

	for _, obj := range e.snapshot() {
		if e.Registered(obj) {
			obj.Update(w, h)
		}
	}

	f := Frame{Width: w, Height: h, Pointer: e.pointer}
	for _, obj := range e.snapshot() {
		if e.Registered(obj) {
			obj.Draw(e.surface, f)
		}
	}
}

// HandlePointer normalizes a host pointer event, feeds it to every object's
// hit test, delivers the resulting edges and finally raises the session-level
// interaction.
func (e *Engine) HandlePointer(ev PointerEvent) {
	w, h := e.surface.Size()
	e.pointer = normalize(e.pointer, ev, e.surface.LayoutBox(), w, h)
	p := e.pointer

	var events []EdgeEvent
	for _, obj := range e.snapshot() {
		if !e.Registered(obj) {
			continue
		}
		for _, edge := range obj.UpdateInteraction(p) {
			events = append(events, EdgeEvent{Target: obj, Edge: edge, Pointer: p})
		}
	}

	for _, ee := range events {
		if !e.Registered(ee.Target) {
			continue
		}
		for _, l := range e.listeners {
			l.OnEdge(ee)
		}
	}

	kind := kindOf(ev)
	for _, l := range e.listeners {
		l.OnInteraction(kind, p)
	}
}

func (e *Engine) snapshot() []Object {
	return e.Objects()
}
