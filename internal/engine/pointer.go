package engine

// Source identifies the physical device behind a pointer event.
type Source uint8

const (
	SourceMouse Source = iota
	SourceTouch
)

// PointerKind is the phase of a pointer event.
type PointerKind uint8

const (
	PointerMove PointerKind = iota
	PointerDown
	PointerUp
)

// PointerEvent is a raw pointer event as delivered by the host, in layout
// coordinates.
//
// Mouse events carry the offset within the layout box and the pressed button
// mask. Touch events carry page coordinates of the first touch and the number
// of active touches; an event with no touches keeps the previous position.
type PointerEvent struct {
	Source  Source
	Kind    PointerKind
	X, Y    float64
	Buttons int
	Touches int
}

// Pointer is the normalized pointer in surface pixel space.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

// Box is the layout box of the surface in host coordinates.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// InteractionKind is a session-level pointer event raised to listeners after
// per-object edges have been delivered.
type InteractionKind uint8

const (
	InteractionMove InteractionKind = iota
	InteractionDown
	InteractionUp
)

// String returns a human-readable name for the interaction kind.
func (k InteractionKind) String() string {
	switch k {
	case InteractionMove:
		return "Move"
	case InteractionDown:
		return "Down"
	case InteractionUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// normalize converts a host event into the next pointer state.
// surfaceW and surfaceH are the backing surface dimensions.
func normalize(prev Pointer, ev PointerEvent, box Box, surfaceW, surfaceH float64) Pointer {
	next := prev

	switch ev.Source {
	case SourceTouch:
		if ev.Touches > 0 || ev.Kind == PointerDown {
			next.X = scale(ev.X-box.Left, box.Width, surfaceW)
			next.Y = scale(ev.Y-box.Top, box.Height, surfaceH)
		}
		next.Pressed = true
	default:
		next.X = scale(ev.X, box.Width, surfaceW)
		next.Y = scale(ev.Y, box.Height, surfaceH)
		next.Pressed = ev.Buttons > 0
	}

	switch ev.Kind {
	case PointerDown:
		next.Pressed = true
	case PointerUp:
		next.Pressed = false
	}

	return next
}

// scale maps v from a layout extent to a surface extent.
func scale(v, layout, surface float64) float64 {
	if layout <= 0 {
		return v
	}
	return v / layout * surface
}

func kindOf(ev PointerEvent) InteractionKind {
	switch ev.Kind {
	case PointerDown:
		return InteractionDown
	case PointerUp:
		return InteractionUp
	default:
		return InteractionMove
	}
}
