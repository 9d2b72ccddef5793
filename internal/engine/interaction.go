package engine

// State is the pointer state of a single interactive object.
type State uint8

const (
	StateIdle State = iota
	StateHovered
	StateHoveredPressed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateHovered:
		return "Hovered"
	case StateHoveredPressed:
		return "HoveredPressed"
	default:
		return "Unknown"
	}
}

// Edge is a pointer transition raised by an interactive object.
type Edge uint8

const (
	EdgeEnter Edge = iota
	EdgeLeave
	EdgeDown
	EdgeUp
)

// String returns a human-readable name for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeEnter:
		return "Enter"
	case EdgeLeave:
		return "Leave"
	case EdgeDown:
		return "Down"
	case EdgeUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Interaction tracks the edge-triggered pointer state of one object.
// Embed it in an Object and feed it the object's hit test every tick.
type Interaction struct {
	state      State
	wasPressed bool
	disabled   bool
}

// Step advances the state machine given whether the pointer is inside the
// object and whether it is pressed. It returns the edges raised by this
// transition, in the order they happened.
//
// A press only counts as down when it starts while the pointer is over the
// object; dragging onto an object with the button held raises enter only.
func (i *Interaction) Step(inside, pressed bool) []Edge {
	if i.disabled {
		return nil
	}

	var edges []Edge

	if !inside {
		if i.state != StateIdle {
			edges = append(edges, EdgeLeave)
		}
		i.state = StateIdle
		i.wasPressed = pressed
		return edges
	}

	if i.state == StateIdle {
		edges = append(edges, EdgeEnter)
		i.state = StateHovered
	}

	switch {
	case pressed && !i.wasPressed && i.state == StateHovered:
		edges = append(edges, EdgeDown)
		i.state = StateHoveredPressed
	case !pressed && i.state == StateHoveredPressed:
		edges = append(edges, EdgeUp)
		i.state = StateHovered
	}

	i.wasPressed = pressed
	return edges
}

// State returns the current pointer state.
func (i *Interaction) State() State {
	return i.state
}

// Hovered reports whether the pointer is over the object.
func (i *Interaction) Hovered() bool {
	return i.state != StateIdle
}

// Disabled reports whether the object ignores the pointer.
func (i *Interaction) Disabled() bool {
	return i.disabled
}

// SetDisabled freezes or unfreezes the state machine.
// While disabled the state is kept as-is and no edges are raised.
func (i *Interaction) SetDisabled(disabled bool) {
	i.disabled = disabled
}

// Circle is a circular hit area in surface pixels.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c Circle) Contains(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies strictly inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}
