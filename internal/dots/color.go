// Package dots implements the connect-the-dots board: the grid of colored
// dots, the path builder, the tile generator and the board controller that
// resolves moves, tracks goals and decides the outcome.
package dots

import (
	"fmt"
	"strings"
)

// DotColor is an immutable dot color. Two colors are the same when all
// fields are equal, so values can be compared with ==.
type DotColor struct {
	Name      string
	Primary   string
	Highlight string
}

// Palette colors. Highlight is the primary tinted toward the background and
// is used for the hover ring.
var (
	Blue   = DotColor{Name: "blue", Primary: "#0000FF", Highlight: "#000044"}
	Green  = DotColor{Name: "green", Primary: "#00FF00", Highlight: "#004400"}
	Purple = DotColor{Name: "purple", Primary: "#FF00FF", Highlight: "#440044"}
	Red    = DotColor{Name: "red", Primary: "#FF0000", Highlight: "#440000"}
	Yellow = DotColor{Name: "yellow", Primary: "#DDDD00", Highlight: "#3B3B00"}

	// Dummy can sit on the board but never starts or joins a path.
	Dummy = DotColor{Name: "dummy", Primary: "#777777", Highlight: "#1F1F1F"}
)

var palette = []DotColor{Blue, Green, Purple, Red, Yellow}

// Palette returns the selectable colors in generation order.
func Palette() []DotColor {
	out := make([]DotColor, len(palette))
	copy(out, palette)
	return out
}

// IsDummy reports whether c is the dummy sentinel.
func (c DotColor) IsDummy() bool {
	return c == Dummy
}

func (c DotColor) String() string {
	return c.Name
}

// ParseColor resolves a color by name or single-letter shorthand
// (b, g, p, r, y, d). Matching is case-insensitive.
func ParseColor(s string) (DotColor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue", "b":
		return Blue, nil
	case "green", "g":
		return Green, nil
	case "purple", "p":
		return Purple, nil
	case "red", "r":
		return Red, nil
	case "yellow", "y":
		return Yellow, nil
	case "dummy", "d", "grey", "gray":
		return Dummy, nil
	default:
		return DotColor{}, fmt.Errorf("dots: unknown color %q", s)
	}
}

// ParseColors resolves a list of color names.
func ParseColors(names []string) ([]DotColor, error) {
	out := make([]DotColor, 0, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}
