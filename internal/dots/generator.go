package dots

import (
	"fmt"
	"math/rand"
	"strings"
)

// Fallback decides what the generator emits once its script runs out.
type Fallback uint8

const (
	FallbackRandom Fallback = iota
	FallbackDummy
)

func (f Fallback) String() string {
	switch f {
	case FallbackDummy:
		return "dummy"
	default:
		return "random"
	}
}

// ParseFallback parses "dummy" or "random". An empty string means random.
func ParseFallback(s string) (Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "random":
		return FallbackRandom, nil
	case "dummy":
		return FallbackDummy, nil
	default:
		return FallbackRandom, fmt.Errorf("dots: unknown fallback %q", s)
	}
}

// ColorGenerator hands out colors for new dots: the scripted colors first,
// in order, then the fallback forever.
type ColorGenerator struct {
	script   []DotColor
	cursor   int
	fallback Fallback
	rng      *rand.Rand
}

// NewColorGenerator creates a generator. rng is only used by the random
// fallback and may be nil for FallbackDummy.
func NewColorGenerator(script []DotColor, fallback Fallback, rng *rand.Rand) *ColorGenerator {
	s := make([]DotColor, len(script))
	copy(s, script)
	return &ColorGenerator{script: s, fallback: fallback, rng: rng}
}

// Next returns the next color. When falling back to random, exclude (if not
// nil) is never returned.
func (g *ColorGenerator) Next(exclude *DotColor) DotColor {
	if g.cursor < len(g.script) {
		c := g.script[g.cursor]
		g.cursor++
		return c
	}

	if g.fallback == FallbackDummy {
		return Dummy
	}

	choices := make([]DotColor, 0, len(palette))
	for _, c := range palette {
		if exclude == nil || c != *exclude {
			choices = append(choices, c)
		}
	}
	return choices[g.rng.Intn(len(choices))]
}

// Remaining returns how many scripted colors are left.
func (g *ColorGenerator) Remaining() int {
	return len(g.script) - g.cursor
}
