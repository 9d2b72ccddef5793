package dots

import "fmt"

// Goal asks the player to clear Needed dots of Color.
type Goal struct {
	Color  DotColor
	Needed int
}

// GoalState is a goal and the progress toward it.
type GoalState struct {
	Goal
	Current int
}

// Satisfied reports whether the goal is met.
func (g GoalState) Satisfied() bool {
	return g.Current >= g.Needed
}

// Progress renders the goal as "current/needed".
func (g GoalState) Progress() string {
	return fmt.Sprintf("%d/%d", g.Current, g.Needed)
}

func (g *GoalState) add(n int) {
	g.Current = min(g.Current+n, g.Needed)
}
