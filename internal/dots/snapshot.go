package dots

import "strings"

// Snapshot captures the board for determinism testing and replay.
type Snapshot struct {
	Width    int
	Height   int
	Cells    []string // color names, row by row; "" for an empty cell
	Sequence [][2]int // traced path as (x, y) pairs
	Moves    int
	Score    int
	Goals    []GoalState
	Phase    Phase
	Outcome  Outcome
}

// Snapshot returns the current board state.
func (b *Board) Snapshot() Snapshot {
	cells := make([]string, 0, b.grid.Width()*b.grid.Height())
	for y := 0; y < b.grid.Height(); y++ {
		for x := 0; x < b.grid.Width(); x++ {
			name := ""
			if d := b.grid.At(x, y); d != nil {
				name = d.color.Name
			}
			cells = append(cells, name)
		}
	}

	seq := make([][2]int, 0, b.seq.Len())
	for _, d := range b.seq.dots {
		seq = append(seq, [2]int{d.x, d.y})
	}

	return Snapshot{
		Width:    b.grid.Width(),
		Height:   b.grid.Height(),
		Cells:    cells,
		Sequence: seq,
		Moves:    b.MovesRemaining(),
		Score:    b.score,
		Goals:    b.Goals(),
		Phase:    b.phase,
		Outcome:  b.outcome,
	}
}

// Row returns row y as single-letter color codes, "." for dummy and " " for
// empty.
func (s Snapshot) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < s.Width; x++ {
		switch name := s.Cells[y*s.Width+x]; name {
		case "":
			sb.WriteByte(' ')
		case Dummy.Name:
			sb.WriteByte('.')
		default:
			sb.WriteByte(name[0])
		}
	}
	return sb.String()
}
