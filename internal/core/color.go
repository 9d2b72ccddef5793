package core

// Color is a truecolor value as a "#rrggbb" hex string.
// The zero value means the terminal's default color.
type Color string

// Colors used by the platform chrome.
const (
	ColorDefault Color = ""
	ColorText    Color = "#EEEEEE"
	ColorDim     Color = "#8A8A8A"
	ColorAccent  Color = "#FFD75F"
	ColorWarn    Color = "#FF5F5F"
)

// Cell is one terminal cell: a rune with foreground and background colors.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blank is the cell a cleared screen is filled with.
var blank = Cell{Rune: ' '}
