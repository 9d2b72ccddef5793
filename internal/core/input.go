package core

// Action is a semantic key action, abstracted from physical key presses.
// Pointer input goes straight to the engine and has no Action.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // K, Up arrow - menu cursor up
	ActionDown              // J, Down arrow - menu cursor down
	ActionConfirm           // Enter - pick the highlighted level
	ActionScores            // Tab - open the scoreboard
	ActionBack              // B, Escape - back to the level menu
	ActionRestart           // R - start the session over
	ActionHelp              // ? - toggle the full help view
	ActionScreenshot        // F12 - save the current frame to a file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionScores:
		return "Scores"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
