package core

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionSubmit             // Enter - record the typed roll
	ActionNewGame            // Ctrl+R - start over
	ActionToggleTable        // Tab - show/hide the frame table
	ActionHelp               // ? - expand help
	ActionQuit               // Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionNewGame:
		return "NewGame"
	case ActionToggleTable:
		return "ToggleTable"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
