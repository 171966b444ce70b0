package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games react to actions; the platform decides which keys produce them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow - turn up (snake), rotate (blocks)
	ActionDown           // Down arrow - turn down (snake), soft drop (blocks)
	ActionLeft           // Left arrow
	ActionRight          // Right arrow
	ActionRestart        // R key - restart the game in any phase
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
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
