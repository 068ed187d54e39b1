package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move piece left
	ActionRight           // D, Right arrow - move piece right
	ActionSoftDrop        // S, Down arrow - move piece down one row
	ActionRotate          // W, Up arrow - rotate piece clockwise
	ActionHardDrop        // Space - drop piece to the bottom
	ActionRestart         // R (or Space on the game over screen) - restart
	ActionQuit            // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame carries the single action applied during one simulation tick.
// The platform keeps only the most recent pending key per tick: older unread
// keys are discarded, which prevents input lag buildup during fast play.
type InputFrame struct {
	Action Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Action: ActionNone}
}

// Set records an action, replacing any previously pending one.
func (f *InputFrame) Set(a Action) {
	f.Action = a
}

// Has returns true if the given action is pending this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Action == a
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Action = ActionNone
}
