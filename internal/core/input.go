package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W or Up arrow, depending on the key set
	ActionDown         // S or Down arrow
	ActionLeft         // A or Left arrow
	ActionRight        // D or Right arrow
	ActionQuit         // Esc, Ctrl+C, or Q with arrow keys - exit the program
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame collects the actions triggered during one platform frame.
// Actions are kept in arrival order: two turns pressed within one frame
// must reach the game in the order the player pressed them.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an input frame holding the given actions in order.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets the frame for the next tick, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// KeySet selects which physical keys steer the snake.
type KeySet int

const (
	KeysLetters KeySet = iota // W A S D
	KeysArrows                // arrow keys
)

// String returns a human-readable name for the key set.
func (k KeySet) String() string {
	switch k {
	case KeysLetters:
		return "wasd"
	case KeysArrows:
		return "arrows"
	default:
		return "unknown"
	}
}
