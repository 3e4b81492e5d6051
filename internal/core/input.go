package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - nudge the steering target up
	ActionDown           // S, Down arrow - nudge the steering target down
	ActionLeft           // A, Left arrow - nudge the steering target left
	ActionRight          // D, Right arrow - nudge the steering target right
	ActionFire           // Space - hold the ship in place and keep firing
	ActionRelease        // X - release the steering target
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionFire:
		return "Fire"
	case ActionRelease:
		return "Release"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two frames.
// Pointer carries the latest mouse position in screen cells, if any.
type InputFrame struct {
	Actions    map[Action]bool
	Pointer    Vec2 // column/row of the last pointer event
	HasPointer bool
	PointerUp  bool // pointer button released this frame
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetPointer records a pointer position in screen cells.
func (f *InputFrame) SetPointer(col, row int) {
	f.Pointer = Vec2{X: float64(col), Y: float64(row)}
	f.HasPointer = true
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.HasPointer = false
	f.PointerUp = false
}
