package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow - accelerate up while held
	ActionDown               // Down arrow - accelerate down while held
	ActionLeft               // Left arrow - accelerate left while held
	ActionRight              // Right arrow - accelerate right while held
	ActionChangeColor        // Space release or double tap - buy a new ball color
	ActionReset              // Escape release - restart the game
	ActionPause              // P - pause/unpause game
	ActionQuit               // Q, Ctrl+C - exit game/session
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
	case ActionChangeColor:
		return "ChangeColor"
	case ActionReset:
		return "Reset"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// Direction actions are present on every tick their key is held; the rest
// are one-shot edges.
type InputFrame struct {
	Actions map[Action]bool

	// Pointer is the latest touch/mouse position in raster pixels.
	// Only meaningful when HasPointer is set.
	Pointer    Vec
	HasPointer bool
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

// SetPointer records a pointer position for this frame.
func (f *InputFrame) SetPointer(p Vec) {
	f.Pointer = p
	f.HasPointer = true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Vec{}
	f.HasPointer = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	clone.HasPointer = f.HasPointer
	return clone
}
