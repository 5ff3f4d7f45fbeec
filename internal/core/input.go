package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // walk left
	ActionRight          // walk right
	ActionUp             // look up / scroll up
	ActionDown           // duck / scroll down
	ActionJump           // jump
	ActionUse            // activate the object in front of the player
	ActionConfirm        // Enter
	ActionBack           // Escape
	ActionRestart        // restart after the run ended
	ActionQuit           // exit
	ActionPause          // pause/unpause
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionUse:
		return "Use"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// KeyState tracks directional actions as held keys.
// Terminals report key presses (with auto-repeat) but no releases, so a press
// holds the action for a number of ticks and a repeat extends the hold.
type KeyState struct {
	holdTicks int
	until     map[Action]int
}

// NewKeyState creates a key state where one press holds for holdTicks ticks.
func NewKeyState(holdTicks int) *KeyState {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyState{
		holdTicks: holdTicks,
		until:     make(map[Action]int),
	}
}

// KeyDown marks the action as held starting at tick.
func (k *KeyState) KeyDown(a Action, tick int) {
	k.until[a] = tick + k.holdTicks
}

// KeyUp releases the action immediately.
func (k *KeyState) KeyUp(a Action) {
	delete(k.until, a)
}

// Held reports whether the action is still held at tick.
func (k *KeyState) Held(a Action, tick int) bool {
	until, ok := k.until[a]
	return ok && tick < until
}

// Apply sets every action held at tick on the frame.
func (k *KeyState) Apply(frame *InputFrame, tick int) {
	for a, until := range k.until {
		if tick < until {
			frame.Set(a)
		} else {
			delete(k.until, a)
		}
	}
}
