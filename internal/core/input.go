package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap / start a run
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for one simulation tick.
// Actions holds edge-triggered presses (released -> pressed during this
// frame); Held holds every action that is down, including those pressed in
// earlier frames.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed on this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.WasJustPressed(a)
}

// WasJustPressed reports whether a transitioned from released to pressed
// on this frame.
func (f InputFrame) WasJustPressed(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsPressed reports whether a is currently down.
func (f InputFrame) IsPressed(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// EdgeDetector turns level-triggered "is down" samples into input frames
// with edge-triggered presses. A held key produces exactly one press.
type EdgeDetector struct {
	prev map[Action]bool
}

// NewEdgeDetector creates a detector with every action released.
func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{prev: make(map[Action]bool)}
}

// Sample builds the frame for the actions that are down this tick.
func (d *EdgeDetector) Sample(down ...Action) InputFrame {
	frame := NewInputFrame()
	now := make(map[Action]bool, len(down))
	for _, a := range down {
		if a == ActionNone {
			continue
		}
		now[a] = true
		frame.Held[a] = true
		if !d.prev[a] {
			frame.Actions[a] = true
		}
	}
	d.prev = now
	return frame
}
