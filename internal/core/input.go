package core

// Action represents a semantic UI action, abstracted from physical key presses.
// Paddle movement is not an action: it arrives as key down/up events.
type Action int

const (
	ActionNone   Action = iota
	ActionStart         // Enter/Space - open the difficulty selector
	ActionEasy          // 1/e - easy preset
	ActionMedium        // 2/m - medium preset
	ActionHard          // 3/h - hard preset
	ActionRules         // ? - toggle the rules panel
	ActionBack          // Esc - close the rules panel
	ActionQuit          // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionEasy:
		return "Easy"
	case ActionMedium:
		return "Medium"
	case ActionHard:
		return "Hard"
	case ActionRules:
		return "Rules"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key identifiers understood by the input handler.
// The short names are legacy aliases some keyboards still report.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyLeft       = "Left"
	KeyRight      = "Right"
)

// KeyEventType distinguishes presses from releases.
type KeyEventType int

const (
	KeyDown KeyEventType = iota
	KeyUp
)

// String returns "down" or "up".
func (t KeyEventType) String() string {
	if t == KeyUp {
		return "up"
	}
	return "down"
}

// KeyEvent is a single key press or release.
type KeyEvent struct {
	Type KeyEventType
	Key  string
}

// InputFrame holds everything the player did between two ticks.
// Key events keep their arrival order; actions are a set.
type InputFrame struct {
	Keys []KeyEvent

	// Actions maps action types to whether they were triggered this frame.
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

// Press appends a key-down event.
func (f *InputFrame) Press(key string) {
	f.Keys = append(f.Keys, KeyEvent{Type: KeyDown, Key: key})
}

// Release appends a key-up event.
func (f *InputFrame) Release(key string) {
	f.Keys = append(f.Keys, KeyEvent{Type: KeyUp, Key: key})
}

// Clear resets all actions and key events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}
