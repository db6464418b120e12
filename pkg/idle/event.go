package idle

// Kind discriminates input events
type Kind int

const (
	KeyPress Kind = iota
	KeyRelease
	ButtonPress
	ButtonRelease
	Wheel
	Motion
)

var kindNames = [...]string{"key-press", "key-release", "button-press", "button-release", "wheel", "motion"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Event is a user input event as seen by the control layer
type Event struct {
	Kind   Kind
	Key    string  // key name for key events
	Button int     // pointer button for button events
	X, Y   float64 // pointer position, if known
}

// Key returns a key press event
func Key(name string) Event {
	return Event{Kind: KeyPress, Key: name}
}

// Button returns a button press event
func Button(button int, x, y float64) Event {
	return Event{Kind: ButtonPress, Button: button, X: x, Y: y}
}

// Move returns a pointer motion event
func Move(x, y float64) Event {
	return Event{Kind: Motion, X: x, Y: y}
}

// Qualifies reports whether the event counts as user activity.
// Keyboard events and every pointer event except pure motion qualify, so
// hovering over the window does not keep it awake.
func (e Event) Qualifies() bool {
	switch e.Kind {
	case KeyPress, KeyRelease, ButtonPress, ButtonRelease, Wheel:
		return true
	case Motion:
		return false
	default:
		return false
	}
}
