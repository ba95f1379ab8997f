package world

// EventKind is the kind of an input event
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	// EventQuit is a window close request
	EventQuit
)

// Key is a logical game key, independent of the keyboard layout
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyFire
	KeyRestart
)

// Event is a single input transition delivered to World.Step
type Event struct {
	Kind EventKind
	Key  Key
}

// KeyDown returns a key-down event
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// KeyUp returns a key-up event
func KeyUp(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// Quit returns a window close event
func Quit() Event { return Event{Kind: EventQuit} }

// direction maps steering keys to a Direction
func (k Key) direction() (Direction, bool) {
	switch k {
	case KeyLeft:
		return DirectionLeft, true
	case KeyRight:
		return DirectionRight, true
	default:
		return 0, false
	}
}
