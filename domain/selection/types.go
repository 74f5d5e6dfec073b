package selection

import "image"

// State enumerates the phases of a drag-to-select gesture.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateSelected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Listener is called on each state transition.
type Listener func(prev, next State)

// Interface slices for consumers (presenters).
type StateSource interface{ Current() State }
type Gesture interface {
	Press(x, y int)
	Drag(x, y int)
	Release(x, y int)
	Reset()
}

// Contract aggregate for DI.
type Contract interface {
	StateSource
	Gesture
	Rect() (image.Rectangle, bool)
	AddListener(Listener)
}
