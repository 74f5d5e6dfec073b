package selection

import (
	"image"
	"log/slog"

	"github.com/soocke/roi-binarizer/domain/binarize"
)

// Machine tracks the drag-to-select gesture over the source pane.
// Transitions: press -> dragging, drag keeps dragging and moves the live
// corner, release -> selected with normalized corners, reset -> idle.
// It is driven from the UI thread only and needs no synchronization.
type Machine struct {
	state     State
	logger    *slog.Logger
	anchor    image.Point
	corner    image.Point
	rect      image.Rectangle
	listeners []Listener
}

// NewMachine returns an idle machine. logger may be nil.
func NewMachine(logger *slog.Logger) *Machine {
	return &Machine{state: StateIdle, logger: logger}
}

// Press starts a new rectangle at (x, y). A drag in progress is abandoned.
func (m *Machine) Press(x, y int) {
	if m == nil {
		return
	}
	m.anchor = image.Pt(x, y)
	m.corner = m.anchor
	m.rect = image.Rectangle{}
	m.transition(StateDragging)
}

// Drag moves the live corner while dragging; ignored otherwise.
func (m *Machine) Drag(x, y int) {
	if m == nil || m.state != StateDragging {
		return
	}
	m.corner = image.Pt(x, y)
}

// Release fixes the final corner and normalizes the rectangle.
// Releases without a preceding press are ignored.
func (m *Machine) Release(x, y int) {
	if m == nil || m.state != StateDragging {
		return
	}
	m.corner = image.Pt(x, y)
	m.rect = binarize.Normalize(m.anchor, m.corner)
	m.transition(StateSelected)
}

// Reset clears any selection.
func (m *Machine) Reset() {
	if m == nil {
		return
	}
	m.rect = image.Rectangle{}
	m.anchor, m.corner = image.Point{}, image.Point{}
	m.transition(StateIdle)
}

// Current returns the current state.
func (m *Machine) Current() State {
	if m == nil {
		return StateIdle
	}
	return m.state
}

// Rect returns the display-space rectangle: the live (normalized) rectangle
// while dragging, the final one once selected. ok is false when idle.
func (m *Machine) Rect() (image.Rectangle, bool) {
	if m == nil {
		return image.Rectangle{}, false
	}
	switch m.state {
	case StateDragging:
		return binarize.Normalize(m.anchor, m.corner), true
	case StateSelected:
		return m.rect, true
	default:
		return image.Rectangle{}, false
	}
}

// AddListener registers l for subsequent transitions.
func (m *Machine) AddListener(l Listener) {
	if m == nil || l == nil {
		return
	}
	m.listeners = append(m.listeners, l)
}

func (m *Machine) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	if m.logger != nil {
		m.logger.Debug("selection state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}

// Ensure contract satisfaction
var _ Contract = (*Machine)(nil)
