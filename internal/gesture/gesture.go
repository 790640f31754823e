// ABOUTME: Pointer gesture state machine for overlays: idle, dragging, resizing
// ABOUTME: Enter/exit hooks capture and release input; each gesture reports once on release

package gesture

import (
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// State is the gesture mode.
type State int

const (
	Idle State = iota
	Dragging
	Resizing
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Point is a pointer location in viewport pixels.
type Point struct {
	X, Y float64
}

// Bounds are the container's pixel dimensions. The zero value means unknown.
type Bounds struct {
	Width, Height float64
}

// Known reports whether both dimensions have been measured.
func (b Bounds) Known() bool {
	return b.Width > 0 && b.Height > 0
}

// OrDefault substitutes the default container for unknown dimensions.
func (b Bounds) OrDefault() Bounds {
	if b.Width <= 0 {
		b.Width = overlay.DefaultContainerWidth
	}
	if b.Height <= 0 {
		b.Height = overlay.DefaultContainerHeight
	}
	return b
}

// Hooks are the machine's actions. Any may be nil.
type Hooks struct {
	// OnEnter runs when a gesture starts; use it to capture pointer input.
	OnEnter func(State)
	// OnExit runs when a gesture ends; use it to release pointer input.
	OnExit func(State)
	// OnPosition receives the final position of a drag.
	OnPosition func(overlay.Position)
	// OnSize receives the final size of a resize.
	OnSize func(overlay.Size)
}

// BoundsFunc supplies the current container bounds.
type BoundsFunc func() Bounds

// Machine tracks one overlay's gesture. It is not safe for concurrent use;
// it is driven from a single input loop.
type Machine struct {
	state  State
	hooks  Hooks
	bounds BoundsFunc

	start     Point
	startPos  overlay.Position
	startSize overlay.Size

	pos  overlay.Position
	size overlay.Size
}

// New creates an idle machine.
func New(bounds BoundsFunc, hooks Hooks) *Machine {
	if bounds == nil {
		bounds = func() Bounds { return Bounds{} }
	}
	return &Machine{bounds: bounds, hooks: hooks}
}

// State returns the current mode.
func (m *Machine) State() State { return m.state }

// Position is the live position during a drag, or the last final position.
func (m *Machine) Position() overlay.Position { return m.pos }

// Size is the live size during a resize, or the last final size.
func (m *Machine) Size() overlay.Size { return m.size }

// Reset sets the resting geometry while idle. It reports false mid-gesture.
func (m *Machine) Reset(pos overlay.Position, size overlay.Size) bool {
	if m.state != Idle {
		return false
	}
	m.pos = pos
	m.size = size
	return true
}

// BeginDrag starts a drag from idle. It refuses while resizing.
func (m *Machine) BeginDrag(p Point, pos overlay.Position, size overlay.Size) bool {
	if m.state != Idle {
		return false
	}
	m.start = p
	m.startPos = pos
	m.startSize = size
	m.pos = pos
	m.size = size
	m.enter(Dragging)
	return true
}

// BeginResize starts a resize from idle, capturing the pointer start and
// the overlay's current size.
func (m *Machine) BeginResize(p Point, pos overlay.Position, size overlay.Size) bool {
	if m.state != Idle {
		return false
	}
	m.start = p
	m.startPos = pos
	m.startSize = size
	m.pos = pos
	m.size = size
	m.enter(Resizing)
	return true
}

// Move updates the live geometry. It reports whether anything changed.
func (m *Machine) Move(p Point) bool {
	dx, dy := p.X-m.start.X, p.Y-m.start.Y
	switch m.state {
	case Dragging:
		next := ClampPosition(
			overlay.Position{X: m.startPos.X + dx, Y: m.startPos.Y + dy},
			m.startSize, m.bounds())
		if next == m.pos {
			return false
		}
		m.pos = next
		return true
	case Resizing:
		next := ClampSize(m.startSize, dx, dy, m.bounds())
		if next == m.size {
			return false
		}
		m.size = next
		return true
	default:
		return false
	}
}

// Release ends the gesture at p and reports the final geometry exactly once.
func (m *Machine) Release(p Point) {
	state := m.state
	if state == Idle {
		return
	}
	m.Move(p)
	m.exit(state)

	switch state {
	case Dragging:
		if m.hooks.OnPosition != nil {
			m.hooks.OnPosition(m.pos)
		}
	case Resizing:
		if m.hooks.OnSize != nil {
			m.hooks.OnSize(m.size)
		}
	}
}

// Cancel abandons the gesture without reporting and restores the start geometry.
func (m *Machine) Cancel() {
	state := m.state
	if state == Idle {
		return
	}
	m.pos = m.startPos
	m.size = m.startSize
	m.exit(state)
}

func (m *Machine) enter(s State) {
	m.state = s
	if m.hooks.OnEnter != nil {
		m.hooks.OnEnter(s)
	}
}

func (m *Machine) exit(s State) {
	m.state = Idle
	if m.hooks.OnExit != nil {
		m.hooks.OnExit(s)
	}
}

// ClampSize applies a pointer delta to a start size, holding each dimension
// in [min, container]. Unknown container dimensions default to 800×450.
func ClampSize(start overlay.Size, dx, dy float64, container Bounds) overlay.Size {
	c := container.OrDefault()
	return overlay.Size{
		Width:  clamp(start.Width+dx, overlay.MinWidth, c.Width),
		Height: clamp(start.Height+dy, overlay.MinHeight, c.Height),
	}
}

// ClampPosition keeps a box of the given size inside the container.
// A box larger than the container is pinned to the origin.
func ClampPosition(pos overlay.Position, size overlay.Size, container Bounds) overlay.Position {
	c := container.OrDefault()
	return overlay.Position{
		X: clamp(pos.X, 0, max(0, c.Width-size.Width)),
		Y: clamp(pos.Y, 0, max(0, c.Height-size.Height)),
	}
}

// clamp bounds v above by hi first, then below by lo, so lo wins when hi < lo.
func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
