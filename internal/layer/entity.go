// ABOUTME: Entity pairs a committed overlay with its local draft geometry and gesture machine
// ABOUTME: Draft size resyncs when the committed size changes and no resize is in progress

package layer

import (
	"github.com/mauromedda/overlaycast/internal/gesture"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// HandleSize is the side of the square resize handle in pixels.
// HandleOverhang is how far it extends past the bottom-right corner.
const (
	HandleSize     = 16
	HandleOverhang = 4
)

// Entity is one overlay as laid out in the viewport.
type Entity struct {
	committed overlay.Overlay
	machine   *gesture.Machine
}

func newEntity(o overlay.Overlay, bounds gesture.BoundsFunc, cb Callbacks) *Entity {
	e := &Entity{committed: o}
	id := o.ID
	e.machine = gesture.New(bounds, gesture.Hooks{
		OnEnter: func(s gesture.State) {
			if cb.Capture != nil {
				cb.Capture(id, s)
			}
		},
		OnExit: func(s gesture.State) {
			if cb.Release != nil {
				cb.Release(id, s)
			}
		},
		OnPosition: func(p overlay.Position) {
			e.committed.Position = p
			if cb.PositionChanged != nil {
				cb.PositionChanged(id, p)
			}
		},
		OnSize: func(s overlay.Size) {
			if cb.SizeChanged != nil {
				cb.SizeChanged(id, s)
			}
		},
	})
	e.machine.Reset(o.Position, o.Size)
	return e
}

// ID returns the overlay id.
func (e *Entity) ID() string { return e.committed.ID }

// Overlay returns the committed overlay.
func (e *Entity) Overlay() overlay.Overlay { return e.committed }

// State returns the gesture mode.
func (e *Entity) State() gesture.State { return e.machine.State() }

// Position is where the entity is drawn: the live drag position while
// dragging, else the committed position.
func (e *Entity) Position() overlay.Position {
	if e.machine.State() == gesture.Dragging {
		return e.machine.Position()
	}
	return e.committed.Position
}

// Size is the local draft size. It follows the pointer while resizing and
// otherwise matches the committed size.
func (e *Entity) Size() overlay.Size {
	return e.machine.Size()
}

// setCommitted records a new authoritative overlay. When the committed size
// changed and no resize is in progress, the draft size follows it.
func (e *Entity) setCommitted(o overlay.Overlay) {
	sizeChanged := o.Size != e.committed.Size
	e.committed = o
	if sizeChanged {
		e.machine.Reset(o.Position, o.Size)
	}
}

// Contains reports whether p is inside the entity box.
func (e *Entity) Contains(p gesture.Point) bool {
	pos, size := e.Position(), e.Size()
	return p.X >= pos.X && p.X < pos.X+size.Width &&
		p.Y >= pos.Y && p.Y < pos.Y+size.Height
}

// OnHandle reports whether p is on the bottom-right resize handle.
func (e *Entity) OnHandle(p gesture.Point) bool {
	pos, size := e.Position(), e.Size()
	right := pos.X + size.Width + HandleOverhang
	bottom := pos.Y + size.Height + HandleOverhang
	return p.X >= right-HandleSize && p.X < right &&
		p.Y >= bottom-HandleSize && p.Y < bottom
}

// Press starts a gesture at p: a resize on the handle, else a drag.
func (e *Entity) Press(p gesture.Point) gesture.State {
	if e.OnHandle(p) {
		e.machine.BeginResize(p, e.committed.Position, e.Size())
	} else if e.Contains(p) {
		e.machine.BeginDrag(p, e.committed.Position, e.Size())
	}
	return e.machine.State()
}

// Move forwards pointer motion to the active gesture.
func (e *Entity) Move(p gesture.Point) bool { return e.machine.Move(p) }

// Release finalizes the active gesture.
func (e *Entity) Release(p gesture.Point) { e.machine.Release(p) }

// Cancel abandons the active gesture.
func (e *Entity) Cancel() { e.machine.Cancel() }
