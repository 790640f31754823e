// ABOUTME: Overlay layer: lays out entities over the video viewport keyed by overlay id
// ABOUTME: Tracks viewport bounds so every entity clamps against the current size

package layer

import (
	"github.com/mauromedda/overlaycast/internal/gesture"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// Callbacks receive entity events. Any may be nil.
type Callbacks struct {
	// PositionChanged receives a finalized drag.
	PositionChanged func(id string, pos overlay.Position)
	// SizeChanged receives a finalized resize.
	SizeChanged func(id string, size overlay.Size)
	// Capture runs when an entity starts a gesture.
	Capture func(id string, s gesture.State)
	// Release runs when an entity's gesture ends.
	Release func(id string, s gesture.State)
}

// Layer holds the entities drawn over the viewport.
type Layer struct {
	bounds   gesture.Bounds
	order    []string
	entities map[string]*Entity
	cb       Callbacks

	// active is the entity that captured the pointer, if any.
	active *Entity
}

// New creates an empty layer with unknown bounds.
func New(cb Callbacks) *Layer {
	l := &Layer{entities: make(map[string]*Entity)}
	userCapture, userRelease := cb.Capture, cb.Release
	cb.Capture = func(id string, s gesture.State) {
		l.active = l.entities[id]
		if userCapture != nil {
			userCapture(id, s)
		}
	}
	cb.Release = func(id string, s gesture.State) {
		l.active = nil
		if userRelease != nil {
			userRelease(id, s)
		}
	}
	l.cb = cb
	return l
}

// Bounds returns the last measured viewport bounds (zero when unknown).
func (l *Layer) Bounds() gesture.Bounds { return l.bounds }

// SetBounds records a new viewport measurement.
func (l *Layer) SetBounds(b gesture.Bounds) { l.bounds = b }

// Sync makes the entity set match overlays, in their order. Existing
// entities keep their gesture state.
func (l *Layer) Sync(overlays []overlay.Overlay) {
	next := make(map[string]*Entity, len(overlays))
	order := make([]string, 0, len(overlays))
	for _, o := range overlays {
		if _, dup := next[o.ID]; dup {
			continue
		}
		e, ok := l.entities[o.ID]
		if ok {
			e.setCommitted(o)
		} else {
			e = newEntity(o, l.Bounds, l.cb)
		}
		next[o.ID] = e
		order = append(order, o.ID)
	}

	if l.active != nil {
		if _, kept := next[l.active.ID()]; !kept {
			l.active.Cancel()
			l.active = nil
		}
	}
	l.entities = next
	l.order = order
}

// Entities returns entities in render order.
func (l *Layer) Entities() []*Entity {
	out := make([]*Entity, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.entities[id])
	}
	return out
}

// Entity returns the entity for id.
func (l *Layer) Entity(id string) (*Entity, bool) {
	e, ok := l.entities[id]
	return e, ok
}

// Len returns the number of entities.
func (l *Layer) Len() int { return len(l.order) }

// HitTest returns the topmost entity under p and whether p is on its
// resize handle. Later entities are drawn above earlier ones.
func (l *Layer) HitTest(p gesture.Point) (*Entity, bool) {
	for i := len(l.order) - 1; i >= 0; i-- {
		e := l.entities[l.order[i]]
		if e.OnHandle(p) {
			return e, true
		}
		if e.Contains(p) {
			return e, false
		}
	}
	return nil, false
}

// Active returns the entity holding the pointer, if any.
func (l *Layer) Active() *Entity { return l.active }

// Press routes a pointer press to the topmost entity under p.
func (l *Layer) Press(p gesture.Point) (*Entity, gesture.State) {
	if l.active != nil {
		return l.active, l.active.State()
	}
	e, _ := l.HitTest(p)
	if e == nil {
		return nil, gesture.Idle
	}
	return e, e.Press(p)
}

// Move routes pointer motion to the captured entity.
func (l *Layer) Move(p gesture.Point) bool {
	if l.active == nil {
		return false
	}
	return l.active.Move(p)
}

// Release ends the captured entity's gesture.
func (l *Layer) Release(p gesture.Point) {
	if l.active == nil {
		return
	}
	l.active.Release(p)
}
