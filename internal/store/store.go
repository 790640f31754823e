// ABOUTME: Single-owner overlay collection with explicit mutations and change notification
// ABOUTME: Preserves insertion order, enforces unique ids, and counts authoritative resets

package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/mauromedda/overlaycast/internal/eventbus"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// ChangeKind identifies which mutation produced a Change.
type ChangeKind int

const (
	// ChangeReset means the whole collection was replaced by an authoritative list.
	ChangeReset ChangeKind = iota
	// ChangeAdded means an overlay was appended.
	ChangeAdded
	// ChangeMoved means an overlay's position changed.
	ChangeMoved
	// ChangeResized means an overlay's size changed.
	ChangeResized
	// ChangeRemoved means an overlay was removed.
	ChangeRemoved
)

// String returns a lowercase label for logs.
func (k ChangeKind) String() string {
	switch k {
	case ChangeReset:
		return "reset"
	case ChangeAdded:
		return "added"
	case ChangeMoved:
		return "moved"
	case ChangeResized:
		return "resized"
	case ChangeRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Change describes one applied mutation. ID is empty for resets.
type Change struct {
	Kind     ChangeKind
	ID       string
	Revision uint64
}

// Handler receives change notifications.
type Handler func(Change)

// Store owns the overlay collection. All methods are safe for concurrent use;
// handlers run synchronously after the lock is released.
type Store struct {
	mu       sync.RWMutex
	items    []overlay.Overlay
	revision uint64

	changes *eventbus.Bus[Change]
}

// New creates an empty store.
func New() *Store {
	return &Store{changes: eventbus.New[Change]()}
}

// Subscribe registers a handler and returns an unsubscribe function.
func (s *Store) Subscribe(h Handler) func() {
	return s.changes.Subscribe(eventbus.Handler[Change](h))
}

func (s *Store) publish(c Change) { s.changes.Publish(c) }

// Replace swaps in an authoritative list and bumps the revision.
// Later duplicates of an id are dropped so the unique-id invariant holds.
func (s *Store) Replace(list []overlay.Overlay) {
	seen := make(map[string]bool, len(list))
	items := make([]overlay.Overlay, 0, len(list))
	for _, o := range list {
		if seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		items = append(items, o)
	}

	s.mu.Lock()
	s.items = items
	s.revision++
	rev := s.revision
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeReset, Revision: rev})
}

// Add appends an overlay. It fails if the id is empty or already present.
func (s *Store) Add(o overlay.Overlay) error {
	if o.ID == "" {
		return fmt.Errorf("overlay has no id")
	}

	s.mu.Lock()
	if s.indexLocked(o.ID) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("overlay %q already exists", o.ID)
	}
	s.items = append(s.items, o)
	rev := s.revision
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeAdded, ID: o.ID, Revision: rev})
	return nil
}

// UpdatePosition moves an overlay. It reports whether the id was found.
func (s *Store) UpdatePosition(id string, pos overlay.Position) bool {
	return s.mutate(id, ChangeMoved, func(o *overlay.Overlay) { o.Position = pos })
}

// UpdateSize resizes an overlay. It reports whether the id was found.
func (s *Store) UpdateSize(id string, size overlay.Size) bool {
	return s.mutate(id, ChangeResized, func(o *overlay.Overlay) { o.Size = size })
}

func (s *Store) mutate(id string, kind ChangeKind, fn func(*overlay.Overlay)) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	fn(&s.items[i])
	rev := s.revision
	s.mu.Unlock()

	s.publish(Change{Kind: kind, ID: id, Revision: rev})
	return true
}

// Remove deletes an overlay. It reports whether the id was found.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	rev := s.revision
	s.mu.Unlock()

	s.publish(Change{Kind: ChangeRemoved, ID: id, Revision: rev})
	return true
}

// Get returns the overlay with the given id.
func (s *Store) Get(id string) (overlay.Overlay, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return overlay.Overlay{}, false
	}
	return s.items[i], true
}

// Snapshot returns a copy of the collection in insertion order.
func (s *Store) Snapshot() []overlay.Overlay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len returns the number of overlays.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Revision counts Replace calls. Local mutations do not change it.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(o overlay.Overlay) bool { return o.ID == id })
}
