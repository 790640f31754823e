// ABOUTME: Tests for the overlay layer and entities
// ABOUTME: Covers keyed sync, bounds propagation, hit testing, and size resync

package layer

import (
	"testing"

	"github.com/mauromedda/overlaycast/internal/gesture"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

func box(id string, x, y, w, h float64) overlay.Overlay {
	return overlay.Overlay{
		ID:       id,
		Type:     overlay.TypeText,
		Content:  id,
		Position: overlay.Position{X: x, Y: y},
		Size:     overlay.Size{Width: w, Height: h},
	}
}

func TestSync_KeyedAndOrdered(t *testing.T) {
	t.Parallel()

	l := New(Callbacks{})
	l.Sync([]overlay.Overlay{box("a", 0, 0, 100, 50), box("b", 10, 10, 100, 50)})
	a, _ := l.Entity("a")

	l.Sync([]overlay.Overlay{box("b", 10, 10, 100, 50), box("a", 0, 0, 100, 50), box("c", 0, 0, 60, 30)})
	if l.Len() != 3 {
		t.Fatalf("Len = %d", l.Len())
	}
	got := l.Entities()
	if got[0].ID() != "b" || got[1].ID() != "a" || got[2].ID() != "c" {
		t.Errorf("order = %s %s %s", got[0].ID(), got[1].ID(), got[2].ID())
	}
	if again, _ := l.Entity("a"); again != a {
		t.Error("entity for a was recreated instead of reused")
	}

	l.Sync([]overlay.Overlay{box("c", 0, 0, 60, 30)})
	if _, ok := l.Entity("a"); ok || l.Len() != 1 {
		t.Error("removed overlays still present")
	}
}

func TestResizeUsesCurrentBounds(t *testing.T) {
	t.Parallel()

	var final overlay.Size
	l := New(Callbacks{SizeChanged: func(_ string, s overlay.Size) { final = s }})
	l.Sync([]overlay.Overlay{box("a", 0, 0, 100, 50)})
	l.SetBounds(gesture.Bounds{Width: 320, Height: 180})

	// Handle sits at the bottom-right corner: (100,50) plus overhang.
	e, state := l.Press(gesture.Point{X: 100, Y: 50})
	if e == nil || state != gesture.Resizing {
		t.Fatalf("press on handle = %v %v, want resizing", e, state)
	}
	l.Move(gesture.Point{X: 5000, Y: 5000})
	l.Release(gesture.Point{X: 5000, Y: 5000})

	if final != (overlay.Size{Width: 320, Height: 180}) {
		t.Errorf("final = %+v, want clamped to bounds 320x180", final)
	}

	// A later viewport resize changes the clamp for the next gesture.
	l.SetBounds(gesture.Bounds{Width: 1000, Height: 600})
	l.Press(gesture.Point{X: 320, Y: 180})
	l.Release(gesture.Point{X: 5000, Y: 5000})
	if final != (overlay.Size{Width: 1000, Height: 600}) {
		t.Errorf("final = %+v, want 1000x600", final)
	}
}

func TestDragReportsPositionAndCaptures(t *testing.T) {
	t.Parallel()

	var moved overlay.Position
	var captured, released []gesture.State
	l := New(Callbacks{
		PositionChanged: func(_ string, p overlay.Position) { moved = p },
		Capture:         func(_ string, s gesture.State) { captured = append(captured, s) },
		Release:         func(_ string, s gesture.State) { released = append(released, s) },
	})
	l.SetBounds(gesture.Bounds{Width: 800, Height: 450})
	l.Sync([]overlay.Overlay{box("a", 50, 50, 150, 40)})

	_, state := l.Press(gesture.Point{X: 60, Y: 60})
	if state != gesture.Dragging {
		t.Fatalf("state = %v, want dragging", state)
	}
	if l.Active() == nil {
		t.Fatal("no active entity after press")
	}
	l.Move(gesture.Point{X: 160, Y: 110})
	e, _ := l.Entity("a")
	if e.Position() != (overlay.Position{X: 150, Y: 100}) {
		t.Errorf("live position = %+v", e.Position())
	}
	l.Release(gesture.Point{X: 160, Y: 110})

	if moved != (overlay.Position{X: 150, Y: 100}) {
		t.Errorf("reported = %+v", moved)
	}
	if e.Position() != moved {
		t.Errorf("entity snapped back to %+v after release", e.Position())
	}
	if l.Active() != nil {
		t.Error("entity still active after release")
	}
	if len(captured) != 1 || len(released) != 1 {
		t.Errorf("capture/release = %v/%v", captured, released)
	}
}

func TestHitTestTopmost(t *testing.T) {
	t.Parallel()

	l := New(Callbacks{})
	l.Sync([]overlay.Overlay{box("under", 0, 0, 200, 200), box("over", 50, 50, 100, 100)})

	e, onHandle := l.HitTest(gesture.Point{X: 60, Y: 60})
	if e == nil || e.ID() != "over" || onHandle {
		t.Errorf("HitTest = %v %v, want over/body", e, onHandle)
	}
	e, _ = l.HitTest(gesture.Point{X: 10, Y: 10})
	if e == nil || e.ID() != "under" {
		t.Errorf("HitTest = %v, want under", e)
	}
	if e, _ := l.HitTest(gesture.Point{X: 500, Y: 500}); e != nil {
		t.Errorf("HitTest outside = %v", e.ID())
	}
	e, onHandle = l.HitTest(gesture.Point{X: 152, Y: 152})
	if e == nil || e.ID() != "over" || !onHandle {
		t.Errorf("handle overhang not hit: %v %v", e, onHandle)
	}
}

func TestDraftSizeResyncsOnExternalChange(t *testing.T) {
	t.Parallel()

	l := New(Callbacks{})
	l.Sync([]overlay.Overlay{box("a", 0, 0, 100, 50)})
	e, _ := l.Entity("a")

	l.Sync([]overlay.Overlay{box("a", 0, 0, 180, 90)})
	if e.Size() != (overlay.Size{Width: 180, Height: 90}) {
		t.Errorf("draft = %+v, want resynced 180x90", e.Size())
	}

	// Mid-resize updates do not clobber the draft.
	e.Press(gesture.Point{X: 180, Y: 90})
	e.Move(gesture.Point{X: 200, Y: 100})
	l.Sync([]overlay.Overlay{box("a", 0, 0, 60, 30)})
	if e.Size() != (overlay.Size{Width: 200, Height: 100}) {
		t.Errorf("draft during resize = %+v, want 200x100", e.Size())
	}
}

func TestSyncCancelsGestureOfRemovedEntity(t *testing.T) {
	t.Parallel()

	reported := false
	l := New(Callbacks{PositionChanged: func(string, overlay.Position) { reported = true }})
	l.Sync([]overlay.Overlay{box("a", 0, 0, 100, 50)})
	l.Press(gesture.Point{X: 10, Y: 10})

	l.Sync(nil)
	if l.Active() != nil {
		t.Error("active entity survived removal")
	}
	l.Release(gesture.Point{X: 90, Y: 90})
	if reported {
		t.Error("removed entity reported a position")
	}
}
