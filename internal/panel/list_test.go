// ABOUTME: Tests for control panel list entries
// ABOUTME: Checks labels, truncation, rounding, and fuzzy filtering

package panel

import (
	"testing"

	"github.com/mauromedda/overlaycast/pkg/overlay"
)

func sample() []overlay.Overlay {
	return []overlay.Overlay{
		{ID: "1", Type: overlay.TypeText, Content: "Hello world", Size: overlay.Size{Width: 150.4, Height: 39.6}},
		{ID: "2", Type: overlay.TypeImage, Content: "https://example.com/logo.png", Size: overlay.Size{Width: 200, Height: 100}},
	}
}

func TestEntries(t *testing.T) {
	t.Parallel()

	got := Entries(sample(), "", 8)
	if len(got) != 2 {
		t.Fatalf("len = %d", len(got))
	}
	e := got[0]
	if e.ID != "1" || e.Label != "Text" {
		t.Errorf("entry = %+v", e)
	}
	if e.Short != "Hello w…" {
		t.Errorf("Short = %q", e.Short)
	}
	if e.Content != "Hello world" {
		t.Errorf("Content = %q", e.Content)
	}
	if e.Dimensions != "150 × 40 px" {
		t.Errorf("Dimensions = %q", e.Dimensions)
	}
	if got[1].Label != "Image" {
		t.Errorf("Label = %q", got[1].Label)
	}
}

func TestEntries_NoWidthKeepsContent(t *testing.T) {
	t.Parallel()

	got := Entries(sample(), "", 0)
	if got[1].Short != got[1].Content {
		t.Errorf("Short = %q", got[1].Short)
	}
}

func TestEntries_Filter(t *testing.T) {
	t.Parallel()

	got := Entries(sample(), "png", 40)
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("filter png = %+v", got)
	}
	if len(got[0].Matched) != 3 {
		t.Errorf("Matched = %v", got[0].Matched)
	}

	if got := Entries(sample(), "zzz", 40); len(got) != 0 {
		t.Errorf("filter zzz = %+v", got)
	}
}

func TestDimensions(t *testing.T) {
	t.Parallel()

	if got := Dimensions(overlay.Size{Width: 49.5, Height: 30.49}); got != "50 × 30 px" {
		t.Errorf("Dimensions = %q", got)
	}
}
