// ABOUTME: All custom tea.Msg types for the overlay viewer TUI
// ABOUTME: Backend results, store notifications, image loads, and stream frames

package tui

import (
	"image"

	"github.com/mauromedda/overlaycast/internal/optimistic"
	"github.com/mauromedda/overlaycast/internal/store"
	"github.com/mauromedda/overlaycast/internal/stream"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

// --- Backend results ---

// LoadedMsg reports the end of an overlay list fetch.
type LoadedMsg struct{ Err error }

// CreatedMsg reports the end of a create submitted from the panel.
type CreatedMsg struct {
	Overlay overlay.Overlay
	Err     error
}

// CommittedMsg reports the end of an optimistic commit.
type CommittedMsg struct {
	ID     optimistic.ID
	Result optimistic.Result
}

// StoreChangedMsg is sent when the store changes off the UI loop.
type StoreChangedMsg struct{ Change store.Change }

// --- Media ---

// ImageLoadedMsg carries a decoded image overlay, or why it failed.
type ImageLoadedMsg struct {
	URL   string
	Image image.Image
	Err   error
}

// streamOpenedMsg carries a connected MJPEG reader for generation gen.
type streamOpenedMsg struct {
	gen    int
	reader *stream.MJPEGReader
	err    error
}

// FrameMsg carries the next decoded stream frame.
type FrameMsg struct {
	gen   int
	Image image.Image
	Err   error
}
