// ABOUTME: Dependency bundle for the overlay viewer TUI
// ABOUTME: The shell owns state; the form, image loader, and stream client are injected

package tui

import (
	"net/http"

	"github.com/mauromedda/overlaycast/internal/panel"
	"github.com/mauromedda/overlaycast/internal/shell"
)

// Deps bundles what the TUI needs. Nil Form and Images get defaults;
// zero cell sizes use 8×16.
type Deps struct {
	Shell  *shell.Shell
	Form   *panel.Form
	Images *ImageLoader
	// StreamClient fetches MJPEG frames. It must not set a total timeout.
	StreamClient *http.Client

	CellWidth  int
	CellHeight int
}

func (d Deps) withDefaults() Deps {
	if d.Form == nil {
		d.Form = panel.NewForm()
	}
	if d.Images == nil {
		d.Images = NewImageLoader(nil)
	}
	if d.StreamClient == nil {
		d.StreamClient = http.DefaultClient
	}
	if d.CellWidth <= 0 {
		d.CellWidth = 8
	}
	if d.CellHeight <= 0 {
		d.CellHeight = 16
	}
	return d
}
