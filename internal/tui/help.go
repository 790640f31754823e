// ABOUTME: Help screen rendered from markdown with glamour
// ABOUTME: Renders are cached per width since the text is static

package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const helpMarkdown = `# Overlay viewer

## Stream
- **tab** to the URL field, type a stream URL, **enter** to load it
- RTSP streams are transcoded to MJPEG by the media backend and drawn in the viewport
- **space** play or pause, **+**/**-** volume

## Overlays
- Drag an overlay with the mouse to move it
- Drag the ◢ handle at its bottom-right corner to resize it
- Select one in the list and press **d** or **delete** to remove it
- **/** filters the list by content, **esc** clears the filter

## Form
- **tab**/**shift+tab** move between fields
- **left**/**right** on Type switches between text and image
- **enter** adds the overlay at the default position

Press **?** or **esc** to close this screen, **ctrl+c** to quit.
`

// helpRenderer renders the help text with a per-width cache.
type helpRenderer struct {
	style string
	cache map[int]string
}

// newHelpRenderer fixes the glamour style up front. Auto style would query
// the terminal background from inside View and stall on terminals that
// never answer.
func newHelpRenderer(style string) *helpRenderer {
	return &helpRenderer{style: style, cache: make(map[int]string)}
}

// helpStyle maps the background lipgloss settled on to a glamour standard style.
func helpStyle(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

// Render returns the styled help at width, falling back to the raw
// markdown when glamour cannot render.
func (r *helpRenderer) Render(width int) string {
	if cached, ok := r.cache[width]; ok {
		return cached
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	rendered, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	rendered = strings.TrimRight(rendered, "\n ")
	r.cache[width] = rendered
	return rendered
}
