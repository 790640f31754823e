// ABOUTME: Overlay box rendering: centered wrapped text, contain-fit images, and the resize handle
// ABOUTME: Image failures render a visible "Image failed to load" box in place of the picture

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/mauromedda/overlaycast/internal/gesture"
	"github.com/mauromedda/overlaycast/internal/layer"
	"github.com/mauromedda/overlaycast/pkg/overlay"
	"github.com/mauromedda/overlaycast/pkg/termimage"
)

const (
	imageFailedText  = "Image failed to load"
	imageLoadingText = "Loading…"
	maxRenderCache   = 64
)

// renderCache keeps scaled image renders keyed by url and box size.
type renderCache struct {
	entries map[string][]string
	order   []string
}

func newRenderCache() *renderCache {
	return &renderCache{entries: make(map[string][]string)}
}

func (c *renderCache) get(key string) ([]string, bool) {
	lines, ok := c.entries[key]
	return lines, ok
}

func (c *renderCache) put(key string, lines []string) {
	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.order) >= maxRenderCache {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
	c.entries[key] = lines
	c.order = append(c.order, key)
}

// boxStyle picks the box colors for an entity.
func boxStyle(e *layer.Entity, selected bool) lipgloss.Style {
	switch {
	case e.State() != gesture.Idle:
		return activeBoxStyle
	case selected:
		return selectedBoxStyle
	default:
		return textBoxStyle
	}
}

// renderEntity draws an overlay box of w×h cells.
func (m Model) renderEntity(e *layer.Entity, w, h int, selected bool) []string {
	o := e.Overlay()
	style := boxStyle(e, selected)

	var lines []string
	switch o.Type {
	case overlay.TypeImage:
		lines = m.renderImage(o.Content, w, h, style)
	default:
		lines = renderText(o.Content, w, h, style)
	}
	return withHandle(lines, w)
}

// renderText centers wrapped text in the box and clips what does not fit.
func renderText(content string, w, h int, style lipgloss.Style) []string {
	wrapped := wrapText(content, w)
	if len(wrapped) > h {
		wrapped = wrapped[:h]
	}
	block := centerLines(wrapped, w, h)
	for i, line := range block {
		block[i] = style.Render(line)
	}
	return block
}

func (m Model) renderImage(url string, w, h int, style lipgloss.Style) []string {
	img, done, err := m.deps.Images.Cached(url)
	switch {
	case !done:
		return renderText(imageLoadingText, w, h, style.Faint(true))
	case err != nil || img == nil:
		return renderText(imageFailedText, w, h, brokenBoxStyle)
	}

	key := fmt.Sprintf("%s|%dx%d", url, w, h)
	if lines, ok := m.sh.renders.get(key); ok {
		return lines
	}
	lines := termimage.Render(img, w, h)
	m.sh.renders.put(key, lines)
	return lines
}

// withHandle replaces the bottom-right cell with the resize handle.
func withHandle(lines []string, w int) []string {
	if len(lines) == 0 || w <= 0 {
		return lines
	}
	out := append([]string(nil), lines...)
	last := len(out) - 1
	out[last] = ansi.Truncate(out[last], w-1, "") + reset + handleStyle.Render(handleGlyph)
	return out
}

// wrapText breaks s into lines of at most width cells, preferring word
// boundaries and splitting words wider than a line by grapheme.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var cur strings.Builder
		curW := 0
		flush := func() {
			lines = append(lines, cur.String())
			cur.Reset()
			curW = 0
		}
		for _, word := range strings.Fields(para) {
			ww := uniseg.StringWidth(word)
			if curW > 0 && curW+1+ww > width {
				flush()
			}
			if ww > width {
				for _, piece := range splitGraphemes(word, width) {
					if curW > 0 {
						flush()
					}
					cur.WriteString(piece)
					curW = uniseg.StringWidth(piece)
				}
				continue
			}
			if curW > 0 {
				cur.WriteByte(' ')
				curW++
			}
			cur.WriteString(word)
			curW += ww
		}
		flush()
	}
	return lines
}

// splitGraphemes cuts s into chunks of at most width cells without
// breaking grapheme clusters.
func splitGraphemes(s string, width int) []string {
	var chunks []string
	var cur strings.Builder
	curW := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := g.Width()
		if curW > 0 && curW+cw > width {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curW = 0
		}
		cur.WriteString(g.Str())
		curW += cw
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
