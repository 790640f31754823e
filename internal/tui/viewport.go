// ABOUTME: Viewport geometry and compositing: pixel/cell mapping and splicing boxes onto the video
// ABOUTME: Box lines are placed at a row and column over the background, clipped to the viewport

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/mauromedda/overlaycast/internal/gesture"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

const reset = "\x1b[0m"

// grid maps viewport pixels onto terminal cells.
type grid struct {
	cellW, cellH int
}

// cells converts a pixel length to whole cells, rounding to nearest.
func (g grid) cells(px float64, cell int) int {
	return int(math.Round(px / float64(cell)))
}

// box returns the cell rectangle an overlay occupies. Width and height are
// at least one cell so every overlay stays visible.
func (g grid) box(pos overlay.Position, size overlay.Size) (col, row, w, h int) {
	col = g.cells(pos.X, g.cellW)
	row = g.cells(pos.Y, g.cellH)
	w = max(1, g.cells(size.Width, g.cellW))
	h = max(1, g.cells(size.Height, g.cellH))
	return col, row, w, h
}

// point maps a viewport cell to the pixel at its center.
func (g grid) point(col, row int) gesture.Point {
	return gesture.Point{
		X: float64(col*g.cellW) + float64(g.cellW)/2,
		Y: float64(row*g.cellH) + float64(g.cellH)/2,
	}
}

// bounds is the pixel size of a cols×rows viewport.
func (g grid) bounds(cols, rows int) gesture.Bounds {
	return gesture.Bounds{Width: float64(cols * g.cellW), Height: float64(rows * g.cellH)}
}

// canvas pads or trims lines to exactly rows lines of width cells.
func canvas(lines []string, width, rows int) []string {
	out := make([]string, rows)
	for i := range rows {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fit(line, width)
	}
	return out
}

// fit pads or truncates s to exactly width visible cells.
func fit(s string, width int) string {
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Truncate(s, width, "")
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// placeAt splices box over bg with its top-left cell at (row, col). Parts
// of the box outside bg are clipped; bg keeps its cells around the box.
func placeAt(bg []string, box []string, row, col, width int) {
	for i, line := range box {
		r := row + i
		if r < 0 || r >= len(bg) {
			continue
		}
		c := col
		if c < 0 {
			line = ansi.TruncateLeft(line, -c, "")
			c = 0
		}
		if c >= width {
			continue
		}
		lw := ansi.StringWidth(line)
		if c+lw > width {
			line = ansi.Truncate(line, width-c, "")
			lw = width - c
		}

		base := fit(bg[r], width)
		left := ansi.Truncate(base, c, "")
		right := ansi.TruncateLeft(base, c+lw, "")
		bg[r] = left + reset + line + reset + right
	}
}

// centerLines centers each line within width and the block within rows.
func centerLines(lines []string, width, rows int) []string {
	out := make([]string, rows)
	top := max(0, (rows-len(lines))/2)
	for i := range out {
		out[i] = strings.Repeat(" ", width)
	}
	for i, line := range lines {
		r := top + i
		if r >= rows {
			break
		}
		line = ansi.Truncate(line, width, ellipsis)
		pad := (width - ansi.StringWidth(line)) / 2
		out[r] = fit(strings.Repeat(" ", pad)+line, width)
	}
	return out
}
