// ABOUTME: ANSI half-block renderer that contain-fits an image into a cell box
// ABOUTME: Each cell holds two vertical pixels; transparent padding renders as blank cells

package termimage

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Fit returns the largest w×h with the source aspect ratio that fits inside
// maxW×maxH. Non-empty inputs never yield a zero dimension.
func Fit(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	w, h := maxW, srcH*maxW/srcW
	if h > maxH {
		w, h = srcW*maxH/srcH, maxH
	}
	return max(w, 1), max(h, 1)
}

// Render draws img into a box of cols×rows terminal cells, preserving aspect
// ratio and centering it. It always returns rows lines of cols cells.
func Render(img image.Image, cols, rows int) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	canvas := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	b := img.Bounds()
	if w, h := Fit(b.Dx(), b.Dy(), cols, rows*2); w > 0 {
		x0, y0 := (cols-w)/2, (rows*2-h)/2
		draw.CatmullRom.Scale(canvas, image.Rect(x0, y0, x0+w, y0+h), img, b, draw.Over, nil)
	}

	lines := make([]string, 0, rows)
	for y := 0; y < rows*2; y += 2 {
		var sb strings.Builder
		for x := range cols {
			writeCell(&sb, canvas, x, y)
		}
		sb.WriteString("\x1b[0m")
		lines = append(lines, sb.String())
	}
	return lines
}

// writeCell emits one cell: ▄ with top as background and bottom as
// foreground, ▀ when only the top pixel is visible, blank when neither is.
func writeCell(sb *strings.Builder, img *image.RGBA, x, y int) {
	top, bot := img.RGBAAt(x, y), img.RGBAAt(x, y+1)
	switch {
	case top.A == 0 && bot.A == 0:
		sb.WriteString("\x1b[0m ")
	case bot.A == 0:
		fmt.Fprintf(sb, "\x1b[49m\x1b[38;2;%d;%d;%dm▀", top.R, top.G, top.B)
	case top.A == 0:
		fmt.Fprintf(sb, "\x1b[49m\x1b[38;2;%d;%d;%dm▄", bot.R, bot.G, bot.B)
	default:
		fmt.Fprintf(sb, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
			top.R, top.G, top.B, bot.R, bot.G, bot.B)
	}
}
