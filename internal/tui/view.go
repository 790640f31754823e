// ABOUTME: Screen layout and View: header, framed viewport with overlays, controls, side panel
// ABOUTME: The layout is recomputed from the window size so mouse hits match what was drawn

package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/overlaycast/internal/stream"
	"github.com/mauromedda/overlaycast/pkg/termimage"
)

const (
	appTitle = "RTSP Livestream Overlay"

	headerRows = 3
	panelWidth = 38
	minWidth   = 60
	minHeight  = 14

	volumeCells = 10
	playCells   = 12
)

// Viewport placeholder text.
const (
	emptyStreamText   = "Enter a stream URL above to start"
	emptyStreamHint   = "Supports: RTSP, Wowza Embed, HLS (.m3u8)"
	pausedText        = "Stream paused - press space to play"
	connectFailedText = "Unable to connect to stream"
	connectFailedHint = "Check if the RTSP URL is valid and the backend is running"
	connectingText    = "Connecting to stream…"
)

// layout is the screen geometry in cells.
type layout struct {
	// vx, vy is the top-left cell of the viewport inside its frame.
	vx, vy int
	vw, vh int
	// controlsRow is the playback controls line.
	controlsRow int
	// px, py is the first cell of the panel content.
	px, py int
	pw, ph int
}

func (m Model) tooSmall() bool {
	return m.width < minWidth || m.height < minHeight
}

func (m Model) layout() layout {
	pw := min(panelWidth, m.width/3)
	left := m.width - pw
	l := layout{
		vx: 1,
		vy: headerRows + 1,
		vw: max(1, left-2),
		vh: max(1, m.height-headerRows-3),
		px: left + 2,
		py: headerRows,
		pw: max(1, pw-2),
		ph: max(1, m.height-headerRows),
	}
	l.controlsRow = l.vy + l.vh + 1
	return l
}

// inViewport reports whether a screen cell is inside the viewport.
func (l layout) inViewport(x, y int) bool {
	return x >= l.vx && x < l.vx+l.vw && y >= l.vy && y < l.vy+l.vh
}

// View renders the whole screen.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.tooSmall() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render("Terminal too small"))
	}
	if m.showHelp {
		return m.sh.help.Render(max(20, m.width-4))
	}

	l := m.layout()
	header := m.renderHeader()

	frame := frameStyle
	if m.sh.layer.Active() != nil {
		frame = frameFocusStyle
	}
	video := frame.Render(strings.Join(m.renderViewport(l), "\n"))
	left := lipgloss.JoinVertical(lipgloss.Left, video, m.renderControls(l.vw+2))

	pv := m.renderPanel(l.pw, l.ph)
	right := panelStyle.Height(l.ph).MaxHeight(l.ph).Render(strings.Join(canvas(pv.lines, l.pw, min(len(pv.lines), l.ph)), "\n"))

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render(appTitle)
	if loaded := m.deps.Shell.LoadedURL(); loaded != "" {
		title += "  " + subtitleStyle.Render(string(m.deps.Shell.Stream().Mode)+" "+loaded)
	}

	prompt := labelStyle.Render("Stream URL ")
	load := buttonStyle.Render("Load")
	inputW := max(1, m.width-urlInputX-lipgloss.Width(load)-1)
	input := m.renderInput(m.deps.Shell.InputURL(), "rtsp://host/stream", inputW, focusURL)
	urlLine := prompt + input + " " + load

	banner := ""
	if msg := m.deps.Shell.Error(); msg != "" {
		banner = errorStyle.Render(fit(msg, m.width-2))
	} else if m.deps.Shell.Loading() {
		banner = mutedStyle.Render("Loading…")
	}
	return strings.Join([]string{fit(title, m.width), fit(urlLine, m.width), fit(banner, m.width)}, "\n")
}

// urlInputX is where the URL input starts on its header line.
const urlInputX = len("Stream URL ")

// renderViewport draws the stream or a placeholder and composites overlays.
func (m Model) renderViewport(l layout) []string {
	bg := canvas(m.background(l.vw, l.vh), l.vw, l.vh)
	for _, e := range m.sh.layer.Entities() {
		col, row, w, h := m.grid.box(e.Position(), e.Size())
		placeAt(bg, m.renderEntity(e, w, h, e.ID() == m.selected), row, col, l.vw)
	}
	return bg
}

func (m Model) background(w, h int) []string {
	s := m.deps.Shell
	src := s.Stream()
	switch {
	case src.Empty():
		return m.placeholder(w, h, emptyStreamText, emptyStreamHint)
	case !s.Playing():
		return m.placeholder(w, h, pausedText)
	case !src.Frames():
		return m.placeholder(w, h, modeLabel(src.Mode)+" stream", src.URL, "Only RTSP streams render frames in the terminal")
	case m.sh.streamErr != nil:
		return m.placeholder(w, h, connectFailedText, connectFailedHint)
	case m.sh.frame == nil:
		return m.placeholder(w, h, connectingText)
	}
	if m.sh.frameLines == nil {
		m.sh.frameLines = termimage.Render(m.sh.frame, w, h)
	}
	return m.sh.frameLines
}

func (m Model) placeholder(w, h int, lines ...string) []string {
	block := centerLines(lines, w, h)
	for i, line := range block {
		block[i] = placeholderStyle.Render(line)
	}
	return block
}

func modeLabel(mode stream.Mode) string {
	switch mode {
	case stream.ModeWowzaEmbed:
		return "Wowza embed"
	case stream.ModeEmbed:
		return "Embedded"
	case stream.ModeHLS:
		return "HLS"
	case stream.ModeRTSP:
		return "RTSP"
	}
	return "Unknown"
}

// renderControls draws the play toggle and the volume bar.
func (m Model) renderControls(width int) string {
	s := m.deps.Shell
	play := "▶ Play"
	if s.Playing() {
		play = "⏸ Pause"
	}
	vol := s.Volume()
	filled := int(math.Round(vol * volumeCells))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", volumeCells-filled)
	line := fit(buttonStyle.Render(play), playCells) + "Vol " + bar + fmt.Sprintf(" %3d%%", int(math.Round(vol*100))) + "   " + mutedStyle.Render("? help")
	return fit(line, width)
}

// volumeBarX is the first volume bar cell on the controls line.
const volumeBarX = playCells + len("Vol ")
