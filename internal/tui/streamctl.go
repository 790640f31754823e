// ABOUTME: Stream lifecycle for the viewport: open the MJPEG feed, pull frames, close on pause
// ABOUTME: A generation counter drops frames from streams that were replaced or stopped

package tui

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	pilog "github.com/mauromedda/overlaycast/internal/log"
	"github.com/mauromedda/overlaycast/internal/stream"
)

// errStreamEnded marks a feed that closed cleanly.
var errStreamEnded = errors.New("stream ended")

// submitURL loads the input URL and restarts playback.
func (m Model) submitURL() (Model, tea.Cmd) {
	if !m.deps.Shell.SubmitURL() {
		return m, nil
	}
	src := m.deps.Shell.Stream()
	pilog.Info("tui: loading %s stream %s", src.Mode, src.Input)
	m.focus = focusNone
	return m, m.restartStream()
}

func (m Model) togglePlay() (Model, tea.Cmd) {
	if m.deps.Shell.TogglePlay() {
		return m, m.restartStream()
	}
	m.closeStream()
	return m, nil
}

// restartStream drops the current feed and opens the loaded source when it
// is playing and renders frames.
func (m Model) restartStream() tea.Cmd {
	m.closeStream()
	src := m.deps.Shell.Stream()
	if !src.Frames() || !m.deps.Shell.Playing() {
		return nil
	}
	gen, ctx, hc, url := m.sh.gen, m.sh.ctx, m.deps.StreamClient, src.URL
	return func() tea.Msg {
		r, err := stream.Open(ctx, hc, url)
		return streamOpenedMsg{gen: gen, reader: r, err: err}
	}
}

// closeStream invalidates in-flight results and releases the feed.
func (m Model) closeStream() {
	m.sh.gen++
	if m.sh.reader != nil {
		if err := m.sh.reader.Close(); err != nil {
			pilog.Debug("tui: closing stream: %v", err)
		}
		m.sh.reader = nil
	}
	m.sh.frame = nil
	m.sh.frameLines = nil
	m.sh.streamErr = nil
}

func (m Model) streamOpened(msg streamOpenedMsg) (Model, tea.Cmd) {
	if msg.gen != m.sh.gen {
		if msg.reader != nil {
			msg.reader.Close()
		}
		return m, nil
	}
	if msg.err != nil {
		pilog.Warn("tui: opening stream: %v", msg.err)
		m.sh.streamErr = msg.err
		return m, nil
	}
	m.sh.reader = msg.reader
	return m, nextFrameCmd(msg.gen, msg.reader)
}

func (m Model) frameReceived(msg FrameMsg) (Model, tea.Cmd) {
	if msg.gen != m.sh.gen || m.sh.reader == nil {
		return m, nil
	}
	if msg.Err != nil {
		err := msg.Err
		if errors.Is(err, io.EOF) {
			err = errStreamEnded
		}
		pilog.Warn("tui: stream after %d frames: %v", m.sh.reader.Frames(), err)
		m.sh.reader.Close()
		m.sh.reader = nil
		m.sh.streamErr = err
		return m, nil
	}
	m.sh.frame = msg.Image
	m.sh.frameLines = nil
	return m, nextFrameCmd(msg.gen, m.sh.reader)
}

func nextFrameCmd(gen int, r *stream.MJPEGReader) tea.Cmd {
	return func() tea.Msg {
		img, err := r.Next()
		return FrameMsg{gen: gen, Image: img, Err: err}
	}
}
