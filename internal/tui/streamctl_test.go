// ABOUTME: Tests for the viewport stream lifecycle against an httptest MJPEG backend
// ABOUTME: Covers first frame, end of stream, failed connect, and stale generations

package tui

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/overlaycast/internal/shell"
)

func jpegFrame(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	for y := range 9 {
		for x := range 16 {
			img.Set(x, y, color.RGBA{G: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// mediaServer serves n frames for any rtsp URL, or 502 when n is negative.
func mediaServer(t *testing.T, n int) *httptest.Server {
	t.Helper()
	frame := jpegFrame(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stream/mjpeg" || n < 0 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")
		for range n {
			w.Write([]byte("--frame\r\nContent-Type: image/jpeg\r\n\r\n"))
			w.Write(frame)
			w.Write([]byte("\r\n"))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func streamModel(t *testing.T, srv *httptest.Server) Model {
	t.Helper()
	s := shell.New(&fakeAPI{}, shell.Options{MediaBaseURL: srv.URL})
	m := NewModel(Deps{Shell: s, StreamClient: srv.Client()})
	t.Cleanup(m.sh.cancel)
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func TestStreamLifecycle_EndOfStream(t *testing.T) {
	t.Parallel()

	m := streamModel(t, mediaServer(t, 2))
	m.deps.Shell.SetInputURL("rtsp://cam/1")

	next, cmd := m.submitURL()
	m = next
	if cmd == nil {
		t.Fatal("rtsp stream did not open")
	}
	if !strings.Contains(m.View(), connectingText) {
		t.Error("connecting placeholder missing")
	}

	msg := cmd()
	opened, ok := msg.(streamOpenedMsg)
	if !ok || opened.err != nil {
		t.Fatalf("open msg = %#v", msg)
	}
	updated, frameCmd := m.Update(opened)
	m = updated.(Model)

	first := frameCmd()
	if fm, ok := first.(FrameMsg); !ok || fm.Err != nil || fm.Image == nil {
		t.Fatalf("first frame = %#v", first)
	}
	m = send(t, m, first)

	if m.sh.reader != nil || m.sh.streamErr == nil {
		t.Fatal("stream still open after the backend closed it")
	}
	if !strings.Contains(m.View(), connectFailedText) {
		t.Error("ended stream not reported")
	}
}

func TestStreamLifecycle_ShowsFrame(t *testing.T) {
	t.Parallel()

	m := streamModel(t, mediaServer(t, 3))
	m.deps.Shell.SetInputURL("rtsp://cam/1")
	m, cmd := m.submitURL()
	updated, frameCmd := m.Update(cmd())
	m = updated.(Model)
	updated, _ = m.Update(frameCmd())
	m = updated.(Model)

	if m.sh.frame == nil {
		t.Fatal("no frame after first FrameMsg")
	}
	view := m.View()
	if strings.Contains(view, connectingText) || strings.Contains(view, emptyStreamText) {
		t.Error("placeholder shown over a live frame")
	}
	m.closeStream()
}

func TestStreamLifecycle_ConnectFailure(t *testing.T) {
	t.Parallel()

	m := streamModel(t, mediaServer(t, -1))
	m.deps.Shell.SetInputURL("rtsp://cam/1")
	m, cmd := m.submitURL()
	m = send(t, m, cmd())

	view := m.View()
	if !strings.Contains(view, connectFailedText) || !strings.Contains(view, connectFailedHint) {
		t.Error("connect failure not reported")
	}
}

func TestStreamLifecycle_PauseDropsFrames(t *testing.T) {
	t.Parallel()

	m := streamModel(t, mediaServer(t, 3))
	m.deps.Shell.SetInputURL("rtsp://cam/1")
	m, cmd := m.submitURL()
	pending := cmd()

	m, _ = m.togglePlay()
	if m.deps.Shell.Playing() {
		t.Fatal("togglePlay did not pause")
	}
	updated, next := m.Update(pending)
	m = updated.(Model)
	if next != nil || m.sh.reader != nil {
		t.Error("stale stream was adopted after pause")
	}
	if !strings.Contains(m.View(), pausedText) {
		t.Error("paused placeholder missing")
	}
}
