// ABOUTME: Application shell: owns stream and playback state, the overlay store, and the error banner
// ABOUTME: Moves, resizes, and deletes are optimistic with refetch rollback; creates wait for the backend

package shell

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	pilog "github.com/mauromedda/overlaycast/internal/log"
	"github.com/mauromedda/overlaycast/internal/optimistic"
	"github.com/mauromedda/overlaycast/internal/store"
	"github.com/mauromedda/overlaycast/internal/stream"
	"github.com/mauromedda/overlaycast/pkg/overlay"
	"github.com/mauromedda/overlaycast/pkg/overlay/client"
)

// LoadFailedMessage is shown when the overlay list cannot be fetched.
const LoadFailedMessage = "Failed to load overlays. Make sure the backend server is running."

// DefaultVolume is the initial playback volume.
const DefaultVolume = 0.7

// API is the overlay backend as seen by the shell.
type API interface {
	List(ctx context.Context) ([]overlay.Overlay, error)
	Create(ctx context.Context, d overlay.Draft) (overlay.Overlay, error)
	Update(ctx context.Context, id string, p overlay.Patch) (overlay.Overlay, error)
	Delete(ctx context.Context, id string) (client.DeleteResult, error)
}

// Options configure a Shell.
type Options struct {
	// MediaBaseURL hosts the MJPEG transcoding endpoint for rtsp streams.
	MediaBaseURL string
	// SurfaceBackgroundErrors shows failed move/resize/delete commits in the
	// error banner. When false they are only logged.
	SurfaceBackgroundErrors bool
}

// Shell is the application state. It is safe for concurrent use: commits
// run off the UI loop.
type Shell struct {
	api   API
	store *store.Store
	opts  Options

	mu       sync.Mutex
	inputURL string
	source   stream.Source
	playing  bool
	volume   float64
	loading  int
	errMsg   string
}

// New creates a shell with an empty store, playing at the default volume.
func New(api API, opts Options) *Shell {
	return &Shell{
		api:     api,
		store:   store.New(),
		opts:    opts,
		playing: true,
		volume:  DefaultVolume,
	}
}

// Store returns the overlay store.
func (s *Shell) Store() *store.Store { return s.store }

// Overlays returns the current collection in insertion order.
func (s *Shell) Overlays() []overlay.Overlay { return s.store.Snapshot() }

// InputURL returns the stream URL being edited.
func (s *Shell) InputURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inputURL
}

// SetInputURL edits the stream URL without affecting the loaded stream.
func (s *Shell) SetInputURL(u string) {
	s.mu.Lock()
	s.inputURL = u
	s.mu.Unlock()
}

// SubmitURL loads the trimmed input URL and starts playback. Blank input
// is ignored and reported as false.
func (s *Shell) SubmitURL() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := strings.TrimSpace(s.inputURL)
	if u == "" {
		return false
	}
	s.source = stream.Classify(u, s.opts.MediaBaseURL)
	s.playing = true
	pilog.Info("shell: loaded %s stream %s", s.source.Mode, u)
	return true
}

// LoadedURL returns the committed stream URL, or "".
func (s *Shell) LoadedURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.Input
}

// Stream returns the classified loaded stream.
func (s *Shell) Stream() stream.Source {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Playing reports the playback flag.
func (s *Shell) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// TogglePlay flips playback and returns the new state.
func (s *Shell) TogglePlay() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = !s.playing
	return s.playing
}

// Volume returns the volume in [0, 1].
func (s *Shell) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// SetVolume stores v clamped to [0, 1].
func (s *Shell) SetVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.mu.Lock()
	s.volume = max(0, min(v, 1))
	s.mu.Unlock()
}

// StepVolume adjusts the volume by delta, snapping to tenths.
func (s *Shell) StepVolume(delta float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := math.Round((s.volume+delta)*10) / 10
	s.volume = max(0, min(v, 1))
	return s.volume
}

// Loading reports whether a list or create call is in flight.
func (s *Shell) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Error returns the banner message, or "". The last error wins.
func (s *Shell) Error() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ClearError dismisses the banner.
func (s *Shell) ClearError() { s.setError("") }

func (s *Shell) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}

func (s *Shell) beginLoading() func() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.loading--
		s.mu.Unlock()
	}
}

// Load replaces the store with the backend's list. On failure the store is
// left as is and the banner asks the user to check the backend.
func (s *Shell) Load(ctx context.Context) error {
	done := s.beginLoading()
	defer done()

	list, err := s.api.List(ctx)
	if err != nil {
		pilog.Error("shell: fetching overlays: %s", detail(err))
		s.setError(LoadFailedMessage)
		return err
	}
	s.store.Replace(list)
	s.setError("")
	pilog.Debug("shell: loaded %d overlays", len(list))
	return nil
}

// Reconcile refetches authoritative state after a failed commit.
func (s *Shell) Reconcile(ctx context.Context) error { return s.Load(ctx) }

// Create waits for the backend to store d and appends the result. On
// failure the banner shows the error and it is returned to the caller.
func (s *Shell) Create(ctx context.Context, d overlay.Draft) (overlay.Overlay, error) {
	done := s.beginLoading()
	defer done()

	created, err := s.api.Create(ctx, d)
	if err != nil {
		pilog.Error("shell: creating overlay: %s", detail(err))
		s.setError(err.Error())
		return overlay.Overlay{}, err
	}
	if err := s.store.Add(created); err != nil {
		pilog.Warn("shell: created overlay not added: %v", err)
	}
	s.setError("")
	return created, nil
}

// BeginMove applies a new position locally and returns the pending commit.
func (s *Shell) BeginMove(id string, pos overlay.Position) *optimistic.Txn {
	return optimistic.Begin(s.store, s, optimistic.Mutation{
		Target: optimistic.ID{Op: optimistic.OpMove, OverlayID: id},
		Apply:  func(st *store.Store) bool { return st.UpdatePosition(id, pos) },
		Commit: func(ctx context.Context) error {
			_, err := s.api.Update(ctx, id, overlay.PositionPatch(pos))
			return err
		},
	})
}

// BeginResize applies a new size locally and returns the pending commit.
func (s *Shell) BeginResize(id string, size overlay.Size) *optimistic.Txn {
	return optimistic.Begin(s.store, s, optimistic.Mutation{
		Target: optimistic.ID{Op: optimistic.OpResize, OverlayID: id},
		Apply:  func(st *store.Store) bool { return st.UpdateSize(id, size) },
		Commit: func(ctx context.Context) error {
			_, err := s.api.Update(ctx, id, overlay.SizePatch(size))
			return err
		},
	})
}

// BeginDelete removes an overlay locally and returns the pending commit.
func (s *Shell) BeginDelete(id string) *optimistic.Txn {
	return optimistic.Begin(s.store, s, optimistic.Mutation{
		Target: optimistic.ID{Op: optimistic.OpDelete, OverlayID: id},
		Apply:  func(st *store.Store) bool { return st.Remove(id) },
		Commit: func(ctx context.Context) error {
			_, err := s.api.Delete(ctx, id)
			return err
		},
	})
}

// Commit runs a pending transaction and applies the background error policy.
func (s *Shell) Commit(ctx context.Context, t *optimistic.Txn) optimistic.Result {
	res := t.Commit(ctx)
	if res.Err == nil || errors.Is(res.Err, optimistic.ErrNotApplied) {
		return res
	}
	// A failed refetch already set the load banner.
	if s.opts.SurfaceBackgroundErrors && res.ReconcileErr == nil {
		s.setError(res.Err.Error())
	}
	return res
}

// Move applies and commits a position change.
func (s *Shell) Move(ctx context.Context, id string, pos overlay.Position) optimistic.Result {
	return s.Commit(ctx, s.BeginMove(id, pos))
}

// Resize applies and commits a size change.
func (s *Shell) Resize(ctx context.Context, id string, size overlay.Size) optimistic.Result {
	return s.Commit(ctx, s.BeginResize(id, size))
}

// Delete applies and commits a removal.
func (s *Shell) Delete(ctx context.Context, id string) optimistic.Result {
	return s.Commit(ctx, s.BeginDelete(id))
}

func detail(err error) string {
	var d interface{ Detail() string }
	if errors.As(err, &d) {
		return d.Detail()
	}
	return err.Error()
}
