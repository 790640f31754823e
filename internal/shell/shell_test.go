// ABOUTME: Tests for the application shell against a scripted fake backend
// ABOUTME: Covers load banner, non-optimistic create, optimistic rollback, and the error policy

package shell

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mauromedda/overlaycast/internal/optimistic"
	"github.com/mauromedda/overlaycast/internal/stream"
	"github.com/mauromedda/overlaycast/pkg/overlay"
	"github.com/mauromedda/overlaycast/pkg/overlay/client"
)

// fakeAPI holds the authoritative list and can be told to fail calls.
type fakeAPI struct {
	mu        sync.Mutex
	overlays  []overlay.Overlay
	failList  bool
	failWrite error
	calls     []string

	// gate, when set, blocks Update until closed.
	gate chan struct{}
	// onCall runs at the start of every call.
	onCall func(op string)
}

func (f *fakeAPI) record(op string) {
	f.mu.Lock()
	f.calls = append(f.calls, op)
	cb := f.onCall
	f.mu.Unlock()
	if cb != nil {
		cb(op)
	}
}

func (f *fakeAPI) List(context.Context) ([]overlay.Overlay, error) {
	f.record("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, &client.FetchError{StatusError: client.StatusError{Status: 500, Message: "Failed to fetch overlays"}}
	}
	return append([]overlay.Overlay(nil), f.overlays...), nil
}

func (f *fakeAPI) Create(_ context.Context, d overlay.Draft) (overlay.Overlay, error) {
	f.record("create")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return overlay.Overlay{}, f.failWrite
	}
	o := overlay.Overlay{ID: "abc", Type: d.Type, Content: d.Content, Position: d.Position, Size: d.Size}
	f.overlays = append(f.overlays, o)
	return o, nil
}

func (f *fakeAPI) Update(_ context.Context, id string, p overlay.Patch) (overlay.Overlay, error) {
	f.record("update")
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return overlay.Overlay{}, f.failWrite
	}
	for i := range f.overlays {
		if f.overlays[i].ID == id {
			f.overlays[i] = p.Apply(f.overlays[i])
			return f.overlays[i], nil
		}
	}
	return overlay.Overlay{}, &client.UpdateError{StatusError: client.StatusError{Status: 404, Message: "Overlay not found"}}
}

func (f *fakeAPI) Delete(_ context.Context, id string) (client.DeleteResult, error) {
	f.record("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrite != nil {
		return client.DeleteResult{}, f.failWrite
	}
	for i := range f.overlays {
		if f.overlays[i].ID == id {
			f.overlays = append(f.overlays[:i], f.overlays[i+1:]...)
			return client.DeleteResult{Message: "Overlay deleted successfully", ID: id}, nil
		}
	}
	return client.DeleteResult{}, &client.DeleteError{StatusError: client.StatusError{Status: 404, Message: "Overlay not found"}}
}

func seeded() *fakeAPI {
	return &fakeAPI{overlays: []overlay.Overlay{{
		ID:       "a",
		Type:     overlay.TypeText,
		Content:  "Hello",
		Position: overlay.Position{X: 50, Y: 50},
		Size:     overlay.Size{Width: 150, Height: 40},
	}}}
}

func loaded(t *testing.T, api *fakeAPI, opts Options) *Shell {
	t.Helper()
	s := New(api, opts)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	s := New(&fakeAPI{}, Options{})
	if !s.Playing() || s.Volume() != DefaultVolume || s.Loading() || s.Error() != "" {
		t.Errorf("defaults: playing=%v volume=%v loading=%v err=%q", s.Playing(), s.Volume(), s.Loading(), s.Error())
	}
	if !s.Stream().Empty() {
		t.Error("stream loaded before submit")
	}
}

func TestLoadFailureSetsBanner(t *testing.T) {
	t.Parallel()

	api := seeded()
	api.failList = true
	s := New(api, Options{})

	err := s.Load(context.Background())
	var fe *client.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FetchError", err)
	}
	if s.Error() != LoadFailedMessage {
		t.Errorf("Error() = %q", s.Error())
	}
	if s.Loading() {
		t.Error("still loading")
	}

	api.failList = false
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if s.Error() != "" || s.Store().Len() != 1 {
		t.Errorf("after recovery: err=%q len=%d", s.Error(), s.Store().Len())
	}
}

func TestStreamURLState(t *testing.T) {
	t.Parallel()

	s := New(&fakeAPI{}, Options{MediaBaseURL: "http://media:5000"})
	s.SetInputURL("   ")
	if s.SubmitURL() {
		t.Error("blank URL submitted")
	}

	s.TogglePlay()
	s.SetInputURL(" rtsp://cam/1 ")
	if s.LoadedURL() != "" {
		t.Error("editing input changed the loaded stream")
	}
	if !s.SubmitURL() {
		t.Fatal("SubmitURL = false")
	}
	if s.LoadedURL() != "rtsp://cam/1" || !s.Playing() {
		t.Errorf("loaded=%q playing=%v", s.LoadedURL(), s.Playing())
	}
	if src := s.Stream(); src.Mode != stream.ModeRTSP || src.URL != "http://media:5000/stream/mjpeg?url=rtsp%3A%2F%2Fcam%2F1" {
		t.Errorf("stream = %+v", src)
	}

	s.SetInputURL("https://cdn/x.m3u8")
	if s.LoadedURL() != "rtsp://cam/1" {
		t.Errorf("loaded changed to %q before submit", s.LoadedURL())
	}
}

func TestVolume(t *testing.T) {
	t.Parallel()

	s := New(&fakeAPI{}, Options{})
	s.SetVolume(3)
	if s.Volume() != 1 {
		t.Errorf("Volume = %v", s.Volume())
	}
	s.SetVolume(-1)
	if s.Volume() != 0 {
		t.Errorf("Volume = %v", s.Volume())
	}
	s.SetVolume(0.7)
	if got := s.StepVolume(0.1); got != 0.8 {
		t.Errorf("StepVolume = %v", got)
	}
	for range 5 {
		s.StepVolume(0.1)
	}
	if s.Volume() != 1 {
		t.Errorf("Volume = %v after stepping past max", s.Volume())
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	s := loaded(t, api, Options{})
	api.onCall = func(op string) {
		if op == "create" && s.Store().Len() != 0 {
			t.Error("create applied before the backend answered")
		}
	}

	o, err := s.Create(context.Background(), overlay.NewDraft(overlay.TypeText, "Hello", 150, 40))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if o.ID != "abc" || o.Position != (overlay.Position{X: 50, Y: 50}) {
		t.Errorf("created = %+v", o)
	}
	got := s.Overlays()
	if len(got) != 1 || got[0].ID != "abc" {
		t.Errorf("store = %+v", got)
	}
}

func TestCreateFailure(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{failWrite: &client.ValidationError{StatusError: client.StatusError{Status: 400, Message: "Invalid overlay type"}}}
	s := loaded(t, api, Options{})

	_, err := s.Create(context.Background(), overlay.NewDraft(overlay.TypeText, "x", 150, 40))
	var ve *client.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if s.Error() != "Invalid overlay type" {
		t.Errorf("Error() = %q", s.Error())
	}
	if s.Store().Len() != 0 {
		t.Error("failed create was appended")
	}
}

func TestMoveAppliesBeforeCommit(t *testing.T) {
	t.Parallel()

	api := seeded()
	s := loaded(t, api, Options{})
	want := overlay.Position{X: 200, Y: 120}
	api.onCall = func(op string) {
		if op != "update" {
			return
		}
		if o, _ := s.Store().Get("a"); o.Position != want {
			t.Errorf("position at call time = %+v, want optimistic %+v", o.Position, want)
		}
	}

	res := s.Move(context.Background(), "a", want)
	if res.Err != nil || res.Reconciled {
		t.Errorf("result = %+v", res)
	}
	if o, _ := s.Store().Get("a"); o.Position != want {
		t.Errorf("position = %+v", o.Position)
	}
}

func TestFailedResizeRollsBackToServer(t *testing.T) {
	t.Parallel()

	api := seeded()
	s := loaded(t, api, Options{})
	api.failWrite = &client.UpdateError{StatusError: client.StatusError{Status: 500, Message: "Failed to update overlay"}}

	txn := s.BeginResize("a", overlay.Size{Width: 400, Height: 200})
	if o, _ := s.Store().Get("a"); o.Size.Width != 400 {
		t.Fatalf("optimistic size not applied: %+v", o.Size)
	}
	res := s.Commit(context.Background(), txn)
	if res.Err == nil || !res.Reconciled {
		t.Fatalf("result = %+v", res)
	}
	if o, _ := s.Store().Get("a"); o.Size != (overlay.Size{Width: 150, Height: 40}) {
		t.Errorf("size = %+v, want server value", o.Size)
	}
	if s.Error() != "" {
		t.Errorf("background failure surfaced by default: %q", s.Error())
	}
}

func TestDeleteIsImmediate(t *testing.T) {
	t.Parallel()

	api := seeded()
	s := loaded(t, api, Options{})

	txn := s.BeginDelete("a")
	if s.Store().Len() != 0 {
		t.Fatal("overlay visible after delete began")
	}
	if !txn.Changed() {
		t.Error("Changed = false")
	}
	if res := s.Commit(context.Background(), txn); res.Err != nil {
		t.Errorf("Commit: %v", res.Err)
	}
	if len(api.overlays) != 0 {
		t.Error("backend still holds overlay")
	}
}

func TestFailedDeleteRestores(t *testing.T) {
	t.Parallel()

	api := seeded()
	s := loaded(t, api, Options{})
	api.failWrite = errors.New("connection refused")

	res := s.Delete(context.Background(), "a")
	if res.Err == nil {
		t.Fatal("expected error")
	}
	if _, ok := s.Store().Get("a"); !ok {
		t.Error("overlay not restored by refetch")
	}
}

func TestSurfaceBackgroundErrors(t *testing.T) {
	t.Parallel()

	api := seeded()
	s := loaded(t, api, Options{SurfaceBackgroundErrors: true})
	api.failWrite = &client.UpdateError{StatusError: client.StatusError{Status: 404, Message: "Overlay not found"}}

	s.Move(context.Background(), "a", overlay.Position{X: 1, Y: 1})
	if s.Error() != "Overlay not found" {
		t.Errorf("Error() = %q", s.Error())
	}
}

func TestSurfaceKeepsLoadBannerWhenRefetchFails(t *testing.T) {
	t.Parallel()

	api := seeded()
	s := loaded(t, api, Options{SurfaceBackgroundErrors: true})
	api.failWrite = errors.New("boom")
	api.failList = true

	res := s.Resize(context.Background(), "a", overlay.Size{Width: 60, Height: 60})
	if res.ReconcileErr == nil {
		t.Fatal("expected reconcile error")
	}
	if s.Error() != LoadFailedMessage {
		t.Errorf("Error() = %q", s.Error())
	}
}

func TestStaleCommitIsFlagged(t *testing.T) {
	t.Parallel()

	api := seeded()
	api.gate = make(chan struct{})
	s := loaded(t, api, Options{})

	txn := s.BeginMove("a", overlay.Position{X: 300, Y: 300})
	done := make(chan optimistic.Result, 1)
	go func() { done <- s.Commit(context.Background(), txn) }()

	// A refetch lands while the update is in flight.
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	close(api.gate)

	if res := <-done; !res.Stale {
		t.Errorf("result = %+v, want Stale", res)
	}
}
