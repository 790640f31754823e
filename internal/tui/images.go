// ABOUTME: Image overlay loader: fetches each URL once, decodes, and caches the result
// ABOUTME: Concurrent requests for the same URL share one fetch via singleflight

package tui

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/singleflight"

	pilog "github.com/mauromedda/overlaycast/internal/log"
	"github.com/mauromedda/overlaycast/pkg/termimage"
)

// maxImageBytes bounds an image overlay download.
const maxImageBytes = 16 << 20

type imageResult struct {
	img image.Image
	err error
}

// ImageLoader fetches and decodes image overlay content.
type ImageLoader struct {
	hc    *http.Client
	group singleflight.Group

	mu    sync.RWMutex
	cache map[string]imageResult
}

// NewImageLoader creates a loader. A nil client uses http.DefaultClient.
func NewImageLoader(hc *http.Client) *ImageLoader {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &ImageLoader{hc: hc, cache: make(map[string]imageResult)}
}

// Cached returns a finished load for url. ok is false while the load is
// pending or was never requested.
func (l *ImageLoader) Cached(url string) (img image.Image, ok bool, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.cache[url]
	return r.img, ok, r.err
}

// Load returns the decoded image at url, fetching it at most once.
// Failures are cached too; a broken URL stays broken until restart.
func (l *ImageLoader) Load(ctx context.Context, url string) (image.Image, error) {
	if img, ok, err := l.Cached(url); ok {
		return img, err
	}
	v, _, _ := l.group.Do(url, func() (any, error) {
		img, err := l.fetch(ctx, url)
		if err != nil {
			pilog.Warn("image: %s: %v", url, err)
		}
		r := imageResult{img: img, err: err}
		l.mu.Lock()
		l.cache[url] = r
		l.mu.Unlock()
		return r, nil
	})
	r := v.(imageResult)
	return r.img, r.err
}

func (l *ImageLoader) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "image/*")
	resp, err := l.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching image: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}
	return termimage.Decode(data)
}

// loadCmd loads url off the UI loop.
func (l *ImageLoader) loadCmd(ctx context.Context, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := l.Load(ctx, url)
		return ImageLoadedMsg{URL: url, Image: img, Err: err}
	}
}
