// ABOUTME: MJPEG reader for multipart/x-mixed-replace streams served by the media backend
// ABOUTME: Yields decoded JPEG frames one part at a time; non-image parts are skipped

package stream

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	pilog "github.com/mauromedda/overlaycast/internal/log"
)

// MaxFrameBytes bounds a single JPEG part.
const MaxFrameBytes = 8 << 20

// ErrNotMJPEG is returned when a response is not a multipart MJPEG stream.
var ErrNotMJPEG = errors.New("not an mjpeg stream")

// MJPEGReader decodes frames from a multipart MJPEG body.
type MJPEGReader struct {
	parts *multipart.Reader
	body  io.Closer
	seq   int
}

// NewMJPEGReader reads frames from body with the given Content-Type header.
func NewMJPEGReader(body io.Reader, contentType string) (*MJPEGReader, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotMJPEG, err)
	}
	if !strings.HasPrefix(mediaType, "multipart/") {
		return nil, fmt.Errorf("%w: content type %q", ErrNotMJPEG, mediaType)
	}
	boundary := strings.TrimPrefix(params["boundary"], "--")
	if boundary == "" {
		return nil, fmt.Errorf("%w: missing boundary", ErrNotMJPEG)
	}
	r := &MJPEGReader{parts: multipart.NewReader(body, boundary)}
	if c, ok := body.(io.Closer); ok {
		r.body = c
	}
	return r, nil
}

// Open requests url and returns a reader over its frames. The caller
// must Close the reader; cancelling ctx also ends the stream.
func Open(ctx context.Context, hc *http.Client, url string) (*MJPEGReader, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating stream request: %w", err)
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opening stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("opening stream: status %d", resp.StatusCode)
	}

	r, err := NewMJPEGReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	pilog.Debug("stream: opened %s", url)
	return r, nil
}

// Next blocks until the next frame is decoded. It returns io.EOF when the
// stream ends.
func (r *MJPEGReader) Next() (image.Image, error) {
	for {
		part, err := r.parts.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		if ct := part.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/jpeg") {
			pilog.Debug("stream: skipping %s part", ct)
			part.Close()
			continue
		}

		img, err := jpeg.Decode(io.LimitReader(part, MaxFrameBytes))
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("decoding frame %d: %w", r.seq, err)
		}
		r.seq++
		return img, nil
	}
}

// Frames returns how many frames have been decoded.
func (r *MJPEGReader) Frames() int { return r.seq }

// Close releases the underlying body.
func (r *MJPEGReader) Close() error {
	if r.body == nil {
		return nil
	}
	return r.body.Close()
}
