// ABOUTME: HTTP client construction for the overlay API, image overlays, and the MJPEG stream
// ABOUTME: Transport timeouts bound connection setup; the stream client has no total deadline

package http

import (
	"net/http"
	"time"
)

const (
	dialHeaderTimeout = 10 * time.Second
	idleTimeout       = 30 * time.Second
)

// NewClient returns a client whose requests, bodies included, finish within
// timeout. Zero disables the total deadline.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// StreamClient returns a client for long-lived multipart streams. Only the
// wait for response headers is bounded; the body may stay open indefinitely
// and is ended by cancelling the request context.
func StreamClient() *http.Client {
	return NewClient(0)
}

func newTransport() *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSHandshakeTimeout:   dialHeaderTimeout,
		ResponseHeaderTimeout: dialHeaderTimeout,
		IdleConnTimeout:       idleTimeout,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
	}
}
