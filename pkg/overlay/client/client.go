// ABOUTME: REST client for the overlay backend: list, create, update, delete
// ABOUTME: One round trip per call; no retries, no caching; non-2xx become typed errors

package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mailru/easyjson"

	pilog "github.com/mauromedda/overlaycast/internal/log"
	"github.com/mauromedda/overlaycast/pkg/overlay"
)

const (
	overlaysPath = "/overlays"
	healthPath   = "/health"

	// maxErrorBody bounds how much of an error response is read.
	maxErrorBody = 4096
)

// Client talks to the overlay backend rooted at baseURL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string

	timeout    time.Duration
	hasTimeout bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero means none. It applies to a
// copy of the http.Client, so a client passed to WithHTTPClient is never
// modified and option order does not matter.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		c.hasTimeout = true
	}
}

// WithHeader adds a default header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// New creates a client for the given base URL (e.g. http://localhost:5173/api).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    NormalizeBaseURL(baseURL),
		headers:    map[string]string{"Accept": "application/json"},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.hasTimeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List returns all overlays in backend order.
func (c *Client) List(ctx context.Context) ([]overlay.Overlay, error) {
	resp, err := c.do(ctx, http.MethodGet, overlaysPath, nil)
	if err != nil {
		return nil, &FetchError{StatusError{Message: defaultFetchMessage, Err: err}}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		// List failures always use the generic message.
		drain(resp.Body)
		return nil, &FetchError{StatusError{Status: resp.StatusCode, Message: defaultFetchMessage}}
	}

	var list overlay.List
	if err := decode(resp.Body, &list); err != nil {
		return nil, &FetchError{StatusError{Status: resp.StatusCode, Message: defaultFetchMessage, Err: err}}
	}
	if list == nil {
		list = overlay.List{}
	}
	return list, nil
}

// Create submits a draft and returns the stored overlay with its new id.
func (c *Client) Create(ctx context.Context, draft overlay.Draft) (overlay.Overlay, error) {
	body, err := easyjson.Marshal(draft)
	if err != nil {
		return overlay.Overlay{}, fmt.Errorf("encoding draft: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, overlaysPath, body)
	if err != nil {
		return overlay.Overlay{}, &ValidationError{StatusError{Message: defaultCreateMessage, Err: err}}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return overlay.Overlay{}, &ValidationError{failure(resp, defaultCreateMessage)}
	}

	var created overlay.Overlay
	if err := decode(resp.Body, &created); err != nil {
		return overlay.Overlay{}, &ValidationError{StatusError{Status: resp.StatusCode, Message: defaultCreateMessage, Err: err}}
	}
	return created, nil
}

// Update sends a partial update and returns the stored overlay.
func (c *Client) Update(ctx context.Context, id string, patch overlay.Patch) (overlay.Overlay, error) {
	body, err := easyjson.Marshal(patch)
	if err != nil {
		return overlay.Overlay{}, fmt.Errorf("encoding patch: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, overlayPath(id), body)
	if err != nil {
		return overlay.Overlay{}, &UpdateError{StatusError{Message: defaultUpdateMessage, Err: err}}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return overlay.Overlay{}, &UpdateError{failure(resp, defaultUpdateMessage)}
	}

	var updated overlay.Overlay
	if err := decode(resp.Body, &updated); err != nil {
		return overlay.Overlay{}, &UpdateError{StatusError{Status: resp.StatusCode, Message: defaultUpdateMessage, Err: err}}
	}
	return updated, nil
}

// Delete removes an overlay and returns the backend's confirmation.
func (c *Client) Delete(ctx context.Context, id string) (DeleteResult, error) {
	resp, err := c.do(ctx, http.MethodDelete, overlayPath(id), nil)
	if err != nil {
		return DeleteResult{}, &DeleteError{StatusError{Message: defaultDeleteMessage, Err: err}}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return DeleteResult{}, &DeleteError{failure(resp, defaultDeleteMessage)}
	}

	var result DeleteResult
	if err := decode(resp.Body, &result); err != nil {
		return DeleteResult{}, &DeleteError{StatusError{Status: resp.StatusCode, Message: defaultDeleteMessage, Err: err}}
	}
	if result.ID == "" {
		result.ID = id
	}
	return result, nil
}

// Health checks the backend's health endpoint through the same base URL,
// so a dev proxy that strips the base path reaches the server root.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	return c.Probe(ctx, healthPath)
}

// Probe GETs a {"status", "message"} endpoint below the base URL.
func (c *Client) Probe(ctx context.Context, path string) (HealthStatus, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("probe %s: %w", path, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		drain(resp.Body)
		return HealthStatus{}, fmt.Errorf("probe %s: status %d", path, resp.StatusCode)
	}
	var hs HealthStatus
	if err := decode(resp.Body, &hs); err != nil {
		return HealthStatus{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return hs, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	target := c.baseURL + path
	req, err := c.buildRequest(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		pilog.Debug("http: %s %s failed: %v", method, target, err)
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	pilog.Debug("http: %s %s → %d (%s)", method, target, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return resp, nil
}

// buildRequest creates an http.Request with default headers and a request id.
func (c *Client) buildRequest(ctx context.Context, method, target string, body []byte) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s %s: %w", method, target, err)
	}

	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// failure builds a StatusError from a non-2xx response, preferring the
// server's {"error": "..."} message over the default.
func failure(resp *http.Response, fallback string) StatusError {
	se := StatusError{Status: resp.StatusCode, Message: fallback}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return se
	}
	var eb errorBody
	if err := easyjson.Unmarshal(data, &eb); err != nil {
		return se
	}
	if msg := strings.TrimSpace(eb.Error); msg != "" {
		se.Message = msg
	}
	return se
}

func decode(r io.Reader, v easyjson.Unmarshaler) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if err := easyjson.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, maxErrorBody))
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func overlayPath(id string) string {
	return overlaysPath + "/" + url.PathEscape(id)
}

// NormalizeBaseURL trims trailing slashes so paths can be appended directly.
func NormalizeBaseURL(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}
