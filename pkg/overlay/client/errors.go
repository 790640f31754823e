// ABOUTME: Typed API failures for the overlay REST client
// ABOUTME: Each carries the HTTP status, the server or default message, and the cause

package client

import (
	"fmt"
	"net/http"
)

// Default messages used when the server does not provide one.
const (
	defaultFetchMessage  = "Failed to fetch overlays"
	defaultCreateMessage = "Failed to create overlay"
	defaultUpdateMessage = "Failed to update overlay"
	defaultDeleteMessage = "Failed to delete overlay"
)

// StatusError is the common shape of every API failure.
// Status is zero when the request never produced a response.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

// Error returns the message, since it is what the user is shown.
func (e *StatusError) Error() string {
	return e.Message
}

// Unwrap returns the transport or decode error, if any.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// Detail renders status and cause for logs.
func (e *StatusError) Detail() string {
	switch {
	case e.Err != nil && e.Status != 0:
		return fmt.Sprintf("%s (status %d): %v", e.Message, e.Status, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s (status %d %s)", e.Message, e.Status, http.StatusText(e.Status))
	default:
		return e.Message
	}
}

// FetchError is returned when listing overlays fails.
type FetchError struct{ StatusError }

// ValidationError is returned when the backend rejects a create.
type ValidationError struct{ StatusError }

// CreateError is an alias kept for callers that think of it as a create failure.
type CreateError = ValidationError

// UpdateError is returned when an update is rejected or fails.
type UpdateError struct{ StatusError }

// DeleteError is returned when a delete is rejected or fails.
type DeleteError struct{ StatusError }
