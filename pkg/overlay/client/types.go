// ABOUTME: Response payloads of the overlay backend that are not overlays
// ABOUTME: Error bodies, delete confirmations, and the health probe

//go:generate easyjson -all types.go

package client

// errorBody is the {"error": "..."} shape of failed responses.
type errorBody struct {
	Error string `json:"error"`
}

// DeleteResult is the backend's confirmation of a delete.
type DeleteResult struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// HealthStatus is returned by GET /health and the media /stream/test probe.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
