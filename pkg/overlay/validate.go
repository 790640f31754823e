// ABOUTME: Local overlay validation run before any network call is attempted
// ABOUTME: Content must be non-empty; image content must be a well-formed URL

package overlay

import (
	"errors"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// Validation errors. Their messages are shown verbatim in the control panel.
var (
	ErrContentRequired = errors.New("Content is required")
	ErrInvalidImageURL = errors.New("Please enter a valid image URL")
)

// hostSchemes are the schemes whose URLs are invalid without a host.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// Validate checks content for the given overlay type, in order:
// trimmed content must be non-empty, and image content must parse as a URL.
func Validate(t Type, content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentRequired
	}
	if t == TypeImage && !IsValidURL(content) {
		return ErrInvalidImageURL
	}
	return nil
}

// IsValidURL reports whether s is an absolute URL. A scheme is always required;
// network schemes additionally need an IDNA-valid host.
func IsValidURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if !hostSchemes[strings.ToLower(u.Scheme)] {
		return true
	}
	host := u.Hostname()
	if host == "" {
		return false
	}
	if net.ParseIP(host) != nil {
		return true
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return false
	}
	return true
}

// NewDraft normalizes form input into a draft placed at the default position.
func NewDraft(t Type, content string, width, height float64) Draft {
	return Draft{
		Type:     t,
		Content:  strings.TrimSpace(content),
		Position: DefaultPosition(),
		Size:     Size{Width: width, Height: height},
	}
}
