package api

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMethod is returned before any network activity for unsupported HTTP methods.
	ErrInvalidMethod = errors.New("api: invalid request method")
	// ErrUnknownVersion is returned when a version selector has no base URL.
	ErrUnknownVersion = errors.New("api: unknown api version")
	// ErrNoContent signals a 204 response. It is a result, not a failure of the call,
	// and is never returned alongside data.
	ErrNoContent = errors.New("api: no content")
)

// StatusError captures responses with a status code >= 400.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("api: %s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, body)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
