package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every outgoing request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a package, repository or revision doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-404 statuses).
	ErrNetwork = errors.New("network error")
)

// StatusError is returned when a server answers with a non-200 status.
// A 404 matches [ErrNotFound] under errors.Is; every other status matches [ErrNetwork].
type StatusError struct {
	StatusCode int    // HTTP status code
	URL        string // Requested URL
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// Unwrap maps the status onto the package sentinels.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrNetwork
}

// IsNotFound reports whether err is a "not found" answer from a server.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// NewHTTPClient creates an HTTP client with an explicit timeout for API requests.
// A timeout <= 0 falls back to [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// TrimSlash removes trailing slashes from a base URL so paths can be joined with "/".
func TrimSlash(base string) string {
	return strings.TrimRight(base, "/")
}
