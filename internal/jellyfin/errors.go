package jellyfin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConnectivity marks transport-level failures: the request never
	// produced an HTTP response (connection refused, timeout, bad URL).
	ErrConnectivity = errors.New("connectivity failure")
	// ErrRequest marks calls the server answered with a non-success status.
	ErrRequest = errors.New("request failure")
)

// wrapCall tags an error with the failing call so per-item reports can show
// which endpoint broke without callers parsing message text.
func wrapCall(marker error, method, path string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", marker, method, path, err)
	}
	return fmt.Errorf("%w: %s %s", marker, method, path)
}

func statusError(method, path string, status int, body []byte) error {
	excerpt := strings.TrimSpace(string(body))
	if excerpt == "" {
		return fmt.Errorf("%w: %s %s returned %d", ErrRequest, method, path, status)
	}
	return fmt.Errorf("%w: %s %s returned %d: %s", ErrRequest, method, path, status, excerpt)
}
