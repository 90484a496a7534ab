// Package runlock enforces single-instance apply runs per server.
//
// Two processes applying configuration to the same server at once would
// interleave their read-modify-write sequences, so apply takes an advisory
// file lock keyed by the server URL before any mutation. Dry runs never lock.
package runlock

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrHeld reports that another apply run already holds the lock.
var ErrHeld = errors.New("another apply run is already in progress for this server")

// Lock is a held advisory lock.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes the lock for the given server URL without blocking.
func Acquire(serverURL string) (*Lock, error) {
	dir, err := lockDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory %q: %w", dir, err)
	}

	digest := sha256.Sum256([]byte(serverURL))
	path := filepath.Join(dir, fmt.Sprintf("apply-%x.lock", digest[:8]))

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %q: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock file %s)", ErrHeld, path)
	}
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string { return l.path }

// Release drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}

func lockDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return os.TempDir(), nil
	}
	return filepath.Join(base, "jellysync"), nil
}
