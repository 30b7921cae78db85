package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const lockFileName = "instance.lock"

// InstanceGuard holds the single-instance lock.
type InstanceGuard struct {
	lock *flock.Flock
}

// AcquireSingleInstance takes the lock file in the user config directory.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	dir, err := ConfigDir(appName)
	if err != nil {
		return nil, err
	}
	return AcquireSingleInstanceAt(dir)
}

// AcquireSingleInstanceAt takes the lock file inside dir.
func AcquireSingleInstanceAt(dir string) (*InstanceGuard, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fileLock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{lock: fileLock}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.lock == nil {
		return nil
	}
	if err := guard.lock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}

// Path returns the lock file path.
func (guard *InstanceGuard) Path() string {
	if guard == nil || guard.lock == nil {
		return ""
	}
	return guard.lock.Path()
}
