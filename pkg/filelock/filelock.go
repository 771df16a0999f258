// Package filelock guards the bundle artifact against concurrent writers
// using an advisory file lock next to the output file.
package filelock

import (
	"fmt"

	"github.com/gofrs/flock"
)

// FileLock wraps an advisory lock on a sidecar lock file.
type FileLock struct {
	flock *flock.Flock
}

// New prepares a lock on the given lock file path. The file is created on
// first acquisition and left behind after release; only the lock state
// matters.
func New(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
	}
}

// TryLock attempts to acquire the lock without blocking. It returns false
// when another process holds the lock.
func (l *FileLock) TryLock() (bool, error) {
	locked, err := l.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock on %s: %w", l.flock.Path(), err)
	}
	return locked, nil
}

// Unlock releases the lock. Safe to call when the lock was never acquired.
func (l *FileLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.flock.Path(), err)
	}
	return nil
}

// Path returns the lock file path.
func (l *FileLock) Path() string {
	return l.flock.Path()
}
