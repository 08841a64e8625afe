package persistence

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyLocked indicates another daybook process holds the state lock.
var ErrAlreadyLocked = errors.New("another daybook instance is already running")

// InstanceLock enforces single-instance access to the state directory.
type InstanceLock struct {
	lock *flock.Flock
}

// AcquireInstanceLock takes the lock file next to the state database. It
// fails fast when the lock is held elsewhere.
func AcquireInstanceLock(statePath string) (*InstanceLock, error) {
	lockPath := filepath.Join(filepath.Dir(statePath), "daybook.lock")
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire instance lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyLocked
	}
	return &InstanceLock{lock: lock}, nil
}

// Release drops the lock.
func (l *InstanceLock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
