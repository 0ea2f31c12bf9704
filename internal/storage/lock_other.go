//go:build !unix

package storage

import (
	"errors"
	"time"
)

// ErrLockTimeout is returned when another process holds the task file lock
// for longer than the configured timeout.
var ErrLockTimeout = errors.New("lock timeout")

const (
	exclusiveLock = iota
	sharedLock
)

// fileLock is a no-op on platforms without flock(2).
type fileLock struct{}

func acquireLock(path string, how int, timeout time.Duration) (*fileLock, error) {
	return &fileLock{}, nil
}

func (l *fileLock) release() error {
	return nil
}
