//go:build unix

package storage

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// ErrLockTimeout is returned when another process holds the task file lock
// for longer than the configured timeout.
var ErrLockTimeout = errors.New("lock timeout")

const (
	exclusiveLock = unix.LOCK_EX
	sharedLock    = unix.LOCK_SH
)

// Polling bounds while waiting for a held lock.
const (
	minLockBackoff = time.Millisecond
	maxLockBackoff = 25 * time.Millisecond
)

// fileLock is a held flock(2) on a lock file.
type fileLock struct {
	file *os.File
}

// acquireLock takes a flock of kind how (exclusiveLock or sharedLock) on path,
// creating the file if needed. It polls with non-blocking flock calls and
// exponential backoff until timeout expires.
func acquireLock(path string, how int, timeout time.Duration) (*fileLock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	fd := int(file.Fd())
	deadline := time.Now().Add(timeout)
	backoff := minLockBackoff

	for {
		err := unix.Flock(fd, how|unix.LOCK_NB)
		if err == nil {
			return &fileLock{file: file}, nil
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if !errors.Is(err, unix.EWOULDBLOCK) {
			_ = file.Close()
			return nil, fmt.Errorf("failed to lock %s: %w", path, err)
		}

		if time.Now().After(deadline) {
			_ = file.Close()
			return nil, fmt.Errorf("%w: %s is held by another todo process", ErrLockTimeout, path)
		}

		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxLockBackoff {
			backoff = maxLockBackoff
		}
	}
}

// release unlocks and closes the lock file. It is safe to call more than once.
func (l *fileLock) release() error {
	if l.file == nil {
		return nil
	}

	unlockErr := unix.Flock(int(l.file.Fd()), unix.LOCK_UN)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		unlockErr = fmt.Errorf("unlocking lock: %w", unlockErr)
	}
	if closeErr != nil {
		closeErr = fmt.Errorf("closing lock file: %w", closeErr)
	}
	return errors.Join(unlockErr, closeErr)
}
