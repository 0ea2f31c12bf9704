// Package storage provides locked access to the task file.
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jacksmith/todo/internal/model"
)

// lockSuffix is appended to the task file path to name its lock file.
// Commands that write leave the lock file in place; flock applies to the
// open inode, so removing it while held would break mutual exclusion.
const lockSuffix = ".lock"

// Storage provides access to a single task file.
type Storage struct {
	path        string
	lockTimeout time.Duration
}

// Open returns a Storage for the task file configured in cfg.
// Relative data file paths are resolved against dir.
func Open(dir string, cfg *Config) *Storage {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	path := cfg.DataFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	timeout := cfg.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}

	return &Storage{path: path, lockTimeout: timeout}
}

// Path returns the path to the task file.
func (s *Storage) Path() string {
	return s.path
}

// LockPath returns the path to the advisory lock file.
func (s *Storage) LockPath() string {
	return s.path + lockSuffix
}

// Update loads the task list under an exclusive lock, applies fn and saves
// the list if fn changed it. The lock is released on every return path.
//
// A *model.NotFoundError from fn does not prevent the save; it is returned
// after the list has been written. Any other error from fn skips the save.
func (s *Storage) Update(fn func(l *model.TaskList) error) error {
	lock, err := s.lock(exclusiveLock)
	if err != nil {
		return err
	}
	defer func() { _ = lock.release() }()

	l, err := model.LoadTaskList(s.path)
	if err != nil {
		return err
	}

	fnErr := fn(l)
	var notFound *model.NotFoundError
	if fnErr != nil && !errors.As(fnErr, &notFound) {
		return fnErr
	}

	if l.Dirty() {
		if err := model.SaveTaskList(s.path, l); err != nil {
			return err
		}
	}

	return fnErr
}

// View loads the task list under a shared lock and passes it to fn.
// The list is never saved, even if fn modifies it. A missing task file is
// viewed as an empty list without creating a lock file.
func (s *Storage) View(fn func(l *model.TaskList) error) error {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return fn(model.NewTaskList())
	}

	lock, err := s.lock(sharedLock)
	if err != nil {
		return err
	}
	defer func() { _ = lock.release() }()

	l, err := model.LoadTaskList(s.path)
	if err != nil {
		return err
	}

	return fn(l)
}

func (s *Storage) lock(how int) (*fileLock, error) {
	lock, err := acquireLock(s.LockPath(), how, s.lockTimeout)
	if err != nil {
		return nil, &model.PersistenceError{Op: "lock", Path: s.path, Err: err}
	}
	return lock, nil
}
