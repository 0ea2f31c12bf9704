package model

import "fmt"

// NotFoundError indicates a task with the referenced ID does not exist.
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// PersistenceError indicates the task file could not be read, parsed or written.
type PersistenceError struct {
	Op   string // "read", "parse" or "write"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s task file %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
