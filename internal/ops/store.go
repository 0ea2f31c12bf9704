// Package ops implements the task list operations on top of a Store.
package ops

import (
	"github.com/jacksmith/todo/internal/model"
)

// Store defines the persistence interface required by business logic operations.
// The concrete implementation is storage.Storage, but this interface allows
// alternative backends (in-memory for tests) without touching the file system.
type Store interface {
	// Update runs fn on the current list and persists any change.
	Update(fn func(l *model.TaskList) error) error
	// View runs fn on the current list without persisting.
	View(fn func(l *model.TaskList) error) error
}
