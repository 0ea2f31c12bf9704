// Package model defines the core data structures for todo.
package model

// TaskStatus represents the status of a task.
// The string values are the persisted tags and must not change.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "Pending"
	TaskStatusDone    TaskStatus = "Done"
)

// Task represents a single entry in the task list.
type Task struct {
	ID     uint64     `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

// IsDone reports whether the task has been completed.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}
