package model

import (
	"encoding/json"
	"fmt"
)

// transitions lists the legal status changes. A status missing from a key's
// set cannot be reached from that key.
var transitions = map[TaskStatus][]TaskStatus{
	TaskStatusPending: {TaskStatusDone},
	// Re-marking a done task is a no-op rather than an error.
	TaskStatusDone: {TaskStatusDone},
}

// Valid reports whether s is a known status.
func (s TaskStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether a task in status from may move to status to.
func CanTransition(from, to TaskStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects status strings other than the known tags.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	status := TaskStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("unknown status %q (expected %q or %q)", raw, TaskStatusPending, TaskStatusDone)
	}
	*s = status
	return nil
}
