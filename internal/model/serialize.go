package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

const filePerms = 0644

// DecodeTasks parses the persisted task array.
// Comments and trailing commas left by hand edits are accepted.
func DecodeTasks(data []byte) ([]Task, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	// json.Unmarshal accepts null for a slice; a task file must hold an array.
	if bytes.Equal(bytes.TrimSpace(standardized), []byte("null")) {
		return nil, errors.New("expected a JSON array of tasks, got null")
	}

	var tasks []Task
	if err := json.Unmarshal(standardized, &tasks); err != nil {
		return nil, err
	}
	for i := range tasks {
		// A missing status field decodes to "" without calling UnmarshalJSON.
		if !tasks[i].Status.Valid() {
			return nil, fmt.Errorf("task %d has no valid status", tasks[i].ID)
		}
	}
	return tasks, nil
}

// EncodeTasks renders tasks as an indented JSON array with a trailing newline.
// An empty list encodes as "[]", never "null".
func EncodeTasks(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// LoadTaskList loads the task file at path.
// A missing file yields an empty list rather than an error.
func LoadTaskList(path string) (*TaskList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewTaskList(), nil
		}
		return nil, &PersistenceError{Op: "read", Path: path, Err: err}
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		return nil, &PersistenceError{Op: "parse", Path: path, Err: err}
	}

	l, err := NewTaskListFrom(tasks)
	if err != nil {
		return nil, &PersistenceError{Op: "parse", Path: path, Err: err}
	}
	return l, nil
}

// SaveTaskList writes every task in l to path, replacing any existing file.
// The next ID is not persisted; LoadTaskList recomputes it.
func SaveTaskList(path string, l *TaskList) error {
	data, err := EncodeTasks(l.tasks)
	if err != nil {
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}

	_, statErr := os.Stat(path)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}

	// atomic.WriteFile keeps the mode of a replaced file but creates new ones 0600.
	if created {
		if err := os.Chmod(path, filePerms); err != nil {
			return &PersistenceError{Op: "write", Path: path, Err: err}
		}
	}

	l.dirty = false
	return nil
}
