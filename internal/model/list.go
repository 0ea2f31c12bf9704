package model

import "fmt"

// TaskList is the in-memory task collection. Tasks are kept in insertion
// order, which is also the display order.
type TaskList struct {
	tasks  []Task
	nextID uint64
	dirty  bool
}

// NewTaskList returns an empty list whose first task will get ID 1.
func NewTaskList() *TaskList {
	return &TaskList{nextID: 1}
}

// NewTaskListFrom builds a list from already-persisted tasks.
// The next ID is one past the highest ID present. Returns an error if an ID
// is zero or repeated, or if a status is unknown.
func NewTaskListFrom(tasks []Task) (*TaskList, error) {
	l := NewTaskList()
	seen := make(map[uint64]bool, len(tasks))
	for _, t := range tasks {
		if t.ID == 0 {
			return nil, fmt.Errorf("task %q has invalid id 0", t.Title)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		if !t.Status.Valid() {
			return nil, fmt.Errorf("task %d has unknown status %q", t.ID, t.Status)
		}
		seen[t.ID] = true
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}
	l.tasks = append(l.tasks, tasks...)
	return l, nil
}

// Tasks returns a copy of the tasks in display order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// NextID returns the ID the next added task will receive.
func (l *TaskList) NextID() uint64 {
	return l.nextID
}

// Dirty reports whether the list changed since it was created or loaded.
func (l *TaskList) Dirty() bool {
	return l.dirty
}

// Get returns the task with the given ID.
func (l *TaskList) Get(id uint64) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, &NotFoundError{ID: id}
	}
	return l.tasks[i], nil
}

// Add appends a pending task and returns it. The title is stored as given.
func (l *TaskList) Add(title string) Task {
	task := Task{
		ID:     l.nextID,
		Title:  title,
		Status: TaskStatusPending,
	}
	l.tasks = append(l.tasks, task)
	l.nextID++
	l.dirty = true
	return task
}

// Complete marks the task with the given ID as done.
// Completing an already-done task succeeds without changing it.
func (l *TaskList) Complete(id uint64) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, &NotFoundError{ID: id}
	}

	task := &l.tasks[i]
	if !CanTransition(task.Status, TaskStatusDone) {
		return Task{}, fmt.Errorf("task %d cannot be completed from status %s", id, task.Status)
	}
	if task.Status != TaskStatusDone {
		task.Status = TaskStatusDone
		l.dirty = true
	}
	return *task, nil
}

// Remove deletes the task with the given ID and returns it.
// Remaining tasks keep their IDs and relative order; IDs are never reused.
func (l *TaskList) Remove(id uint64) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, &NotFoundError{ID: id}
	}

	task := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.dirty = true
	return task, nil
}

func (l *TaskList) indexOf(id uint64) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
