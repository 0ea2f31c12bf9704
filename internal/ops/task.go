package ops

import (
	"github.com/jacksmith/todo/internal/model"
)

// AddTask appends a new pending task with the given title.
// The title is not validated; empty and whitespace-only titles are kept.
func AddTask(s Store, title string) (model.Task, error) {
	var task model.Task
	err := s.Update(func(l *model.TaskList) error {
		task = l.Add(title)
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// ListTasks returns every task in display order.
func ListTasks(s Store) ([]model.Task, error) {
	var tasks []model.Task
	err := s.View(func(l *model.TaskList) error {
		tasks = l.Tasks()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// CompleteTask marks a task as done.
// Returns *model.NotFoundError if no task has the given ID.
func CompleteTask(s Store, id uint64) (model.Task, error) {
	var task model.Task
	err := s.Update(func(l *model.TaskList) error {
		var err error
		task, err = l.Complete(id)
		return err
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// RemoveTask deletes a task. Other tasks keep their IDs.
// Returns *model.NotFoundError if no task has the given ID.
func RemoveTask(s Store, id uint64) (model.Task, error) {
	var task model.Task
	err := s.Update(func(l *model.TaskList) error {
		var err error
		task, err = l.Remove(id)
		return err
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}
