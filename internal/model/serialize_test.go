package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTaskList(t *testing.T) {
	t.Run("missing file yields empty list", func(t *testing.T) {
		l, err := LoadTaskList(filepath.Join(t.TempDir(), "todos.json"))
		require.NoError(t, err)
		assert.Equal(t, 0, l.Len())
		assert.Equal(t, uint64(1), l.NextID())
	})

	t.Run("reads tasks in file order", func(t *testing.T) {
		content := `[
  {
    "id": 1,
    "title": "buy milk",
    "status": "Done"
  },
  {
    "id": 3,
    "title": "walk dog",
    "status": "Pending"
  }
]`
		path := filepath.Join(t.TempDir(), "todos.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		l, err := LoadTaskList(path)
		require.NoError(t, err)

		want := []Task{
			{ID: 1, Title: "buy milk", Status: TaskStatusDone},
			{ID: 3, Title: "walk dog", Status: TaskStatusPending},
		}
		if diff := cmp.Diff(want, l.Tasks()); diff != "" {
			t.Errorf("unexpected tasks (-want +got):\n%s", diff)
		}
		assert.Equal(t, uint64(4), l.NextID())
	})

	t.Run("accepts comments and trailing commas", func(t *testing.T) {
		content := `[
  // edited by hand
  {"id": 2, "title": "a", "status": "Pending",},
]`
		path := filepath.Join(t.TempDir(), "todos.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		l, err := LoadTaskList(path)
		require.NoError(t, err)
		assert.Equal(t, 1, l.Len())
		assert.Equal(t, uint64(3), l.NextID())
	})

	t.Run("empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.json")
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

		l, err := LoadTaskList(path)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), l.NextID())
	})
}

func TestLoadTaskListErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "not json", content: "buy milk"},
		{name: "object instead of array", content: `{"id": 1}`},
		{name: "null", content: "null\n"},
		{name: "null behind a comment", content: "// emptied by hand\nnull"},
		{name: "unknown status", content: `[{"id": 1, "title": "a", "status": "Started"}]`},
		{name: "missing status", content: `[{"id": 1, "title": "a"}]`},
		{name: "negative id", content: `[{"id": -1, "title": "a", "status": "Pending"}]`},
		{name: "zero id", content: `[{"id": 0, "title": "a", "status": "Pending"}]`},
		{name: "duplicate ids", content: `[{"id": 1, "title": "a", "status": "Pending"}, {"id": 1, "title": "b", "status": "Done"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "todos.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadTaskList(path)
			require.Error(t, err)

			var pe *PersistenceError
			require.True(t, errors.As(err, &pe), "expected PersistenceError, got %T", err)
			assert.Equal(t, "parse", pe.Op)
			assert.Equal(t, path, pe.Path)
		})
	}
}

func TestLoadTaskListUnreadable(t *testing.T) {
	// A directory at the path cannot be read as a file.
	dir := t.TempDir()

	_, err := LoadTaskList(dir)
	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "read", pe.Op)
}

func TestSaveTaskList(t *testing.T) {
	t.Run("writes indented json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.json")
		l := NewTaskList()
		l.Add("buy milk")

		require.NoError(t, SaveTaskList(path, l))
		assert.False(t, l.Dirty())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		want := `[
  {
    "id": 1,
    "title": "buy milk",
    "status": "Pending"
  }
]
`
		assert.Equal(t, want, string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("empty list is written as empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.json")
		require.NoError(t, SaveTaskList(path, NewTaskList()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("overwrites existing content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "todos.json")
		require.NoError(t, os.WriteFile(path, []byte("garbage that is much longer than the new content"), 0644))

		require.NoError(t, SaveTaskList(path, NewTaskList()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})

	t.Run("missing directory is a persistence error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "todos.json")
		l := NewTaskList()
		l.Add("a")

		err := SaveTaskList(path, l)
		var pe *PersistenceError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "write", pe.Op)
		assert.True(t, l.Dirty(), "failed save must not clear dirty flag")
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.json")

	l := NewTaskList()
	l.Add("first")
	l.Add("second with \"quotes\" and ✓")
	l.Add("")
	l.Add("fourth")
	_, err := l.Complete(2)
	require.NoError(t, err)
	_, err = l.Remove(1)
	require.NoError(t, err)

	require.NoError(t, SaveTaskList(path, l))

	loaded, err := LoadTaskList(path)
	require.NoError(t, err)

	if diff := cmp.Diff(l.Tasks(), loaded.Tasks()); diff != "" {
		t.Errorf("round trip changed tasks (-saved +loaded):\n%s", diff)
	}
	assert.Equal(t, l.NextID(), loaded.NextID())
}

func TestNextIDRecomputedFromFile(t *testing.T) {
	// Removing the highest task and reloading lowers the next id, since it is
	// not persisted. Within one process lifetime ids are still never reused.
	path := filepath.Join(t.TempDir(), "todos.json")

	l := NewTaskList()
	l.Add("a")
	l.Add("b")
	_, err := l.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), l.NextID())
	require.NoError(t, SaveTaskList(path, l))

	loaded, err := LoadTaskList(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), loaded.NextID())
}

func TestEncodeTasksNil(t *testing.T) {
	data, err := EncodeTasks(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestDecodeTasks(t *testing.T) {
	tasks, err := DecodeTasks([]byte(`[{"id": 1, "title": "a", "status": "Done"}]`))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, TaskStatusDone, tasks[0].Status)
}
