// Package cli provides CLI infrastructure for todo.
package cli

import (
	"fmt"
	"io"

	"github.com/jacksmith/todo/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// Checkbox markers for list output.
const (
	MarkerPending = "[ ]"
	MarkerDone    = "[✓]"
)

// EmptyListNotice is printed by RenderTasks when there are no tasks.
const EmptyListNotice = "No tasks."

// colorEnabled is off until the todo command decides from the config and
// the output stream.
var colorEnabled bool

// SetColorEnabled turns ANSI colors on or off.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether ANSI colors are on.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal reports whether w writes to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green colors the done marker.
func Green(s string) string { return paint(colorGreen, s) }

// Gray dims the title of a done task.
func Gray(s string) string { return paint(colorGray, s) }

// Marker returns the checkbox for a task status.
func Marker(status model.TaskStatus) string {
	if status == model.TaskStatusDone {
		return MarkerDone
	}
	return MarkerPending
}

// FormatTask renders a task as "<id>. [<marker>] <title>".
// Done tasks are grayed out with a green check when colors are enabled.
func FormatTask(t model.Task) string {
	id := model.FormatTaskID(t.ID)
	if t.IsDone() {
		return fmt.Sprintf("%s. %s %s", id, Green(MarkerDone), Gray(t.Title))
	}
	return fmt.Sprintf("%s. %s %s", id, MarkerPending, t.Title)
}

// RenderTasks writes one line per task in the given order, or
// EmptyListNotice when tasks is empty.
func RenderTasks(w io.Writer, tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, EmptyListNotice)
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, FormatTask(t))
	}
}
