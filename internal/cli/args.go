package cli

import (
	"fmt"
	"strings"

	"github.com/jacksmith/todo/internal/model"
)

// ParseIDArg parses a task ID command-line argument.
// Malformed input yields a *ValidationError wrapping model.ErrInvalidID.
func ParseIDArg(arg string) (uint64, error) {
	id, err := model.ParseTaskID(arg)
	if err != nil {
		return 0, &ValidationError{
			Field:   "task id",
			Message: fmt.Sprintf("%q is not a positive integer", arg),
			Err:     err,
		}
	}
	return id, nil
}

// JoinTitle joins the words of a task title given as separate arguments.
func JoinTitle(args []string) string {
	return strings.Join(args, " ")
}

