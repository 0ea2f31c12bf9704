package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when an ID cannot be parsed.
var ErrInvalidID = errors.New("invalid ID format")

// ParseTaskID parses a task ID given on the command line.
// Surrounding whitespace and leading zeros are accepted: " 7", "007" and "7"
// all parse to 7. Zero, negative and non-numeric values are rejected.
// Returns ErrInvalidID if the format is invalid.
func ParseTaskID(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty task ID", ErrInvalidID)
	}

	id, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid task ID", ErrInvalidID, s)
	}
	if id == 0 {
		return 0, fmt.Errorf("%w: %q has invalid number", ErrInvalidID, s)
	}

	return id, nil
}

// FormatTaskID formats a task ID for display.
func FormatTaskID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
