package repository

import (
	"time"
)

const timestampLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// parseTime parses a stored timestamp, naming the column on failure.
func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, &parseError{column: column, err: err}
	}
	return t, nil
}

type parseError struct {
	column string
	err    error
}

func (e *parseError) Error() string { return "parsing " + e.column + ": " + e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }
