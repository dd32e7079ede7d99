package domain

import "time"

// View carries the UI bookkeeping attached to every view record.
type View struct {
	IsEditing        bool
	ValidationErrors map[string]string
}

// NewView returns a View with an empty, non-nil error map.
func NewView() View {
	return View{ValidationErrors: map[string]string{}}
}

// HasErrors reports whether any field failed validation.
func (v View) HasErrors() bool {
	return len(v.ValidationErrors) > 0
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses an ISO-8601 date or timestamp. Empty or malformed input
// returns ok=false.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTimestamp renders t as the RFC3339 string stored in records.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// IsLate reports whether due is strictly before now and the work is not
// completed. A missing or unparseable due date is never late.
func IsLate(due string, status Status, now time.Time) bool {
	if status == StatusCompleted {
		return false
	}
	t, ok := ParseDate(due)
	if !ok {
		return false
	}
	return t.Before(now)
}
