package repository

import (
	"fmt"
	"time"
)

// Layouts accepted for serialized date fields, tried in order.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// stringField extracts a string value for key. The bool reports whether
// the key was present with a usable value.
func stringField(fields map[string]any, key string) (string, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s must be a string", ErrInvalidField, key)
	}
	return s, true, nil
}

// timeField extracts an optional timestamp for key. A present null
// clears the value (nil, true, nil).
func timeField(fields map[string]any, key string) (*time.Time, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, false, nil
	}
	if raw == nil {
		return nil, true, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, false, fmt.Errorf("%w: %s must be a date string", ErrInvalidField, key)
	}
	t, err := ParseDueDate(s)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s is not a valid date", ErrInvalidField, key)
	}
	return &t, true, nil
}

// ParseDueDate parses a serialized date in any of the accepted layouts.
func ParseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: not a valid date", ErrInvalidField)
}

// idField extracts an optional foreign-key id for key. JSON numbers
// arrive as float64.
func idField(fields map[string]any, key string) (*uint, bool, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, false, nil
	}
	if raw == nil {
		return nil, true, nil
	}
	f, ok := raw.(float64)
	if !ok || f < 0 || f != float64(uint(f)) {
		return nil, false, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidField, key)
	}
	id := uint(f)
	return &id, true, nil
}
