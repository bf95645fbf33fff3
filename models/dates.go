package models

import (
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// ParseDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates, the two
// formats the dashboard sends.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnly, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", value)
}
