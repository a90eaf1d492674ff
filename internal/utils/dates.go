package utils

import "time"

// DateOnly truncates a timestamp to its calendar date in UTC, for the
// date-granularity comparisons due dates and expirations use.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
