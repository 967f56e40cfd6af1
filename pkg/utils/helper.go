package utils

import (
	"fmt"
	"time"
)

// ParseBookingDate parses an ISO calendar date and strips any time-of-day.
// Slot comparisons are done on calendar-day granularity, so every stored
// date is pinned to midnight UTC.
func ParseBookingDate(value string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		// Tolerate full timestamps from older clients
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date format %q", value)
		}
	}

	return NormalizeDate(parsed), nil
}

// NormalizeDate truncates a timestamp to midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
