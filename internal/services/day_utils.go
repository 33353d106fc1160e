package services

import (
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// DateAtLocation truncates value to midnight of its calendar day in location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns the half-open [midnight, next midnight) span covering
// value's calendar day in location. "On day D" always means the user-local
// calendar day, never the UTC one.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// NoonOn returns 12:00 on day's calendar date in location. New-entry forms
// anchor manual time entry at midday rather than midnight.
func NoonOn(day time.Time, location *time.Location) time.Time {
	return DateAtLocation(day, location).Add(12 * time.Hour)
}

// ParseDay parses an ISO calendar date (2006-01-02) at midnight in location.
func ParseDay(raw string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	return time.ParseInLocation(dayLayout, strings.TrimSpace(raw), location)
}

// FormatDay renders value's calendar date in location as an ISO date.
func FormatDay(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(dayLayout)
}

// WithinDay reports whether ts falls inside the half-open [dayStart, dayEnd)
// span produced by DayRange.
func WithinDay(ts time.Time, dayStart time.Time, dayEnd time.Time) bool {
	return !ts.Before(dayStart) && ts.Before(dayEnd)
}
