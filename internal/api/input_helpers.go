package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// formTimeLayout matches the value format of datetime-local inputs.
const formTimeLayout = "2006-01-02T15:04"

// parseFormTime reads a datetime-local value in location. A value that does
// not parse yields the zero time, which validation reports as blank.
func parseFormTime(raw string, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	for _, layout := range []string{formTimeLayout, "2006-01-02T15:04:05"} {
		if value, err := time.ParseInLocation(layout, trimmed, location); err == nil {
			return value
		}
	}
	return time.Time{}
}

func formatFormTime(value time.Time, location *time.Location) string {
	if value.IsZero() {
		return ""
	}
	if location == nil {
		location = time.UTC
	}
	return value.In(location).Format(formTimeLayout)
}

// parseOptionalInt maps a blank value to nil. Non-numeric input becomes an
// out-of-domain value so the inclusion check reports it.
func parseOptionalInt(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		value = -1
	}
	return &value
}

// parseAmount maps malformed dose input to an out-of-domain value so the
// inclusion check reports it.
func parseAmount(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return -1
	}
	return value
}

func parseEntryID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
