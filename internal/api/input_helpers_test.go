package api

import (
	"testing"
	"time"
)

func TestParseFormTime(t *testing.T) {
	location, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	parsed := parseFormTime("2025-03-10T08:30", location)
	want := time.Date(2025, 3, 10, 8, 30, 0, 0, location)
	if !parsed.Equal(want) {
		t.Fatalf("parseFormTime = %v, want %v", parsed, want)
	}

	withSeconds := parseFormTime("2025-03-10T08:30:45", location)
	if withSeconds.Second() != 45 {
		t.Fatalf("expected seconds layout to parse, got %v", withSeconds)
	}

	if !parseFormTime("March 10th", location).IsZero() {
		t.Fatal("expected zero time for unparseable input")
	}
	if !parseFormTime("", location).IsZero() {
		t.Fatal("expected zero time for empty input")
	}
}

func TestFormatFormTimeZeroIsEmpty(t *testing.T) {
	if got := formatFormTime(time.Time{}, time.UTC); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
	value := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := formatFormTime(value, time.UTC); got != "2025-03-10T12:00" {
		t.Fatalf("formatFormTime = %q", got)
	}
}

func TestParseOptionalInt(t *testing.T) {
	if got := parseOptionalInt(""); got != nil {
		t.Fatalf("expected nil for blank input, got %v", *got)
	}
	if got := parseOptionalInt(" 4 "); got == nil || *got != 4 {
		t.Fatalf("expected 4, got %v", got)
	}
	if got := parseOptionalInt("soft"); got == nil || *got != -1 {
		t.Fatalf("expected out-of-domain stand-in for non-numeric input, got %v", got)
	}
}

func TestParseAmount(t *testing.T) {
	if got := parseAmount("0.5"); got != 0.5 {
		t.Fatalf("parseAmount(0.5) = %v", got)
	}
	if got := parseAmount("half"); got != -1 {
		t.Fatalf("expected out-of-domain stand-in for non-numeric input, got %v", got)
	}
	if got := parseAmount(""); got != -1 {
		t.Fatalf("expected out-of-domain stand-in for empty input, got %v", got)
	}
}
