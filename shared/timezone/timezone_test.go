package timezone_test

import (
	"testing"
	"time"

	"lemon/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}

	if !appTime.Equal(utcTime) {
		t.Error("Expected conversion to preserve the instant")
	}
}

func TestParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2027-02-15")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed.Year() != 2027 || parsed.Month() != time.February || parsed.Day() != 15 {
		t.Errorf("Parse() = %v, want 2027-02-15", parsed)
	}

	if parsed.Location() != timezone.GetLocation() {
		t.Error("Parse() did not use the application location")
	}

	formatted := timezone.Format(parsed, "2006-01-02")
	if formatted != "2027-02-15" {
		t.Errorf("Format() = %q, want %q", formatted, "2027-02-15")
	}

	if _, err := timezone.Parse("2006-01-02", "15/02/2027"); err == nil {
		t.Error("Parse() accepted a malformed date")
	}
}
