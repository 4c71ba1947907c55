package tui

import (
	"testing"
	"time"
)

func TestFormatDateHidesMidnight(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-03-02" {
		t.Errorf("FormatDate(midnight) = %q", got)
	}

	// A quarter-day snap lands at 06:00 and must stay visible.
	d = time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "2026-03-02 06:00" {
		t.Errorf("FormatDate(06:00) = %q", got)
	}
}

func TestParseDateInputAcceptsBothForms(t *testing.T) {
	got, err := ParseDateInput("2026-03-02")
	if err != nil {
		t.Fatalf("bare date: %v", err)
	}
	if got.Hour() != 0 || got.Location() != time.UTC {
		t.Errorf("bare date parsed as %v", got)
	}

	got, err = ParseDateInput("2026-03-02 14:30")
	if err != nil {
		t.Fatalf("date with time: %v", err)
	}
	if got.Hour() != 14 || got.Minute() != 30 {
		t.Errorf("timed date parsed as %v", got)
	}

	if _, err := ParseDateInput("tomorrow"); err == nil {
		t.Error("expected error for unparseable input")
	}
}

func TestFormatDays(t *testing.T) {
	if got := FormatDays(3); got != "3d" {
		t.Errorf("FormatDays(3) = %q", got)
	}
	if got := FormatDays(2.25); got != "2.25d" {
		t.Errorf("FormatDays(2.25) = %q", got)
	}
}

func TestFormatTaskCount(t *testing.T) {
	if got := FormatTaskCount(0, 0); got != "No tasks" {
		t.Errorf("empty count = %q", got)
	}
	if got := FormatTaskCount(2, 5); got != "2/5 tasks done" {
		t.Errorf("count = %q", got)
	}
}

func TestFormatZoomIncludesTickLabel(t *testing.T) {
	if got := FormatZoom(1.0, "day"); got != "1x (day)" {
		t.Errorf("FormatZoom = %q", got)
	}
}
