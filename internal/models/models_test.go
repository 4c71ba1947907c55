package models

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRangeDays(t *testing.T) {
	r := DateRange{Start: date(2026, 1, 1), End: date(2026, 1, 11)}
	if got := r.Days(); got != 10 {
		t.Fatalf("expected 10 days, got %v", got)
	}
}

func TestDateRangeUnion(t *testing.T) {
	a := DateRange{Start: date(2026, 1, 5), End: date(2026, 1, 10)}
	b := DateRange{Start: date(2026, 1, 1), End: date(2026, 1, 8)}
	u := a.Union(b)
	if !u.Start.Equal(date(2026, 1, 1)) || !u.End.Equal(date(2026, 1, 10)) {
		t.Fatalf("unexpected union: %v", u)
	}
}

func TestSpanOf(t *testing.T) {
	if _, ok := SpanOf(nil); ok {
		t.Fatal("expected no span for empty list")
	}
	tasks := []Task{
		{Start: date(2026, 2, 3), End: date(2026, 2, 7)},
		{Start: date(2026, 1, 20), End: date(2026, 1, 25)},
		{Start: date(2026, 2, 5), End: date(2026, 3, 1)},
	}
	span, ok := SpanOf(tasks)
	if !ok {
		t.Fatal("expected a span")
	}
	if !span.Start.Equal(date(2026, 1, 20)) || !span.End.Equal(date(2026, 3, 1)) {
		t.Fatalf("unexpected span: %v", span)
	}
}
