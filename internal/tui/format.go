package tui

import (
	"fmt"
	"time"

	"ganttui/internal/models"
)

// DateInputLayout is the layout users type dates in.
const DateInputLayout = "2006-01-02"

// FormatDate renders a timestamp for the label pane and modals. Sub-day
// components show only when present, so snapped quarter-day edits stay
// visible without cluttering whole-day tasks.
func FormatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format(DateInputLayout)
	}
	return t.Format("2006-01-02 15:04")
}

// FormatSpan renders a task's date pair.
func FormatSpan(start, end time.Time) string {
	return fmt.Sprintf("%s → %s", FormatDate(start), FormatDate(end))
}

// FormatDays renders a fractional day count, trimming a trailing ".0".
func FormatDays(days float64) string {
	if days == float64(int(days)) {
		return fmt.Sprintf("%dd", int(days))
	}
	return fmt.Sprintf("%.2fd", days)
}

// FormatTaskCount summarizes completion for the footer.
func FormatTaskCount(done, total int) string {
	if total == 0 {
		return "No tasks"
	}
	return fmt.Sprintf("%d/%d tasks done", done, total)
}

// FormatZoom renders the zoom indicator, e.g. "1.0x (day)".
func FormatZoom(scale float64, tickLabel string) string {
	return fmt.Sprintf("%.2gx (%s)", scale, tickLabel)
}

// ParseDateInput parses a user-typed date, accepting a bare day or a
// day with time.
func ParseDateInput(v string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateInputLayout, v, time.UTC); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", v, time.UTC)
}

func statusGlyph(s models.TaskStatus) string {
	switch s {
	case models.TaskStatusDone:
		return "✓"
	case models.TaskStatusActive:
		return "▶"
	case models.TaskStatusBlocked:
		return "✗"
	default:
		return "·"
	}
}
