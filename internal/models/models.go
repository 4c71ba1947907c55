package models

import "time"

// TaskStatus enumerates the lifecycle states of a chart task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusActive  TaskStatus = "active"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusBlocked TaskStatus = "blocked"
)

// Project represents an isolated chart environment.
type Project struct {
	ID   int64
	Name string
	Slug string
}

// Task represents a single bar on the chart. Start and End are calendar
// timestamps; sub-day precision carries the quarter-day drag snapping.
type Task struct {
	ID        int64
	UID       string // stable public identifier, survives export/import
	ParentID  *int64 // for subtasks
	ProjectID *int64
	Name      string
	Start     time.Time
	End       time.Time
	Status    TaskStatus
	Rank      int
	Collapsed bool
	CreatedAt time.Time
}

// Duration returns the task's span on the time axis.
func (t Task) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// DateRange is a calendar span with Start strictly before End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the span length in fractional days.
func (r DateRange) Days() float64 {
	return r.End.Sub(r.Start).Hours() / 24
}

// Union widens the range to include the other range.
func (r DateRange) Union(other DateRange) DateRange {
	out := r
	if other.Start.Before(out.Start) {
		out.Start = other.Start
	}
	if other.End.After(out.End) {
		out.End = other.End
	}
	return out
}

// SpanOf computes the covering date range of a task list. The second return
// is false when the list is empty.
func SpanOf(tasks []Task) (DateRange, bool) {
	if len(tasks) == 0 {
		return DateRange{}, false
	}
	span := DateRange{Start: tasks[0].Start, End: tasks[0].End}
	for _, t := range tasks[1:] {
		span = span.Union(DateRange{Start: t.Start, End: t.End})
	}
	return span, true
}
