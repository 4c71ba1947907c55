// Package testutil provides fluent fixture builders for tests.
package testutil

import (
	"time"

	"ganttui/internal/models"
)

// TaskBuilder provides a fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &TaskBuilder{
		task: models.Task{
			Name:      "Test Task",
			Start:     start,
			End:       start.AddDate(0, 0, 5),
			Status:    models.TaskStatusPending,
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id int64) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.task.Name = name
	return b
}

func (b *TaskBuilder) WithParent(id int64) *TaskBuilder {
	b.task.ParentID = &id
	return b
}

func (b *TaskBuilder) WithDates(start, end time.Time) *TaskBuilder {
	b.task.Start = start
	b.task.End = end
	return b
}

func (b *TaskBuilder) WithStatus(s models.TaskStatus) *TaskBuilder {
	b.task.Status = s
	return b
}

func (b *TaskBuilder) WithRank(rank int) *TaskBuilder {
	b.task.Rank = rank
	return b
}

func (b *TaskBuilder) Collapsed() *TaskBuilder {
	b.task.Collapsed = true
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}
