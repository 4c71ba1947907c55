package tui

import "ganttui/internal/models"

// TaskView wraps a Task with the tree metadata the chart renderer needs.
type TaskView struct {
	models.Task
	Children []TaskView
	Level    int
	Expanded bool
}

// HasChildren reports whether the row renders as a summary bar.
func (v TaskView) HasChildren() bool {
	return len(v.Children) > 0
}
