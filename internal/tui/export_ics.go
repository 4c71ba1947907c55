package tui

import (
	"fmt"
	"os"
	"time"

	"ganttui/internal/models"
	ics "github.com/arran4/golang-ical"
)

// BuildCalendar renders the task list as an iCalendar feed, one event per
// task, keyed by the task's public UID.
func BuildCalendar(project models.Project, tasks []models.Task) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ganttui//EN")
	cal.SetName(project.Name)

	now := time.Now().UTC()
	for _, t := range tasks {
		event := cal.AddEvent(t.UID)
		event.SetDtStampTime(now)
		event.SetCreatedTime(t.CreatedAt)
		event.SetStartAt(t.Start)
		event.SetEndAt(t.End)
		event.SetSummary(t.Name)
		if t.Status != "" {
			event.SetDescription(fmt.Sprintf("Status: %s", t.Status))
		}
	}
	return cal
}

func (m ChartModel) exportICS() (string, error) {
	cal := BuildCalendar(m.project, m.tasks)
	path, err := exportPath(m.project.Slug, "ics")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(cal.Serialize()), 0o644)
}
