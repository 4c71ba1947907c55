package tui

import (
	"fmt"
	"time"

	"ganttui/internal/models"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes a schedule report for the project: the task
// tree with date spans and a completion summary.
func GeneratePDFReport(project models.Project, tasks []models.Task, path string) error {
	rootTasks := BuildHierarchy(tasks)
	flatTasks := Flatten(rootTasks, 0, nil, 0)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Schedule Report: %s", project.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	totalCompleted := 0

	pdf.SetFont("Arial", "", 12)
	if len(flatTasks) == 0 {
		pdf.Cell(0, 8, "  - No tasks scheduled.")
		pdf.Ln(8)
	}

	for _, t := range flatTasks {
		status := "[ ]"
		if t.Status == models.TaskStatusDone {
			status = "[x]"
			totalCompleted++
		}
		indent := ""
		for k := 0; k < t.Level; k++ {
			indent += "    "
		}
		line := fmt.Sprintf("%s%s %s", indent, status, t.Name)
		pdf.Cell(120, 8, line)
		pdf.Cell(0, 8, FormatSpan(t.Start, t.End))
		pdf.Ln(6)
	}

	// Summary
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total Tasks Completed: %d / %d", totalCompleted, len(flatTasks)))
	pdf.Ln(10)

	if span, ok := models.SpanOf(tasks); ok {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Project span: %s (%s)",
			FormatSpan(span.Start, span.End), FormatDays(span.Days())))
		pdf.Ln(8)
	}

	return pdf.OutputFileAndClose(path)
}

func (m ChartModel) exportPDF() (string, error) {
	path, err := exportPath(m.project.Slug, "pdf")
	if err != nil {
		return "", err
	}
	return path, GeneratePDFReport(m.project, m.tasks, path)
}
