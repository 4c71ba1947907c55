package tui

import (
	"fmt"
	"strings"
	"time"

	"ganttui/internal/config"
	"ganttui/internal/database"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type taskEditMode int

const (
	editCreate taskEditMode = iota
	editCreateChild
	editModify
)

// TaskEditState is the create/edit modal: name plus the two dates,
// tab-cycled inputs, enter to apply.
type TaskEditState struct {
	mode     taskEditMode
	targetID int64
	parentID *int64

	name  textinput.Model
	start textinput.Model
	end   textinput.Model
	focus int

	errText string
}

func newTaskEditState(mode taskEditMode, target *TaskView) *TaskEditState {
	s := &TaskEditState{mode: mode}

	s.name = textinput.New()
	s.name.Placeholder = "Task name"
	s.name.CharLimit = config.MaxTaskNameLength
	s.name.Width = 40

	s.start = textinput.New()
	s.start.Placeholder = DateInputLayout
	s.start.Width = 18

	s.end = textinput.New()
	s.end.Placeholder = DateInputLayout
	s.end.Width = 18

	today := time.Now().UTC().Truncate(24 * time.Hour)

	switch mode {
	case editCreate:
		s.start.SetValue(today.Format(DateInputLayout))
		s.end.SetValue(today.AddDate(0, 0, config.DefaultTaskSpanDays).Format(DateInputLayout))
	case editCreateChild:
		s.parentID = &target.ID
		s.start.SetValue(FormatDate(target.Start))
		s.end.SetValue(FormatDate(target.End))
	case editModify:
		s.targetID = target.ID
		s.name.SetValue(target.Name)
		s.start.SetValue(FormatDate(target.Start))
		s.end.SetValue(FormatDate(target.End))
	}

	s.name.Focus()
	return s
}

func (s *TaskEditState) inputs() []*textinput.Model {
	return []*textinput.Model{&s.name, &s.start, &s.end}
}

func (s *TaskEditState) cycleFocus(delta int) {
	inputs := s.inputs()
	inputs[s.focus].Blur()
	s.focus = (s.focus + delta + len(inputs)) % len(inputs)
	inputs[s.focus].Focus()
}

// updateEditing routes key events into the modal while it is open.
func (m ChartModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.editing

	switch msg.String() {
	case "esc":
		m.editing = nil
		return m, nil
	case "tab", "down":
		s.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		s.cycleFocus(-1)
		return m, nil
	case "enter":
		if err := m.applyEdit(s); err != nil {
			s.errText = err.Error()
			return m, nil
		}
		m.editing = nil
		m.refreshData()
		return m, nil
	}

	var cmd tea.Cmd
	inputs := s.inputs()
	*inputs[s.focus], cmd = inputs[s.focus].Update(msg)
	return m, cmd
}

func (m *ChartModel) applyEdit(s *TaskEditState) error {
	name := strings.TrimSpace(s.name.Value())
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	start, err := ParseDateInput(strings.TrimSpace(s.start.Value()))
	if err != nil {
		return fmt.Errorf("start date: use %s", DateInputLayout)
	}
	end, err := ParseDateInput(strings.TrimSpace(s.end.Value()))
	if err != nil {
		return fmt.Errorf("end date: use %s", DateInputLayout)
	}
	if !end.After(start) {
		return fmt.Errorf("end date must be after start date")
	}

	switch s.mode {
	case editCreate, editCreateChild:
		_, err := m.repo.AddTask(m.ctx, m.projectID, database.TaskSeed{
			ParentID: s.parentID,
			Name:     name,
			Start:    start,
			End:      end,
			Rank:     len(m.tasks),
		})
		if err != nil {
			return err
		}
		m.Message = fmt.Sprintf("Created %q", name)
	case editModify:
		if err := m.repo.RenameTask(m.ctx, s.targetID, name); err != nil {
			return err
		}
		if err := m.repo.UpdateTaskDates(m.ctx, s.targetID, start, end); err != nil {
			return err
		}
		m.Message = fmt.Sprintf("Updated %q", name)
	}
	return nil
}

func (s *TaskEditState) View() string {
	title := "New Task"
	switch s.mode {
	case editCreateChild:
		title = "New Subtask"
	case editModify:
		title = "Edit Task"
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(title))
	b.WriteString("\n\n")
	b.WriteString("Name:  " + s.name.View() + "\n")
	b.WriteString("Start: " + s.start.View() + "\n")
	b.WriteString("End:   " + s.end.View() + "\n")
	if s.errText != "" {
		b.WriteString("\n" + CurrentTheme.Error.Render(s.errText))
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("enter save · tab next field · esc cancel"))
	return CurrentTheme.Input.Render(b.String())
}
