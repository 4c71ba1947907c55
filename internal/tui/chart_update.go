package tui

import (
	"fmt"

	"ganttui/internal/chart"
	"ganttui/internal/config"
	"ganttui/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// guardReleaseMsg is self-addressed mail: it arrives on the next event
// loop turn, after any echoed scroll events from the same write have
// already been swallowed by the guard.
type guardReleaseMsg struct{}

func releaseGuardCmd() tea.Cmd {
	return func() tea.Msg { return guardReleaseMsg{} }
}

const (
	keyScrollStepCells  = 4
	wheelScrollStepPx   = 3.0
	wheelScrollStepRows = 1.0
)

func (m ChartModel) Init() tea.Cmd {
	return nil
}

func (m ChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case guardReleaseMsg:
		m.engine.ReleaseScrollGuard()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetViewportWidth(float64(m.bodyWidth()))
		if !m.initialized {
			m.initViewport()
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing != nil {
			return m.updateEditing(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.editing != nil {
			return m, nil
		}
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m ChartModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	body := m.engine.Offsets(chart.PaneBody)

	switch msg.String() {
	case "q", "ctrl+c":
		m.saveViewState()
		return m, tea.Quit

	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, m.ensureSelectedVisible()

	case "down", "j":
		if m.selectedRow < len(m.rows)-1 {
			m.selectedRow++
		}
		return m, m.ensureSelectedVisible()

	case "left", "h":
		return m.scrollBody(body.Left-float64(keyScrollStepCells), body.Top)

	case "right", "l":
		return m.scrollBody(body.Left+float64(keyScrollStepCells), body.Top)

	case "home", "g":
		if span, ok := models.SpanOf(m.tasks); ok {
			left := m.engine.Window().Offset(span.Start)*m.engine.DayWidth() - 4
			return m.scrollBody(left, body.Top)
		}
		return m, nil

	case "+", "=":
		m.engine.OnZoomGesture(config.ZoomStepFactor, nil)
		return m, releaseGuardCmd()

	case "-", "_":
		m.engine.OnZoomGesture(1/config.ZoomStepFactor, nil)
		return m, releaseGuardCmd()

	case "0":
		m.engine.SetScale(config.DefaultZoomScale)
		return m, nil

	case " ":
		if v, ok := m.selected(); ok && v.HasChildren() {
			if err := m.repo.SetTaskCollapsed(m.ctx, v.ID, v.Expanded); err != nil {
				m.err = err
			} else {
				m.refreshData()
			}
		}
		return m, nil

	case "n":
		m.editing = newTaskEditState(editCreate, nil)
		return m, nil

	case "N":
		if v, ok := m.selected(); ok {
			m.editing = newTaskEditState(editCreateChild, &v)
		}
		return m, nil

	case "e", "enter":
		if v, ok := m.selected(); ok {
			m.editing = newTaskEditState(editModify, &v)
		}
		return m, nil

	case "s":
		if v, ok := m.selected(); ok {
			next := nextStatus(v.Status)
			if err := m.repo.SetTaskStatus(m.ctx, v.ID, next); err != nil {
				m.err = err
			} else {
				m.refreshData()
			}
		}
		return m, nil

	case "d":
		if v, ok := m.selected(); ok {
			if err := m.repo.DeleteTask(m.ctx, v.ID); err != nil {
				m.err = err
			} else {
				m.Message = fmt.Sprintf("Deleted %q", v.Name)
				m.refreshData()
			}
		}
		return m, nil

	case "x":
		m.runExport("YAML", m.exportYAML)
		return m, nil

	case "i":
		m.runExport("iCalendar", m.exportICS)
		return m, nil

	case "p":
		m.runExport("PDF", m.exportPDF)
		return m, nil

	case "T":
		if CurrentTheme.Name == Themes["default"].Name {
			SetTheme("dark")
		} else {
			SetTheme("default")
		}
		return m, nil
	}
	return m, nil
}

// ensureSelectedVisible scrolls vertically so the selection stays on
// screen. Like every other programmatic scroll, the guard release is
// scheduled for the next event loop turn.
func (m *ChartModel) ensureSelectedVisible() tea.Cmd {
	first := m.firstVisibleRow()
	body := m.engine.Offsets(chart.PaneBody)
	switch {
	case m.selectedRow < first:
		m.engine.OnBodyScroll(body.Left, float64(m.selectedRow))
	case m.selectedRow >= first+m.bodyHeight():
		m.engine.OnBodyScroll(body.Left, float64(m.selectedRow-m.bodyHeight()+1))
	default:
		return nil
	}
	return releaseGuardCmd()
}

// scrollBody writes a body scroll position and schedules the guard
// release for the next event loop turn.
func (m ChartModel) scrollBody(left, top float64) (tea.Model, tea.Cmd) {
	m.engine.OnBodyScroll(left, top)
	return m, releaseGuardCmd()
}

func (m ChartModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	bodyOriginX := config.LabelPaneWidth + 1
	viewportX := float64(msg.X - bodyOriginX)
	body := m.engine.Offsets(chart.PaneBody)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.Ctrl {
			m.engine.OnZoomGesture(config.ZoomStepFactor, zoomPointer(msg.X, bodyOriginX, m.bodyWidth()))
			return m, releaseGuardCmd()
		}
		if msg.Shift {
			return m.scrollBody(body.Left-wheelScrollStepPx, body.Top)
		}
		return m.scrollBody(body.Left, body.Top-wheelScrollStepRows)

	case tea.MouseButtonWheelDown:
		if msg.Ctrl {
			m.engine.OnZoomGesture(1/config.ZoomStepFactor, zoomPointer(msg.X, bodyOriginX, m.bodyWidth()))
			return m, releaseGuardCmd()
		}
		if msg.Shift {
			return m.scrollBody(body.Left+wheelScrollStepPx, body.Top)
		}
		return m.scrollBody(body.Left, body.Top+wheelScrollStepRows)

	case tea.MouseButtonWheelLeft:
		return m.scrollBody(body.Left-wheelScrollStepPx, body.Top)

	case tea.MouseButtonWheelRight:
		return m.scrollBody(body.Left+wheelScrollStepPx, body.Top)
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.handleLeftPress(msg, viewportX)
		case tea.MouseButtonRight:
			m.panning = true
			m.lastMouseX = msg.X
			m.lastMouseY = msg.Y
			return m, nil
		}

	case tea.MouseActionMotion:
		if m.engine.DragActive() {
			m.engine.OnPointerMove(viewportX)
			m.refreshData()
			return m, nil
		}
		if m.panning {
			if m.engine.GuardHeld() {
				// Keep the anchor; this delta applies once the guard
				// clears instead of being dropped.
				return m, nil
			}
			dx := float64(m.lastMouseX - msg.X)
			dy := float64(m.lastMouseY - msg.Y)
			m.lastMouseX = msg.X
			m.lastMouseY = msg.Y
			m.engine.Pan(dx, dy)
			return m, releaseGuardCmd()
		}

	case tea.MouseActionRelease:
		if m.engine.DragActive() {
			m.engine.EndDrag()
			m.refreshData()
		}
		m.panning = false
		return m, nil
	}
	return m, nil
}

func (m ChartModel) handleLeftPress(msg tea.MouseMsg, viewportX float64) (tea.Model, tea.Cmd) {
	row, ok := m.rowAt(msg.Y)
	if !ok {
		return m, nil
	}
	m.selectedRow = row

	if msg.X < config.LabelPaneWidth {
		v := m.rows[row]
		if v.HasChildren() {
			if err := m.repo.SetTaskCollapsed(m.ctx, v.ID, v.Expanded); err != nil {
				m.err = err
			} else {
				m.refreshData()
			}
		}
		return m, nil
	}

	v := m.rows[row]
	if mode, ok := m.hitTestBar(v, viewportX); ok {
		m.engine.BeginDrag(v.ID, mode, v.Start, v.End, viewportX)
	}
	return m, nil
}

// hitTestBar classifies a press inside a bar. Edge cells grab a resize
// handle; summary bars always move as a group.
func (m ChartModel) hitTestBar(v TaskView, viewportX float64) (chart.DragMode, bool) {
	startPx, endPx := m.barSpan(v)
	if viewportX < startPx-0.5 || viewportX > endPx+0.5 {
		return 0, false
	}
	if v.HasChildren() {
		return chart.DragGroupMove, true
	}
	if viewportX <= startPx+1 {
		return chart.DragResizeStart, true
	}
	if viewportX >= endPx-1 {
		return chart.DragResizeEnd, true
	}
	return chart.DragMove, true
}

// zoomPointer converts an absolute column to a viewport-relative zoom
// anchor, or nil when the pointer sits outside the chart body.
func zoomPointer(x, bodyOriginX, bodyWidth int) *float64 {
	rel := float64(x - bodyOriginX)
	if rel < 0 || rel >= float64(bodyWidth) {
		return nil
	}
	return &rel
}

func nextStatus(s models.TaskStatus) models.TaskStatus {
	switch s {
	case models.TaskStatusPending:
		return models.TaskStatusActive
	case models.TaskStatusActive:
		return models.TaskStatusDone
	case models.TaskStatusDone:
		return models.TaskStatusBlocked
	default:
		return models.TaskStatusPending
	}
}

// runExport executes one export flavor and surfaces the result in the
// footer.
func (m *ChartModel) runExport(kind string, fn func() (string, error)) {
	path, err := fn()
	if err != nil {
		m.err = fmt.Errorf("%s export: %w", kind, err)
		return
	}
	m.err = nil
	m.Message = fmt.Sprintf("%s export written to %s", kind, path)
}
