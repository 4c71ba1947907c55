package tui

import (
	"context"
	"time"

	"ganttui/internal/chart"
	"ganttui/internal/config"
	"ganttui/internal/database"
	"ganttui/internal/models"
	"ganttui/internal/timescale"
	"ganttui/internal/util"
	"github.com/charmbracelet/bubbles/progress"
)

// ChartModel is the bubbletea model for the chart dashboard. It owns one
// viewport engine instance and the row list derived from the task tree.
type ChartModel struct {
	repo      database.Repository
	ctx       context.Context
	projectID int64
	project   models.Project

	engine    *chart.Engine
	tasks     []models.Task
	rows      []TaskView
	collapsed map[int64]bool

	selectedRow int
	initialized bool

	editing  *TaskEditState
	progress progress.Model

	panning    bool
	lastMouseX int
	lastMouseY int

	err     error
	Message string

	width, height int
}

// NewChartModel assembles the dashboard around a repository. The drag
// controller dispatches straight into the store; the model re-reads rows
// after each dispatch.
func NewChartModel(repo database.Repository, projectID int64) ChartModel {
	ctx := context.Background()

	m := ChartModel{
		repo:      repo,
		ctx:       ctx,
		projectID: projectID,
		engine:    chart.NewEngine(timescale.NewScaleModel(), timescale.DefaultTable()),
		collapsed: make(map[int64]bool),
		progress:  progress.New(progress.WithDefaultGradient()),
	}
	m.progress.Width = 30

	if project, err := repo.GetProject(ctx, projectID); err == nil {
		m.project = project
	}

	drag := m.engine.Drag()
	drag.OnEdit = func(e chart.DateEdit) {
		util.LogError("apply drag edit", repo.UpdateTaskDates(ctx, e.TargetID, e.Start, e.End))
	}
	drag.OnGroupShift = func(s chart.GroupShift) {
		util.LogError("apply group shift", repo.ShiftSubtree(ctx, s.TargetID, s.DeltaDays))
	}
	drag.Exists = func(id int64) bool {
		ok, err := repo.TaskExists(ctx, id)
		return err == nil && ok
	}

	m.refreshData()
	return m
}

// refreshData re-reads the task list and recomputes the ordered row list.
func (m *ChartModel) refreshData() {
	tasks, err := m.repo.GetTasks(m.ctx, m.projectID)
	if err != nil {
		m.err = err
		return
	}
	m.tasks = tasks
	m.collapsed = make(map[int64]bool)
	for _, t := range tasks {
		if t.Collapsed {
			m.collapsed[t.ID] = true
		}
	}
	m.rows = Flatten(BuildHierarchy(tasks), 0, m.collapsed, 0)
	if m.selectedRow >= len(m.rows) {
		m.selectedRow = len(m.rows) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// initViewport materializes the date window once the terminal size is
// known, restoring any persisted view state.
func (m *ChartModel) initViewport() {
	span, ok := models.SpanOf(m.tasks)
	if !ok {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		span = models.DateRange{Start: today.AddDate(0, 0, -7), End: today.AddDate(0, 0, 21)}
	}
	m.engine.InitViewport(float64(m.bodyWidth()), span)

	if state, ok := m.repo.LoadViewState(m.ctx); ok {
		m.engine.SetScale(state.ZoomScale)
		m.engine.OnBodyScroll(state.ScrollLeft, state.ScrollTop)
	} else {
		// Land with the first task a little inside the left edge.
		left := m.engine.Window().Offset(span.Start)*m.engine.DayWidth() - 4
		m.engine.OnBodyScroll(left, 0)
	}
	// Startup writes have no echo events in flight to suppress.
	m.engine.ReleaseScrollGuard()
	m.initialized = true
}

// saveViewState persists scale and scroll for the next session.
func (m *ChartModel) saveViewState() {
	body := m.engine.Offsets(chart.PaneBody)
	util.LogError("save view state", m.repo.SaveViewState(m.ctx, database.ViewState{
		ZoomScale:  m.engine.Scale(),
		ScrollLeft: body.Left,
		ScrollTop:  body.Top,
	}))
}

// bodyWidth returns the chart body width in cells.
func (m ChartModel) bodyWidth() int {
	w := m.width - config.LabelPaneWidth - 1
	if w < config.MinBodyWidth {
		w = config.MinBodyWidth
	}
	return w
}

// bodyHeight returns the number of visible chart rows.
func (m ChartModel) bodyHeight() int {
	h := m.height - config.HeaderHeight - config.FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

// firstVisibleRow derives the top row index from the body pane offset.
func (m ChartModel) firstVisibleRow() int {
	return int(m.engine.Offsets(chart.PaneBody).Top)
}

// rowAt maps a terminal y coordinate to a row index.
func (m ChartModel) rowAt(y int) (int, bool) {
	idx := m.firstVisibleRow() + y - config.HeaderHeight
	if y < config.HeaderHeight || idx < 0 || idx >= len(m.rows) {
		return 0, false
	}
	return idx, true
}

// barSpan returns the bar's pixel span in viewport coordinates.
func (m ChartModel) barSpan(v TaskView) (float64, float64) {
	dw := m.engine.DayWidth()
	left := m.engine.Offsets(chart.PaneBody).Left
	w := m.engine.Window()
	return w.Offset(v.Start)*dw - left, w.Offset(v.End)*dw - left
}

// selected returns the currently selected row, if any.
func (m ChartModel) selected() (TaskView, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.rows) {
		return TaskView{}, false
	}
	return m.rows[m.selectedRow], true
}

// doneCount returns completed and total task counts.
func (m ChartModel) doneCount() (int, int) {
	done := 0
	for _, t := range m.tasks {
		if t.Status == models.TaskStatusDone {
			done++
		}
	}
	return done, len(m.tasks)
}
