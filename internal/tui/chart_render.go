package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"ganttui/internal/chart"
	"ganttui/internal/config"
	"ganttui/internal/models"
	"ganttui/internal/timescale"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m ChartModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.editing != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.editing.View())
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.renderBody())
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader draws the two axis rows: major tick labels on top, minor
// below. Labels are written at unit boundaries found by walking columns.
func (m ChartModel) renderHeader() string {
	w := m.bodyWidth()
	dw := m.engine.DayWidth()
	left := m.engine.Offsets(chart.PaneHeader).Left
	win := m.engine.Window()
	def := m.engine.TickDefinition()

	major := make([]byte, w)
	minor := make([]byte, w)
	for i := range major {
		major[i] = ' '
		minor[i] = ' '
	}

	var prevMajor, prevMinor int64 = math.MinInt64, math.MinInt64
	for col := 0; col < w; col++ {
		t := win.DateAt((left + float64(col)) / dw)
		if idx := unitIndex(t, def.MajorUnit, 1); idx != prevMajor {
			if prevMajor != math.MinInt64 || col == 0 {
				placeLabel(major, col, t.Format(def.MajorFormat))
			}
			prevMajor = idx
		}
		if idx := unitIndex(t, def.MinorUnit, def.MinorInterval); idx != prevMinor {
			placeLabel(minor, col, t.Format(def.MinorFormat))
			prevMinor = idx
		}
	}

	pad := strings.Repeat(" ", config.LabelPaneWidth)
	title := ansi.Truncate(m.project.Name, config.LabelPaneWidth, config.TruncationSuffix)
	titlePad := strings.Repeat(" ", config.LabelPaneWidth-ansi.StringWidth(title))

	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render(title))
	b.WriteString(titlePad)
	b.WriteString("│")
	b.WriteString(CurrentTheme.AxisMajor.Render(string(major)))
	b.WriteString("\n")
	b.WriteString(pad)
	b.WriteString("│")
	b.WriteString(CurrentTheme.AxisMinor.Render(string(minor)))
	b.WriteString("\n")
	return b.String()
}

// placeLabel copies an ASCII label into the row starting at col, clipping
// at the row edge and refusing to overwrite a previous label.
func placeLabel(row []byte, col int, label string) {
	if col > 0 && row[col-1] != ' ' {
		return
	}
	for i := 0; i < len(label) && col+i < len(row); i++ {
		if row[col+i] != ' ' {
			return
		}
		row[col+i] = label[i]
	}
}

// unitIndex returns a monotone index identifying which tick bucket a date
// falls in. Consecutive columns with differing indexes mark a boundary.
func unitIndex(t time.Time, u timescale.Unit, interval int) int64 {
	if interval < 1 {
		interval = 1
	}
	switch u {
	case timescale.UnitHour:
		return (t.Unix() / 3600) / int64(interval)
	case timescale.UnitDay:
		return div(t.Unix(), 86400) / int64(interval)
	case timescale.UnitWeek:
		y, wk := t.ISOWeek()
		return int64(y)*100 + int64(wk)
	case timescale.UnitMonth:
		return (int64(t.Year())*12 + int64(t.Month()) - 1) / int64(interval)
	case timescale.UnitQuarter:
		return int64(t.Year())*4 + (int64(t.Month())-1)/3
	case timescale.UnitYear:
		return int64(t.Year()) / int64(interval)
	}
	return div(t.Unix(), 86400)
}

// div is floor division, so pre-1970 dates bucket correctly.
func div(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func (m ChartModel) renderBody() string {
	w := m.bodyWidth()
	h := m.bodyHeight()
	first := m.firstVisibleRow()
	grid, todayCol := m.gridLine(w)

	var b strings.Builder
	for i := 0; i < h; i++ {
		idx := first + i
		if idx >= 0 && idx < len(m.rows) {
			v := m.rows[idx]
			b.WriteString(m.renderLabel(v, idx == m.selectedRow))
			b.WriteString("│")
			b.WriteString(m.renderBar(v, grid, w, todayCol))
		} else {
			b.WriteString(strings.Repeat(" ", config.LabelPaneWidth))
			b.WriteString("│")
			b.WriteString(styledGrid(grid, 0, w, todayCol))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// gridLine precomputes the background row: minor tick columns and the
// today marker. The second return is the today column, -1 when today is
// off screen.
func (m ChartModel) gridLine(w int) ([]rune, int) {
	dw := m.engine.DayWidth()
	left := m.engine.Offsets(chart.PaneBody).Left
	win := m.engine.Window()
	def := m.engine.TickDefinition()

	line := make([]rune, w)
	for i := range line {
		line[i] = ' '
	}
	var prev int64 = math.MinInt64
	for col := 0; col < w; col++ {
		t := win.DateAt((left + float64(col)) / dw)
		if idx := unitIndex(t, def.MinorUnit, def.MinorInterval); idx != prev {
			if prev != math.MinInt64 {
				line[col] = '·'
			}
			prev = idx
		}
	}
	today := time.Now().UTC()
	todayCol := int(math.Round(win.Offset(today)*dw - left))
	if todayCol < 0 || todayCol >= w {
		return line, -1
	}
	line[todayCol] = '┊'
	return line, todayCol
}

// styledGrid renders grid[from:to], giving the today marker its own style.
func styledGrid(grid []rune, from, to, todayCol int) string {
	if todayCol < from || todayCol >= to {
		return CurrentTheme.Grid.Render(string(grid[from:to]))
	}
	var b strings.Builder
	if todayCol > from {
		b.WriteString(CurrentTheme.Grid.Render(string(grid[from:todayCol])))
	}
	b.WriteString(CurrentTheme.Today.Render(string(grid[todayCol])))
	if todayCol+1 < to {
		b.WriteString(CurrentTheme.Grid.Render(string(grid[todayCol+1 : to])))
	}
	return b.String()
}

func (m ChartModel) renderLabel(v TaskView, selected bool) string {
	marker := "  "
	if v.HasChildren() {
		if v.Expanded {
			marker = "▾ "
		} else {
			marker = "▸ "
		}
	}
	text := strings.Repeat("  ", v.Level) + marker + statusGlyph(v.Status) + " " + v.Name
	text = ansi.Truncate(text, config.LabelPaneWidth, config.TruncationSuffix)
	pad := strings.Repeat(" ", config.LabelPaneWidth-ansi.StringWidth(text))

	style := CurrentTheme.Label
	if v.Status == models.TaskStatusDone {
		style = CurrentTheme.LabelDone
	}
	if selected {
		style = CurrentTheme.Selected
	}
	return style.Render(text) + pad
}

// renderBar draws one chart row: the task bar over the grid background,
// clipped to the viewport.
func (m ChartModel) renderBar(v TaskView, grid []rune, w, todayCol int) string {
	startPx, endPx := m.barSpan(v)
	startCol := int(math.Round(startPx))
	endCol := int(math.Round(endPx))
	if endCol <= startCol {
		endCol = startCol + 1
	}
	if endCol <= 0 || startCol >= w {
		return styledGrid(grid, 0, w, todayCol)
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > w {
		endCol = w
	}

	barRune := '█'
	style := m.barStyle(v)
	if v.HasChildren() {
		barRune = '▬'
	}

	var b strings.Builder
	if startCol > 0 {
		b.WriteString(styledGrid(grid, 0, startCol, todayCol))
	}
	b.WriteString(style.Render(strings.Repeat(string(barRune), endCol-startCol)))
	if endCol < w {
		b.WriteString(styledGrid(grid, endCol, w, todayCol))
	}
	return b.String()
}

func (m ChartModel) barStyle(v TaskView) lipgloss.Style {
	if v.HasChildren() {
		return CurrentTheme.BarSummary
	}
	switch v.Status {
	case models.TaskStatusActive:
		return CurrentTheme.BarActive
	case models.TaskStatusDone:
		return CurrentTheme.BarDone
	case models.TaskStatusBlocked:
		return CurrentTheme.BarBlocked
	default:
		return CurrentTheme.BarPending
	}
}

func (m ChartModel) renderFooter() string {
	done, total := m.doneCount()
	frac := 0.0
	if total > 0 {
		frac = float64(done) / float64(total)
	}

	status := fmt.Sprintf("%s  %s  %s",
		m.progress.ViewAs(frac),
		FormatTaskCount(done, total),
		FormatZoom(m.engine.Scale(), m.engine.TickDefinition().Label))

	var second string
	switch {
	case m.err != nil:
		second = CurrentTheme.Error.Render("Error: " + m.err.Error())
	case m.Message != "":
		second = CurrentTheme.Message.Render(m.Message)
	default:
		second = CurrentTheme.Dim.Render(
			"n new · N subtask · e edit · d delete · s status · space fold · +/- zoom · drag bars · x/i/p export · q quit")
	}
	return status + "\n" + ansi.Truncate(second, m.width, config.TruncationSuffix)
}
