// Package chart implements the timeline viewport and interaction
// coordination engine: the materialized date window with adaptive
// buffering, scroll synchronization across the three panes, and the
// pointer-drag state machine that turns pixel deltas into calendar edits.
package chart

import (
	"math"
	"time"

	"ganttui/internal/models"
	"ganttui/internal/timescale"
)

// DateWindow is the calendar span currently materialized into pixel space.
// It always contains the scrollable region plus a buffer on each side, and
// it only ever grows.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// Days returns the window length in fractional days.
func (w DateWindow) Days() float64 {
	return daysBetween(w.Start, w.End)
}

// DateAt returns the calendar date at the given day offset from the
// window start.
func (w DateWindow) DateAt(days float64) time.Time {
	return addDays(w.Start, days)
}

// Offset returns the day offset of a date from the window start.
func (w DateWindow) Offset(t time.Time) float64 {
	return daysBetween(w.Start, t)
}

// RangeManager owns the date window. It sizes the buffer adaptively from
// the current tick granularity and expands the window when the scroll
// position nears an edge, correcting the scroll offset in the same call so
// the centered date never moves visually.
type RangeManager struct {
	window DateWindow
	ticks  timescale.Table
}

// NewRangeManager returns a manager using the given tick table. The window
// is empty until Init.
func NewRangeManager(ticks timescale.Table) *RangeManager {
	return &RangeManager{ticks: ticks}
}

// Window returns the current date window.
func (m *RangeManager) Window() DateWindow {
	return m.window
}

// Ticks returns the tick table the manager selects granularity from.
func (m *RangeManager) Ticks() timescale.Table {
	return m.ticks
}

// BufferDays computes the buffer, in whole days, added to each side of the
// window. Finer granularities keep the buffer small since extensions are
// cheap; coarser granularities pre-allocate more so extensions stay rare.
func (m *RangeManager) BufferDays(viewportDays, scale float64) int {
	interval := m.ticks.Select(scale).IntervalDays()
	switch {
	case interval < 1:
		return maxInt(ceil(viewportDays*3), ceil(interval*50))
	case interval <= 7:
		return maxInt(ceil(viewportDays*5), ceil(interval*30))
	case interval <= 31:
		return maxInt(ceil(viewportDays*8), ceil(interval*20))
	default:
		return maxInt(ceil(viewportDays*15), ceil(interval*15))
	}
}

// Init materializes the window around a base range, widened by the initial
// buffer on each side.
func (m *RangeManager) Init(viewportWidthPx, dayWidth, scale float64, base models.DateRange) {
	viewportDays := math.Ceil(viewportWidthPx / dayWidth)
	buffer := m.BufferDays(viewportDays, scale)
	m.window = DateWindow{
		Start: addDays(base.Start, -float64(buffer)),
		End:   addDays(base.End, float64(buffer)),
	}
}

// ExpandIfNeeded grows the window when the scroll offset is within half a
// viewport of either edge. When an extension happens the corrected scroll
// offset is applied synchronously through setScroll before returning, so
// the date under the viewport center stays put. Reports whether the window
// changed.
func (m *RangeManager) ExpandIfNeeded(scrollLeftPx, viewportWidthPx, dayWidth, scale float64, setScroll func(float64)) bool {
	if dayWidth <= 0 || m.window.Days() <= 0 {
		return false
	}

	viewportDays := math.Ceil(viewportWidthPx / dayWidth)
	threshold := viewportDays * 0.5
	totalDays := m.window.Days()
	scrollDays := scrollLeftPx / dayWidth

	// Resolve the centered date before any mutation.
	centerDate := m.window.DateAt(scrollDays + viewportDays/2)

	expanded := false
	buffer := float64(m.BufferDays(viewportDays, scale))
	if scrollDays < threshold {
		m.window.Start = addDays(m.window.Start, -buffer)
		expanded = true
	}
	if scrollDays > totalDays-threshold-viewportDays {
		m.window.End = addDays(m.window.End, buffer)
		expanded = true
	}
	if !expanded {
		return false
	}

	newScroll := (m.window.Offset(centerDate) - viewportDays/2) * dayWidth
	if newScroll < 0 {
		newScroll = 0
	}
	if setScroll != nil {
		setScroll(newScroll)
	}
	return true
}

// RecenterForZoom recomputes the scroll offset after a day-width change so
// the date under the pointer keeps its on-screen position. With no pointer
// the viewport center is preserved instead. Returns the corrected offset,
// clamped to zero.
func (m *RangeManager) RecenterForZoom(scrollLeftPx, viewportWidthPx, oldDayWidth, newDayWidth float64, pointerX *float64) float64 {
	if oldDayWidth <= 0 || newDayWidth <= 0 {
		return scrollLeftPx
	}
	anchor := viewportWidthPx / 2
	if pointerX != nil {
		anchor = *pointerX
	}
	target := m.window.DateAt((scrollLeftPx + anchor) / oldDayWidth)
	newScroll := m.window.Offset(target)*newDayWidth - anchor
	if newScroll < 0 {
		newScroll = 0
	}
	return newScroll
}

// addDays shifts a timestamp by a fractional number of 24-hour days. The
// chart runs in a single ambient calendar, so day arithmetic stays linear.
func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * float64(24*time.Hour)))
}

// daysBetween returns b - a in fractional days.
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
