package chart

import (
	"time"

	"ganttui/internal/config"
	"ganttui/internal/models"
	"ganttui/internal/timescale"
)

// Engine is the host-facing facade over the viewport coordination core.
// It owns the zoom scale, the range manager, the pane synchronizer and the
// drag controller, and exposes the handful of calls a host input adapter
// needs. All methods run synchronously inside the triggering event.
type Engine struct {
	scaleModel timescale.ScaleModel
	scale      float64

	ranges *RangeManager
	sync   *Synchronizer
	drag   *DragController

	viewportWidth float64
}

// NewEngine assembles an engine around a tick table. One engine instance
// serves exactly one chart.
func NewEngine(scaleModel timescale.ScaleModel, ticks timescale.Table) *Engine {
	e := &Engine{
		scaleModel: scaleModel,
		scale:      scaleModel.Clamp(config.DefaultZoomScale),
	}
	e.ranges = NewRangeManager(ticks)
	e.sync = NewSynchronizer(e.ranges)
	e.drag = NewDragController(e.DayWidth)
	return e
}

// Scale returns the current clamped zoom scale.
func (e *Engine) Scale() float64 {
	return e.scale
}

// SetScale clamps and applies a scale directly, without re-centering.
// Used when restoring persisted view state.
func (e *Engine) SetScale(scale float64) {
	e.scale = e.scaleModel.Clamp(scale)
}

// DayWidth returns the pixel width of one day at the current scale.
func (e *Engine) DayWidth() float64 {
	return e.scaleModel.DayWidth(e.scale)
}

// Window returns the materialized date window.
func (e *Engine) Window() DateWindow {
	return e.ranges.Window()
}

// TickDefinition returns the axis definition for the current scale.
func (e *Engine) TickDefinition() timescale.Definition {
	return e.ranges.Ticks().Select(e.scale)
}

// Offsets returns the scroll offsets of the given pane.
func (e *Engine) Offsets(id PaneID) Pane {
	return e.sync.PaneOffsets(id)
}

// Drag exposes the drag controller for dispatch wiring.
func (e *Engine) Drag() *DragController {
	return e.drag
}

// GuardHeld reports whether a programmatic scroll write is awaiting its
// deferred guard release.
func (e *Engine) GuardHeld() bool {
	return e.sync.GuardHeld()
}

// ReleaseScrollGuard clears the reentrancy guard. The host schedules this
// for the event-loop turn after any Engine call that moved a pane.
func (e *Engine) ReleaseScrollGuard() {
	e.sync.ReleaseGuard()
}

// InitViewport materializes the initial date window around the base range
// and remembers the viewport width.
func (e *Engine) InitViewport(viewportWidthPx float64, base models.DateRange) {
	e.viewportWidth = viewportWidthPx
	e.ranges.Init(viewportWidthPx, e.DayWidth(), e.scale, base)
}

// SetViewportWidth records a host resize.
func (e *Engine) SetViewportWidth(px float64) {
	e.viewportWidth = px
}

// OnBodyScroll ingests a body-pane scroll event. Reports whether the date
// window expanded; either way the caller must schedule a guard release.
func (e *Engine) OnBodyScroll(leftPx, topPx float64) bool {
	return e.sync.BodyScrolled(leftPx, topPx, e.viewportWidth, e.DayWidth(), e.scale)
}

// OnHeaderScroll ingests a header-pane scroll event.
func (e *Engine) OnHeaderScroll(leftPx float64) {
	e.sync.HeaderScrolled(leftPx)
}

// OnLabelsScroll ingests a label-pane scroll event.
func (e *Engine) OnLabelsScroll(topPx float64) {
	e.sync.LabelsScrolled(topPx)
}

// Pan scrolls the body directly by a pixel delta (secondary-button drag).
func (e *Engine) Pan(dx, dy float64) bool {
	return e.sync.Pan(dx, dy, e.viewportWidth, e.DayWidth(), e.scale)
}

// OnZoomGesture applies a multiplicative scale change anchored at the
// pointer, or at the viewport center when pointerX is nil (button or
// keyboard zoom). The corrected scroll offset is written under the guard
// and the window is expanded if the wider view ran past the buffer.
// Returns the new clamped scale.
func (e *Engine) OnZoomGesture(factor float64, pointerX *float64) float64 {
	oldDayWidth := e.DayWidth()
	newScale := e.scaleModel.Clamp(e.scale * factor)
	if newScale == e.scale {
		return e.scale
	}
	e.scale = newScale
	newDayWidth := e.DayWidth()

	body := e.sync.PaneOffsets(PaneBody)
	newLeft := e.ranges.RecenterForZoom(body.Left, e.viewportWidth, oldDayWidth, newDayWidth, pointerX)
	e.sync.SetBodyOffsets(newLeft, body.Top)

	e.ranges.ExpandIfNeeded(newLeft, e.viewportWidth, newDayWidth, e.scale, func(px float64) {
		e.sync.SetBodyOffsets(px, body.Top)
	})
	return e.scale
}

// BeginDrag opens a drag session for the target with the given origin
// endpoints.
func (e *Engine) BeginDrag(targetID int64, mode DragMode, originStart, originEnd time.Time, pointerX float64) {
	e.drag.Begin(targetID, mode, originStart, originEnd, pointerX)
}

// OnPointerMove feeds a pointer position to the open drag session, if any.
func (e *Engine) OnPointerMove(pointerX float64) {
	e.drag.PointerMove(pointerX)
}

// EndDrag closes the drag session on pointer-up or cancel.
func (e *Engine) EndDrag() {
	e.drag.End()
}

// DragActive reports whether a drag session is open.
func (e *Engine) DragActive() bool {
	return e.drag.Active()
}
