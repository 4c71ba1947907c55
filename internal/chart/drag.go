package chart

import (
	"math"
	"time"

	"ganttui/internal/config"
)

// DragMode tags what a pointer-drag edits.
type DragMode int

const (
	DragMove        DragMode = iota // shift both endpoints, duration preserved
	DragResizeStart                 // shift the start endpoint only
	DragResizeEnd                   // shift the end endpoint only
	DragGroupMove                   // shift a whole subtree via incremental deltas
)

func (m DragMode) String() string {
	switch m {
	case DragMove:
		return "move"
	case DragResizeStart:
		return "resize-start"
	case DragResizeEnd:
		return "resize-end"
	case DragGroupMove:
		return "group-move"
	}
	return "unknown"
}

// DateEdit is an absolute edit of one task's endpoints.
type DateEdit struct {
	TargetID int64
	Start    time.Time
	End      time.Time
}

// GroupShift is an incremental day delta applied additively to every
// member of the target's subtree.
type GroupShift struct {
	TargetID  int64
	DeltaDays float64
}

// dragSession captures the gesture origin. At most one exists at a time
// and it lives strictly between Begin and End/Cancel.
type dragSession struct {
	targetID    int64
	mode        DragMode
	originStart time.Time
	originEnd   time.Time
	anchorX     float64
	lastApplied float64 // last dispatched day delta, group-move only
}

// DragController converts pointer-move pixel deltas into snapped,
// clamped calendar-date edits.
//
// DayWidth is consulted on every move so zooming mid-gesture cannot skew
// the conversion. Exists, when set, is checked at dispatch time; edits for
// vanished targets are dropped silently.
type DragController struct {
	DayWidth     func() float64
	SnapDivision int
	Exists       func(id int64) bool
	OnEdit       func(DateEdit)
	OnGroupShift func(GroupShift)

	session *dragSession
}

// NewDragController returns a controller with the default snap division.
func NewDragController(dayWidth func() float64) *DragController {
	return &DragController{
		DayWidth:     dayWidth,
		SnapDivision: config.SnapDivision,
	}
}

// Active reports whether a drag session is open.
func (c *DragController) Active() bool {
	return c.session != nil
}

// Mode returns the open session's mode. Only meaningful while Active.
func (c *DragController) Mode() DragMode {
	if c.session == nil {
		return DragMove
	}
	return c.session.mode
}

// TargetID returns the open session's target. Only meaningful while Active.
func (c *DragController) TargetID() int64 {
	if c.session == nil {
		return 0
	}
	return c.session.targetID
}

// Begin opens a drag session, capturing the origin endpoints and the
// anchor pointer position. An already-open session is replaced.
func (c *DragController) Begin(targetID int64, mode DragMode, originStart, originEnd time.Time, pointerX float64) {
	c.session = &dragSession{
		targetID:    targetID,
		mode:        mode,
		originStart: originStart,
		originEnd:   originEnd,
		anchorX:     pointerX,
	}
}

// PointerMove computes the snapped day delta for the current pointer
// position and dispatches the resulting edit. Moves with no open session
// are ignored.
func (c *DragController) PointerMove(pointerX float64) {
	s := c.session
	if s == nil {
		return
	}
	dayWidth := c.DayWidth()
	if dayWidth <= 0 {
		return
	}

	division := c.SnapDivision
	if division <= 0 {
		division = config.SnapDivision
	}
	snapUnit := dayWidth / float64(division)
	snapped := math.Round((pointerX-s.anchorX)/snapUnit) * snapUnit
	dayDelta := snapped / dayWidth

	switch s.mode {
	case DragMove:
		c.dispatchEdit(DateEdit{
			TargetID: s.targetID,
			Start:    addDays(s.originStart, dayDelta),
			End:      addDays(s.originEnd, dayDelta),
		})
	case DragResizeStart:
		newStart := addDays(s.originStart, dayDelta)
		limit := addDays(s.originEnd, -config.MinTaskSpanDays)
		if newStart.After(limit) {
			newStart = limit
		}
		c.dispatchEdit(DateEdit{TargetID: s.targetID, Start: newStart, End: s.originEnd})
	case DragResizeEnd:
		newEnd := addDays(s.originEnd, dayDelta)
		limit := addDays(s.originStart, config.MinTaskSpanDays)
		if newEnd.Before(limit) {
			newEnd = limit
		}
		c.dispatchEdit(DateEdit{TargetID: s.targetID, Start: s.originStart, End: newEnd})
	case DragGroupMove:
		// Incremental, not absolute: the caller applies each delta
		// additively to every subtree member, so re-dispatching the
		// absolute delta would compound it.
		if dayDelta == s.lastApplied {
			return
		}
		increment := dayDelta - s.lastApplied
		s.lastApplied = dayDelta
		c.dispatchShift(GroupShift{TargetID: s.targetID, DeltaDays: increment})
	}
}

// End closes the session. Pointer-up, pointer-cancel, and forced resets all
// land here, so listener teardown cannot be missed on any exit path.
func (c *DragController) End() {
	c.session = nil
}

func (c *DragController) dispatchEdit(edit DateEdit) {
	if c.OnEdit == nil {
		return
	}
	if c.Exists != nil && !c.Exists(edit.TargetID) {
		return
	}
	c.OnEdit(edit)
}

func (c *DragController) dispatchShift(shift GroupShift) {
	if c.OnGroupShift == nil {
		return
	}
	if c.Exists != nil && !c.Exists(shift.TargetID) {
		return
	}
	c.OnGroupShift(shift)
}
