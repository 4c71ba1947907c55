package chart

// PaneID identifies one of the three scrollable surfaces.
type PaneID int

const (
	PaneHeader PaneID = iota // time-axis header, horizontal only
	PaneBody                 // chart body, both axes
	PaneLabels               // row-label pane, vertical only
)

// Pane holds the scroll offsets of one surface, in pixels.
type Pane struct {
	Left float64
	Top  float64
}

// Synchronizer keeps the header, body and label panes mutually consistent:
// body.Left mirrors into the header, body.Top mirrors into the labels, and
// vice versa. A reentrancy guard is held while the synchronizer writes
// offsets programmatically; the host releases it on the next turn of its
// event loop, so the scroll events those writes echo back are ignored
// instead of bouncing between panes.
type Synchronizer struct {
	header Pane
	body   Pane
	labels Pane

	ranges *RangeManager
	guard  bool
}

// NewSynchronizer wires a synchronizer to the range manager that backs the
// body pane.
func NewSynchronizer(ranges *RangeManager) *Synchronizer {
	return &Synchronizer{ranges: ranges}
}

// PaneOffsets returns the current offsets of a pane.
func (s *Synchronizer) PaneOffsets(id PaneID) Pane {
	switch id {
	case PaneHeader:
		return s.header
	case PaneLabels:
		return s.labels
	default:
		return s.body
	}
}

// GuardHeld reports whether programmatic writes are in flight.
func (s *Synchronizer) GuardHeld() bool {
	return s.guard
}

// ReleaseGuard clears the reentrancy guard. Hosts call this on the event
// loop turn after a synchronizing write, never synchronously within it.
func (s *Synchronizer) ReleaseGuard() {
	s.guard = false
}

// BodyScrolled ingests a body-pane scroll. The header and label panes are
// aligned under the guard, then the range manager gets a chance to expand
// the window; if it does, the corrected body offset is re-applied to the
// header as well. Reports whether the window expanded so callers can
// re-render dependent geometry.
func (s *Synchronizer) BodyScrolled(left, top, viewportWidthPx, dayWidth, scale float64) bool {
	if s.guard {
		return false
	}
	s.guard = true

	s.body.Left = clampZero(left)
	s.body.Top = clampZero(top)
	s.header.Left = s.body.Left
	s.labels.Top = s.body.Top

	expanded := s.ranges.ExpandIfNeeded(s.body.Left, viewportWidthPx, dayWidth, scale, func(px float64) {
		s.body.Left = px
	})
	if expanded {
		s.header.Left = s.body.Left
	}
	return expanded
}

// HeaderScrolled mirrors a header-pane scroll into the body.
func (s *Synchronizer) HeaderScrolled(left float64) {
	if s.guard {
		return
	}
	s.guard = true
	s.header.Left = clampZero(left)
	s.body.Left = s.header.Left
}

// LabelsScrolled mirrors a label-pane scroll into the body.
func (s *Synchronizer) LabelsScrolled(top float64) {
	if s.guard {
		return
	}
	s.guard = true
	s.labels.Top = clampZero(top)
	s.body.Top = s.labels.Top
}

// Pan scrolls the body directly by a pixel delta. Secondary-button canvas
// panning goes through here rather than the drag controller: it is a
// viewport operation, not a data edit. Reports whether the window expanded.
func (s *Synchronizer) Pan(dx, dy, viewportWidthPx, dayWidth, scale float64) bool {
	return s.BodyScrolled(s.body.Left+dx, s.body.Top+dy, viewportWidthPx, dayWidth, scale)
}

// SetBodyOffsets force-writes the body offsets under the guard, mirroring
// into the secondary panes. Used for zoom corrections where the new offset
// is computed rather than scrolled to.
func (s *Synchronizer) SetBodyOffsets(left, top float64) {
	s.guard = true
	s.body.Left = clampZero(left)
	s.body.Top = clampZero(top)
	s.header.Left = s.body.Left
	s.labels.Top = s.body.Top
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
