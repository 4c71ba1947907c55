package chart

import (
	"testing"

	"ganttui/internal/models"
)

func newSyncFixture(t *testing.T) (*RangeManager, *Synchronizer) {
	t.Helper()
	m := NewRangeManager(dayTable())
	m.Init(1000, 40, 1.0, models.DateRange{Start: date(2026, 3, 1), End: date(2026, 3, 15)})
	return m, NewSynchronizer(m)
}

func TestBodyScrollMirrorsPanes(t *testing.T) {
	_, s := newSyncFixture(t)

	// Middle of the window, no expansion.
	s.BodyScrolled(4780, 120, 1000, 40, 1.0)

	if got := s.PaneOffsets(PaneHeader).Left; got != 4780 {
		t.Fatalf("header.Left = %v, want 4780", got)
	}
	if got := s.PaneOffsets(PaneLabels).Top; got != 120 {
		t.Fatalf("labels.Top = %v, want 120", got)
	}
	if !s.GuardHeld() {
		t.Fatal("guard must be held after a synchronizing write")
	}
}

func TestGuardSuppressesReentrancy(t *testing.T) {
	_, s := newSyncFixture(t)

	s.BodyScrolled(4780, 0, 1000, 40, 1.0)

	// The programmatic header write echoes a header scroll event; while the
	// guard is held it must be ignored.
	s.HeaderScrolled(9999)
	if got := s.PaneOffsets(PaneBody).Left; got != 4780 {
		t.Fatalf("guarded header echo moved the body to %v", got)
	}

	s.ReleaseGuard()
	s.HeaderScrolled(5000)
	if got := s.PaneOffsets(PaneBody).Left; got != 5000 {
		t.Fatalf("header scroll after release did not mirror, body.Left = %v", got)
	}
}

func TestLabelsScrollMirrorsBody(t *testing.T) {
	_, s := newSyncFixture(t)

	s.LabelsScrolled(60)
	if got := s.PaneOffsets(PaneBody).Top; got != 60 {
		t.Fatalf("body.Top = %v, want 60", got)
	}

	s.ReleaseGuard()
	s.LabelsScrolled(-10)
	if got := s.PaneOffsets(PaneBody).Top; got != 0 {
		t.Fatalf("negative offsets must clamp to 0, got %v", got)
	}
}

func TestBodyScrollExpansionRealignsHeader(t *testing.T) {
	m, s := newSyncFixture(t)

	// Hard against the left edge forces an expansion and a corrected offset.
	expanded := s.BodyScrolled(0, 0, 1000, 40, 1.0)
	if !expanded {
		t.Fatal("expected an edge expansion")
	}
	body := s.PaneOffsets(PaneBody)
	if body.Left == 0 {
		t.Fatal("body offset was not corrected after expansion")
	}
	if got := s.PaneOffsets(PaneHeader).Left; got != body.Left {
		t.Fatalf("header not re-aligned after correction: %v != %v", got, body.Left)
	}
	if m.Window().Days() <= 264 {
		t.Fatal("window did not grow")
	}
}

func TestPanScrollsBodyUnderGuard(t *testing.T) {
	_, s := newSyncFixture(t)

	s.BodyScrolled(4780, 40, 1000, 40, 1.0)
	s.ReleaseGuard()

	s.Pan(80, -40, 1000, 40, 1.0)
	body := s.PaneOffsets(PaneBody)
	if body.Left != 4860 || body.Top != 0 {
		t.Fatalf("pan landed at (%v, %v), want (4860, 0)", body.Left, body.Top)
	}
	if !s.GuardHeld() {
		t.Fatal("pan must hold the guard like any programmatic write")
	}

	// Pan during a guarded tick is dropped.
	s.Pan(80, 0, 1000, 40, 1.0)
	if got := s.PaneOffsets(PaneBody).Left; got != 4860 {
		t.Fatalf("guarded pan moved the body to %v", got)
	}
}

func TestSetBodyOffsetsMirrors(t *testing.T) {
	_, s := newSyncFixture(t)

	s.SetBodyOffsets(1234, 8)
	if got := s.PaneOffsets(PaneHeader).Left; got != 1234 {
		t.Fatalf("header.Left = %v, want 1234", got)
	}
	if got := s.PaneOffsets(PaneLabels).Top; got != 8 {
		t.Fatalf("labels.Top = %v, want 8", got)
	}
	if !s.GuardHeld() {
		t.Fatal("force write must hold the guard")
	}
}

// Regression guard for the deferred-release contract: a full scroll,
// release, scroll cycle keeps all three panes consistent.
func TestScrollReleaseCycle(t *testing.T) {
	_, s := newSyncFixture(t)

	offsets := []struct{ left, top float64 }{
		{4000, 0}, {4200, 40}, {4400, 80}, {4200, 40},
	}
	for _, o := range offsets {
		s.BodyScrolled(o.left, o.top, 1000, 40, 1.0)
		s.ReleaseGuard()
	}

	body := s.PaneOffsets(PaneBody)
	if s.PaneOffsets(PaneHeader).Left != body.Left {
		t.Fatal("header drifted from body")
	}
	if s.PaneOffsets(PaneLabels).Top != body.Top {
		t.Fatal("labels drifted from body")
	}
}
