package timescale

import "testing"

func TestDayWidthScenarios(t *testing.T) {
	m := ScaleModel{Base: 40, Min: 0.1, Max: 200}

	if got := m.DayWidth(1.0); got != 40 {
		t.Fatalf("DayWidth(1.0) = %v, want 40", got)
	}
	if got := m.DayWidth(0.5); got != 20 {
		t.Fatalf("DayWidth(0.5) = %v, want 20", got)
	}
	if got := m.ScaleForDayWidth(20); got != 0.5 {
		t.Fatalf("ScaleForDayWidth(20) = %v, want 0.5", got)
	}
}

func TestScaleRoundTrip(t *testing.T) {
	m := NewScaleModel()
	// Single multiply/divide pair must round-trip exactly, not approximately.
	for _, s := range []float64{0.1, 0.25, 0.5, 1, 1.5, 3, 12.75, 99.9, 200} {
		if got := m.ScaleForDayWidth(m.DayWidth(s)); got != s {
			t.Fatalf("round trip broke at scale %v: got %v", s, got)
		}
	}
}

func TestDayWidthMonotonic(t *testing.T) {
	m := NewScaleModel()
	prev := m.DayWidth(m.Min)
	for s := m.Min + 0.1; s <= m.Max; s += 0.7 {
		w := m.DayWidth(s)
		if w <= prev {
			t.Fatalf("day width not strictly increasing at scale %v", s)
		}
		prev = w
	}
}

func TestClamp(t *testing.T) {
	m := ScaleModel{Base: 40, Min: 0.1, Max: 200}
	cases := []struct{ in, want float64 }{
		{0.05, 0.1},
		{0.1, 0.1},
		{1, 1},
		{200, 200},
		{2000, 200},
	}
	for _, c := range cases {
		if got := m.Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
