package timescale

import "sort"

// Unit is a calendar time unit used for axis ticks.
type Unit int

const (
	UnitHour Unit = iota
	UnitDay
	UnitWeek
	UnitMonth
	UnitQuarter
	UnitYear
)

// Days returns the unit length in fractional days. Month and coarser units
// use mean lengths; tick placement aligns to real calendar boundaries, so
// the averages only feed the buffer heuristic.
func (u Unit) Days() float64 {
	switch u {
	case UnitHour:
		return 1.0 / 24
	case UnitDay:
		return 1
	case UnitWeek:
		return 7
	case UnitMonth:
		return 30.44
	case UnitQuarter:
		return 91.31
	case UnitYear:
		return 365.25
	}
	return 1
}

func (u Unit) String() string {
	switch u {
	case UnitHour:
		return "hour"
	case UnitDay:
		return "day"
	case UnitWeek:
		return "week"
	case UnitMonth:
		return "month"
	case UnitQuarter:
		return "quarter"
	case UnitYear:
		return "year"
	}
	return "unknown"
}

// Definition describes the axis ticks for a zoom scale range. A definition
// applies to every scale >= MinScale that no finer definition covers.
type Definition struct {
	MinScale      float64
	MajorUnit     Unit
	MajorFormat   string // Go time layout for major labels
	MinorUnit     Unit
	MinorFormat   string // Go time layout for minor labels
	MinorInterval int    // minor ticks every MinorInterval MinorUnits
	Label         string
}

// IntervalDays returns the minor tick spacing in fractional days.
func (d Definition) IntervalDays() float64 {
	return d.MinorUnit.Days() * float64(d.MinorInterval)
}

// Table is an immutable, totally ordered set of tick definitions, sorted by
// MinScale descending. The last entry must have MinScale 0 so that every
// non-negative scale is covered.
type Table struct {
	defs []Definition
}

// NewTable builds a table from the given definitions, sorting them by
// MinScale descending.
func NewTable(defs ...Definition) Table {
	out := make([]Definition, len(defs))
	copy(out, defs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinScale > out[j].MinScale
	})
	return Table{defs: out}
}

// DefaultTable returns the built-in tick definitions, hour granularity at
// the deepest zoom down to quarter granularity at the widest.
func DefaultTable() Table {
	return NewTable(
		Definition{MinScale: 12, MajorUnit: UnitDay, MajorFormat: "Mon Jan 2", MinorUnit: UnitHour, MinorFormat: "15:04", MinorInterval: 2, Label: "2-hour"},
		Definition{MinScale: 6, MajorUnit: UnitDay, MajorFormat: "Mon Jan 2", MinorUnit: UnitHour, MinorFormat: "15", MinorInterval: 6, Label: "6-hour"},
		Definition{MinScale: 2, MajorUnit: UnitWeek, MajorFormat: "Jan 2", MinorUnit: UnitDay, MinorFormat: "2", MinorInterval: 1, Label: "day"},
		Definition{MinScale: 0.95, MajorUnit: UnitMonth, MajorFormat: "January 2006", MinorUnit: UnitDay, MinorFormat: "2", MinorInterval: 1, Label: "day"},
		Definition{MinScale: 0.48, MajorUnit: UnitMonth, MajorFormat: "Jan 2006", MinorUnit: UnitDay, MinorFormat: "2", MinorInterval: 2, Label: "2-day"},
		Definition{MinScale: 0.2, MajorUnit: UnitMonth, MajorFormat: "Jan 06", MinorUnit: UnitWeek, MinorFormat: "2", MinorInterval: 1, Label: "week"},
		Definition{MinScale: 0.05, MajorUnit: UnitYear, MajorFormat: "2006", MinorUnit: UnitMonth, MinorFormat: "Jan", MinorInterval: 1, Label: "month"},
		Definition{MinScale: 0, MajorUnit: UnitYear, MajorFormat: "2006", MinorUnit: UnitQuarter, MinorFormat: "Jan", MinorInterval: 1, Label: "quarter"},
	)
}

// Select returns the definition for the given scale: the first entry, in
// descending MinScale order, whose MinScale does not exceed the scale. If
// the table has a coverage gap the coarsest entry is returned.
func (t Table) Select(scale float64) Definition {
	if len(t.defs) == 0 {
		return Definition{MinorUnit: UnitDay, MinorInterval: 1}
	}
	for _, d := range t.defs {
		if d.MinScale <= scale {
			return d
		}
	}
	return t.defs[len(t.defs)-1]
}

// WithDefinition returns a new table with def upserted: an existing entry
// with the same MinScale is replaced, otherwise def is inserted, and the
// descending order is restored. The receiver is not modified.
func (t Table) WithDefinition(def Definition) Table {
	out := make([]Definition, 0, len(t.defs)+1)
	replaced := false
	for _, d := range t.defs {
		if d.MinScale == def.MinScale {
			out = append(out, def)
			replaced = true
			continue
		}
		out = append(out, d)
	}
	if !replaced {
		out = append(out, def)
	}
	return NewTable(out...)
}

// Len returns the number of definitions.
func (t Table) Len() int { return len(t.defs) }

// At returns the definition at position i in descending MinScale order.
func (t Table) At(i int) Definition { return t.defs[i] }
