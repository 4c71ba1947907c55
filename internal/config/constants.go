package config

// Application settings.
const (
	AppName    = "ganttui"
	DBFileName = "ganttui.db"
)

// Zoom geometry. Scale is the dimensionless multiplier controlling
// pixels-per-calendar-day; day width is BaseDayWidth * scale.
const (
	BaseDayWidth     = 40.0
	MinZoomScale     = 0.1
	MaxZoomScale     = 200.0
	DefaultZoomScale = 1.0

	// ZoomStepFactor is the multiplicative scale change per wheel notch
	// or zoom keypress.
	ZoomStepFactor = 1.1
)

// Drag snapping. Drag deltas are rounded to dayWidth/SnapDivision pixels
// before being converted to day deltas.
const (
	SnapDivision = 4

	// MinTaskSpanDays is the smallest span a resize may produce.
	MinTaskSpanDays = 1.0
)

// Default duration for newly created tasks.
const DefaultTaskSpanDays = 5
