// Package timescale maps between the dimensionless zoom scale and
// pixels-per-calendar-day, and owns the tick definition table that drives
// axis labeling and buffer sizing.
package timescale

import "ganttui/internal/config"

// ScaleModel converts between zoom scale and day width in pixels.
// All operations are pure and total.
type ScaleModel struct {
	Base float64 // pixels per day at scale 1.0
	Min  float64
	Max  float64
}

// NewScaleModel returns a model with the application defaults.
func NewScaleModel() ScaleModel {
	return ScaleModel{
		Base: config.BaseDayWidth,
		Min:  config.MinZoomScale,
		Max:  config.MaxZoomScale,
	}
}

// DayWidth returns the pixel width of one calendar day at the given scale.
func (m ScaleModel) DayWidth(scale float64) float64 {
	return m.Base * scale
}

// ScaleForDayWidth is the exact inverse of DayWidth.
func (m ScaleModel) ScaleForDayWidth(width float64) float64 {
	return width / m.Base
}

// Clamp constrains a scale to the model's bounds.
func (m ScaleModel) Clamp(scale float64) float64 {
	if scale < m.Min {
		return m.Min
	}
	if scale > m.Max {
		return m.Max
	}
	return scale
}
