package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if BaseDayWidth <= 0 {
		t.Fatalf("BaseDayWidth must be positive")
	}
	if MinZoomScale <= 0 || MaxZoomScale <= MinZoomScale {
		t.Fatalf("zoom scale bounds are inverted")
	}
	if DefaultZoomScale < MinZoomScale || DefaultZoomScale > MaxZoomScale {
		t.Fatalf("DefaultZoomScale must be within bounds")
	}
	if ZoomStepFactor <= 1 {
		t.Fatalf("ZoomStepFactor must exceed 1")
	}
	if SnapDivision <= 0 {
		t.Fatalf("SnapDivision must be positive")
	}
	if MinTaskSpanDays <= 0 {
		t.Fatalf("MinTaskSpanDays must be positive")
	}
}
