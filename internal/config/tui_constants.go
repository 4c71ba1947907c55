package config

// Layout constants.
const (
	// LabelPaneWidth is the width of the row-label pane in cells.
	LabelPaneWidth = 28

	// HeaderHeight is the height of the time-axis header (major + minor row).
	HeaderHeight = 2

	// FooterHeight reserves space for the status line and progress bar.
	FooterHeight = 2

	// MinBodyWidth is the narrowest usable chart body.
	MinBodyWidth = 20

	// TruncationSuffix appended to truncated labels.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxTaskNameLength is the maximum task name length.
	MaxTaskNameLength = 100
)
