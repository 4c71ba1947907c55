package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Header     lipgloss.Style
	AxisMajor  lipgloss.Style
	AxisMinor  lipgloss.Style
	Label      lipgloss.Style
	LabelDone  lipgloss.Style
	Selected   lipgloss.Style
	BarPending lipgloss.Style
	BarActive  lipgloss.Style
	BarDone    lipgloss.Style
	BarBlocked lipgloss.Style
	BarSummary lipgloss.Style
	Grid       lipgloss.Style
	Today      lipgloss.Style
	Dim        lipgloss.Style
	Message    lipgloss.Style
	Error      lipgloss.Style
	Input      lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		AxisMajor:  lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true),
		AxisMinor:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LabelDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		BarPending: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		BarActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		BarDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		BarBlocked: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		BarSummary: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Grid:       lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Today:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Message:    lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
	},
	"dark": {
		Name:       "Dark",
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		AxisMajor:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true),
		AxisMinor:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		LabelDone:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		BarPending: lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		BarActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		BarDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		BarBlocked: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		BarSummary: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		Grid:       lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
		Today:      lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Message:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
