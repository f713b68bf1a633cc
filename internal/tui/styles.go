package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader    = lipgloss.Color("39")  // Blue
	ColorBorder    = lipgloss.Color("240") // Gray
	ColorLabel     = lipgloss.Color("245") // Light gray
	ColorValue     = lipgloss.Color("255") // White
	ColorMuted     = lipgloss.Color("241") // Dim gray
	ColorOK        = lipgloss.Color("42")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorHighlight = lipgloss.Color("205") // Pink
)

// Icons.
const (
	IconArrowRight = "→"
	IconOK         = "✓"
	IconWarning    = "⚠"
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared by the views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	OKStyle = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)

	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)

	FocusedStyle = lipgloss.NewStyle().Foreground(ColorHighlight)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// RegimeStyle returns the style for a regime style key: warning colour for
// critical flow, ok colour for subcritical flow.
func RegimeStyle(regimeClass string) lipgloss.Style {
	if regimeClass == "critical" {
		return WarningStyle
	}
	return OKStyle
}

// RegimeIcon returns the icon shown next to the regime title.
func RegimeIcon(regimeClass string) string {
	if regimeClass == "critical" {
		return IconWarning
	}
	return IconOK
}
