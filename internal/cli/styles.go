package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorPurple    = lipgloss.Color("#8524a6")
	colorGreen     = lipgloss.Color("#00FF00")
	colorYellow    = lipgloss.Color("#FFFF00")
	colorRed       = lipgloss.Color("#FF0000")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Background(colorPurple).
			Padding(0, 1).
			MarginTop(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorPurple)
)

// green above 0.8, yellow above 0.6, red otherwise
func confidenceStyle(confidence float64) lipgloss.Style {
	switch {
	case confidence > 0.8:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case confidence > 0.6:
		return lipgloss.NewStyle().Foreground(colorYellow)
	default:
		return lipgloss.NewStyle().Foreground(colorRed)
	}
}

// suggestion types of the analyzer mapped to their color
func suggestionTypeStyle(kind string) lipgloss.Style {
	switch kind {
	case "error":
		return lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	case "warning":
		return lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	}
}
