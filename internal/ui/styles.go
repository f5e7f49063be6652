package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for drought
	colorWarning   = lipgloss.Color("#FFD93D") // Yellow for low level
	colorSevere    = lipgloss.Color("#FF8C42") // Orange
	colorSuccess   = lipgloss.Color("#6BCF7F") // Green
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#4A90E2") // Border blue
	colorDisabled  = lipgloss.Color("#495057")
	colorHighlight = lipgloss.Color("#FFFFFF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	formBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true).
			Width(22)

	focusedLabelStyle = labelStyle.
				Foreground(colorPrimary)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Background(colorBorder).
			Padding(0, 2)

	focusedButtonStyle = buttonStyle.
				Background(colorPrimary).
				Bold(true)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(colorDisabled).
				Padding(0, 2)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true).
				Padding(0, 2)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1).
				MarginTop(1)

	riskBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 2).
			Bold(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// riskColor maps the lowercase risk label to a color
func riskColor(category string) lipgloss.Color {
	switch category {
	case "muy alto", "extremo", "critico", "crítico":
		return colorDanger
	case "alto":
		return colorSevere
	case "medio", "moderado":
		return colorWarning
	case "bajo", "muy bajo":
		return colorSuccess
	default:
		return colorHighlight
	}
}

// cellStyle returns the table cell style for a visual category
func cellStyle(class string) lipgloss.Style {
	switch class {
	case classDrought:
		return tableCellStyle.Foreground(colorDanger).Bold(true)
	case classLowLevel:
		return tableCellStyle.Foreground(colorWarning)
	case classNormal:
		return tableCellStyle.Foreground(colorSuccess)
	case classBoolTrue:
		return tableCellStyle.Foreground(colorDanger)
	case classBoolFalse:
		return tableCellStyle.Foreground(colorMuted)
	default:
		return tableCellStyle
	}
}
