package ui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	colorBlue500 = lipgloss.Color("#3b82f6")
	colorBlue600 = lipgloss.Color("#2563eb")
	colorBlue400 = lipgloss.Color("#60a5fa")
	colorGray300 = lipgloss.Color("#d1d5db")
	colorGray400 = lipgloss.Color("#9ca3af")
	colorGray600 = lipgloss.Color("#4b5563")
	colorGray700 = lipgloss.Color("#374151")
	colorGray800 = lipgloss.Color("#1f2937")
	colorWhite   = lipgloss.Color("#ffffff")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlue400)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorGray300)
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite).MarginBottom(1)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray600).
			Background(colorGray800).
			Padding(1, 2)
	labelStyle      = lipgloss.NewStyle().Foreground(colorGray400)
	transcriptStyle = lipgloss.NewStyle().Foreground(colorGray300)
	footerStyle     = lipgloss.NewStyle().Foreground(colorGray400).MarginTop(1)
	focusMarker     = lipgloss.NewStyle().Foreground(colorBlue400).Render("▸ ")
)
