package ui

import "github.com/charmbracelet/lipgloss"

// Adaptive color definitions for light/dark terminal support
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5b2bb5", Dark: "#a87bff"} // Purple buttons and focus
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Secondary text
	colorDim    = lipgloss.AdaptiveColor{Light: "#c8c8c8", Dark: "#3a3a3a"} // Placeholder badge background
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff5555"}
	colorText   = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"}
	colorWhite  = lipgloss.Color("#ffffff")
)

// Style definitions
var styleHeading = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorText).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(colorGray)

var styleCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorGray).
	Padding(0, 2)

var styleCardFocused = styleCard.BorderForeground(colorAccent)

var styleButton = lipgloss.NewStyle().
	Foreground(colorWhite).
	Background(colorAccent).
	Padding(0, 1)

var (
	styleTitle      = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	styleSubtle     = lipgloss.NewStyle().Foreground(colorGray)
	styleFocused    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleOn         = lipgloss.NewStyle().Foreground(colorGreen)
	styleOff        = lipgloss.NewStyle().Foreground(colorGray)
	styleRemove     = lipgloss.NewStyle().Foreground(colorRed)
	styleIcon       = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleNoUserIcon = lipgloss.NewStyle().Foreground(colorGray)
)
