// Package styles provides Lipgloss styles for the TUI using the Afterglow colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Afterglow (muted, low-contrast) theme from Gogh
const (
	// Ink is the main background colour (Afterglow background)
	Ink = lipgloss.Color("#212121")
	// Charcoal is a secondary dark background (Afterglow ANSI 0 black)
	Charcoal = lipgloss.Color("#1C1C1C")
	// Slate is the border/dim accent colour (Afterglow ANSI 8 bright black)
	Slate = lipgloss.Color("#545454")
	// Steel is used for highlights and focus states (Afterglow ANSI 4 blue)
	Steel = lipgloss.Color("#6C99BB")
	// Ash is a secondary text colour (Afterglow ANSI 7 white)
	Ash = lipgloss.Color("#A7A7A7")
	// Cream is the primary text colour (Afterglow foreground)
	Cream = lipgloss.Color("#D0D0D0")
	// Rose is an accent colour for headers and marked points (Afterglow ANSI 1 red, lifted)
	Rose = lipgloss.Color("#AC4142")
	// Sky is an accent colour for information and interactive elements (Afterglow ANSI 12 bright blue)
	Sky = lipgloss.Color("#7EAAC7")
	// Amber is a warm accent for the loop indicator and warnings (Afterglow ANSI 3 yellow)
	Amber = lipgloss.Color("#E5B567")
	// Green is used for success messages (Afterglow ANSI 2 green)
	Green = lipgloss.Color("#90A959")
)

// Pre-defined styles using the color palette

// Background is the main background style for the entire TUI
var Background = lipgloss.NewStyle().
	Background(Ink)

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Slate)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Steel).
	Foreground(Cream).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Cream)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Ash)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Rose).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
