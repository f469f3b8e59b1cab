package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/tui/styles"
)

// Theme returns a custom huh theme that matches the TUI color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Steel).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Rose).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Ash)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Rose).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Rose)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Steel).
		Foreground(styles.Cream).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Slate).
		Foreground(styles.Ash).
		Padding(0, 1)

	t.Focused.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Slate).
		Padding(0, 1)

	t.Focused.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Sky).
		Bold(true)

	t.Focused.Next = t.Focused.FocusedButton

	// Blurred field styles
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Ash)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(styles.Slate)

	t.Blurred.FocusedButton = lipgloss.NewStyle().
		Background(styles.Slate).
		Foreground(styles.Ash).
		Padding(0, 1)

	t.Blurred.BlurredButton = lipgloss.NewStyle().
		Background(styles.Ink).
		Foreground(styles.Slate).
		Padding(0, 1)

	t.Blurred.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Ink).
		Padding(0, 1)

	t.Blurred.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Ash)

	t.Blurred.Next = t.Blurred.FocusedButton

	return t
}
