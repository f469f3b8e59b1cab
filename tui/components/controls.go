package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/tui/styles"
)

// Control represents a single keybinding with its display name.
type Control struct {
	Name     string
	Shortcut string
}

// ControlGroup is a titled group of related controls.
type ControlGroup struct {
	Name     string
	Controls []Control
}

// GetControlGroups returns the control groups for display.
func GetControlGroups() []ControlGroup {
	return []ControlGroup{
		{
			Name: "Playback",
			Controls: []Control{
				{Name: "Play/Pause", Shortcut: "Space"},
				{Name: "Back", Shortcut: "h"},
				{Name: "Forward", Shortcut: "l"},
				{Name: "Step -", Shortcut: "<"},
				{Name: "Step +", Shortcut: ">"},
				{Name: "Mute", Shortcut: "m"},
			},
		},
		{
			Name: "Fragment",
			Controls: []Control{
				{Name: "Mark start", Shortcut: "s"},
				{Name: "Mark end", Shortcut: "e"},
				{Name: "Loop frag", Shortcut: "f"},
				{Name: "Clear", Shortcut: "c"},
				{Name: "Export", Shortcut: "x"},
			},
		},
		{
			Name: "Session",
			Controls: []Control{
				{Name: "Open file", Shortcut: "o"},
				{Name: "Command", Shortcut: ":"},
				{Name: "Help", Shortcut: "?"},
				{Name: "Quit", Shortcut: "q"},
			},
		},
	}
}

// ControlsColumn renders the control groups as a vertical list for a column.
func ControlsColumn() []string {
	titleStyle := lipgloss.NewStyle().Foreground(styles.Sky).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(styles.Cream)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Sky).Bold(true)

	var lines []string
	for gi, group := range GetControlGroups() {
		if gi > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(" "+group.Name))
		for _, c := range group.Controls {
			lines = append(lines, fmt.Sprintf(" %s %s",
				nameStyle.Render(fmt.Sprintf("%-11s", c.Name)),
				keyStyle.Render("["+c.Shortcut+"]")))
		}
	}
	return lines
}
