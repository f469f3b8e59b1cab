package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings and the
// command-mode commands. Any key dismisses it.
func HelpOverlay(width, height int) string {
	titleStyle := lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	groupStyle := lipgloss.NewStyle().Foreground(styles.Sky).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Amber).Bold(true).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(styles.Cream)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Ash)

	var b strings.Builder
	b.WriteString(titleStyle.Render("video-cutter — keybindings"))
	b.WriteString("\n\n")

	for _, group := range GetControlGroups() {
		b.WriteString(groupStyle.Render(group.Name))
		b.WriteString("\n")
		for _, c := range group.Controls {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(c.Shortcut))
			b.WriteString(descStyle.Render(c.Name))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(groupStyle.Render("Command mode (:)"))
	b.WriteString("\n")
	commands := []struct{ cmd, desc string }{
		{"open <path>", "load a different video"},
		{"seek <time>", "seek to H:MM:SS, MM:SS, or seconds"},
		{"start [time]", "mark fragment start (default: current position)"},
		{"end [time]", "mark fragment end (default: current position)"},
		{"loop", "toggle fragment loop"},
		{"export", "export fragment (stream copy)"},
		{"export full", "export fragment (re-encode, frame-accurate)"},
		{"speed [x]", "show or set playback speed"},
		{"quit", "exit"},
	}
	for _, c := range commands {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(""))
		b.WriteString(descStyle.Render(c.cmd))
		b.WriteString(dimStyle.Render(" — " + c.desc))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close."))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Slate).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
