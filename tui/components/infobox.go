package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/tui/styles"
)

// RenderInfoBox renders a bordered box with a tab-style header and content
// lines. Content lines are rendered as-is (caller handles styling).
func RenderInfoBox(title string, contentLines []string, width int) string {
	if width < 4 {
		return ""
	}

	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	headerStyle := lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	borderStyle := lipgloss.NewStyle().Foreground(styles.Slate)

	// Tab header: ╭─ Title ─────╮
	headerText := headerStyle.Render(" " + title + " ")
	fillWidth := innerWidth - 1 - lipgloss.Width(headerText)
	if fillWidth < 0 {
		fillWidth = 0
	}
	topLine := borderStyle.Render("╭─") + headerText + borderStyle.Render(strings.Repeat("─", fillWidth)+"╮")

	lines := []string{topLine}
	for _, line := range contentLines {
		pad := innerWidth - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, borderStyle.Render("│")+line+strings.Repeat(" ", pad)+borderStyle.Render("│"))
	}

	lines = append(lines, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(lines, "\n")
}
