package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/user/video-cutter-cli/pkg/timeutil"
	"github.com/user/video-cutter-cli/tui/styles"
)

// FragmentPanelState holds what the fragment panel displays.
type FragmentPanelState struct {
	SourcePath string
	Duration   float64
	Start      float64
	End        float64
	StartSet   bool
	EndSet     bool
	Looping    bool
	OutputDir  string
	// LastExport is the path of the most recent successful export, if any.
	LastExport string
}

// ExportState describes an in-flight or finished export for display.
type ExportState struct {
	Running bool
	// Spinner is the current spinner frame, rendered by the model.
	Spinner  string
	Reencode bool
}

// FragmentPanel renders the session and fragment detail card: source file,
// duration, marked points, loop state, and where exports land.
func FragmentPanel(state FragmentPanelState, exp ExportState, width int) []string {
	headerStyle := lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(styles.Cream)
	dimStyle := lipgloss.NewStyle().Foreground(styles.Ash)
	amberStyle := lipgloss.NewStyle().Foreground(styles.Amber)
	greenStyle := lipgloss.NewStyle().Foreground(styles.Green)

	maxW := width - 3
	if maxW < 10 {
		maxW = 10
	}
	trunc := func(s string) string {
		if lipgloss.Width(s) > maxW {
			return ansi.Truncate(s, maxW-3, "...")
		}
		return s
	}

	var lines []string
	lines = append(lines, headerStyle.Render(" Session"))
	if state.SourcePath == "" {
		lines = append(lines, dimStyle.Render(" No video loaded."))
		lines = append(lines, dimStyle.Render(" Press o to open a file, or drop"))
		lines = append(lines, dimStyle.Render(" one onto the mpv window."))
		return lines
	}

	lines = append(lines, textStyle.Render(trunc(" "+state.SourcePath)))
	if state.Duration > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf(" Duration: %s", timeutil.FormatTime(state.Duration))))
	} else {
		lines = append(lines, dimStyle.Render(" Duration: (waiting for player)"))
	}
	lines = append(lines, "")

	lines = append(lines, headerStyle.Render(" Fragment"))
	startStr := "(unset)"
	if state.StartSet {
		startStr = timeutil.FormatTime(state.Start)
	}
	endStr := "(unset)"
	if state.EndSet {
		endStr = timeutil.FormatTime(state.End)
	}
	lines = append(lines, textStyle.Render(fmt.Sprintf(" In:  %s", startStr)))
	lines = append(lines, textStyle.Render(fmt.Sprintf(" Out: %s", endStr)))
	if state.StartSet && state.EndSet {
		lines = append(lines, dimStyle.Render(fmt.Sprintf(" Length: %.1fs", state.End-state.Start)))
	}
	if state.Looping {
		lines = append(lines, amberStyle.Render(" ⟳ Loop on"))
	}
	lines = append(lines, "")

	lines = append(lines, headerStyle.Render(" Export"))
	lines = append(lines, dimStyle.Render(trunc(" → "+state.OutputDir)))
	switch {
	case exp.Running && exp.Reencode:
		lines = append(lines, amberStyle.Render(fmt.Sprintf(" %s Re-encoding fragment...", exp.Spinner)))
	case exp.Running:
		lines = append(lines, amberStyle.Render(fmt.Sprintf(" %s Cutting fragment...", exp.Spinner)))
	case state.LastExport != "":
		lines = append(lines, greenStyle.Render(trunc(" Saved: "+state.LastExport)))
	default:
		lines = append(lines, dimStyle.Render(" Press x to export the fragment."))
	}

	return lines
}
