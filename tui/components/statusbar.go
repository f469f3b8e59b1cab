// Package components provides reusable TUI components.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/pkg/timeutil"
	"github.com/user/video-cutter-cli/tui/styles"
)

// StatusBarState holds the current playback state for the status bar.
type StatusBarState struct {
	// FileName is the base name of the loaded video, empty when none
	FileName string
	// Paused indicates if playback is paused
	Paused bool
	// Muted indicates if audio is muted
	Muted bool
	// TimePos is the current playback position in seconds
	TimePos float64
	// Duration is the total video duration in seconds
	Duration float64
	// StepSize is the current seek step size in seconds
	StepSize float64
	// Looping indicates if fragment loop mode is active
	Looping bool
}

// StatusBar renders the status bar component: play/pause icon, file name,
// position/duration, step size, and loop/mute indicators.
func StatusBar(state StatusBarState, width int) string {
	var playIcon string
	if state.Paused {
		playIcon = "⏸"
	} else {
		playIcon = "▶"
	}

	name := state.FileName
	if name == "" {
		name = "(no video)"
	}

	var loopIcon string
	if state.Looping {
		loopIcon = " ⟳"
	}

	var muteIcon string
	if state.Muted {
		muteIcon = " 🔇"
	}

	leftContent := fmt.Sprintf(" %s %s  %s / %s%s",
		playIcon, name,
		timeutil.FormatTime(state.TimePos), timeutil.FormatTime(state.Duration),
		loopIcon)
	rightContent := fmt.Sprintf("Step: %s%s ", formatStepSize(state.StepSize), muteIcon)

	// Pad the middle so the right content hugs the edge
	padding := width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent)
	if padding < 0 {
		padding = 0
	}
	middle := ""
	for i := 0; i < padding; i++ {
		middle += " "
	}

	statusBarStyle := lipgloss.NewStyle().
		Background(styles.Charcoal).
		Foreground(styles.Cream).
		Bold(true).
		Width(width)

	return statusBarStyle.Render(leftContent + middle + rightContent)
}

// formatStepSize formats the step size for display.
// Shows decimal for values less than 1, otherwise whole number.
func formatStepSize(stepSize float64) string {
	if stepSize < 1 {
		return fmt.Sprintf("%.1fs", stepSize)
	}
	return fmt.Sprintf("%.0fs", stepSize)
}
