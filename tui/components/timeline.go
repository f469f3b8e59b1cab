package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/pkg/timeutil"
	"github.com/user/video-cutter-cli/tui/styles"
)

// TimelineState holds everything the timeline bar needs to draw.
type TimelineState struct {
	TimePos  float64
	Duration float64
	// Start/End are the marked fragment points; the Set flags say whether
	// each mark exists.
	Start    float64
	End      float64
	StartSet bool
	EndSet   bool
	Looping  bool
}

// Timeline renders a progress bar with the marked fragment highlighted.
// The in and out points render as ⟦ and ⟧, the span between them is drawn
// in the selection colour, and the playhead sits on top of everything.
func Timeline(state TimelineState, width int) string {
	if width < 20 {
		return ""
	}

	innerWidth := width - 4
	if innerWidth < 10 {
		innerWidth = 10
	}

	playedStyle := lipgloss.NewStyle().Foreground(styles.Steel)
	restStyle := lipgloss.NewStyle().Foreground(styles.Slate)
	timeStyle := lipgloss.NewStyle().Foreground(styles.Cream).Bold(true)
	markStyle := lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	spanStyle := lipgloss.NewStyle().Foreground(styles.Amber)
	headStyle := lipgloss.NewStyle().Foreground(styles.Cream).Bold(true)

	timeDisplay := fmt.Sprintf(" %s / %s", timeutil.FormatTime(state.TimePos), timeutil.FormatTime(state.Duration))

	barWidth := innerWidth - lipgloss.Width(timeDisplay) - 2
	if barWidth < 10 {
		barWidth = 10
	}

	cell := func(t float64) int {
		if state.Duration <= 0 {
			return 0
		}
		p := int(math.Round(float64(barWidth-1) * t / state.Duration))
		if p < 0 {
			p = 0
		}
		if p > barWidth-1 {
			p = barWidth - 1
		}
		return p
	}

	headPos := cell(state.TimePos)
	startPos, endPos := -1, -1
	if state.StartSet {
		startPos = cell(state.Start)
	}
	if state.EndSet {
		endPos = cell(state.End)
	}

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		inSpan := state.StartSet && state.EndSet && i > startPos && i < endPos
		switch {
		case i == startPos:
			bar.WriteString(markStyle.Render("⟦"))
		case i == endPos:
			bar.WriteString(markStyle.Render("⟧"))
		case i == headPos:
			bar.WriteString(headStyle.Render("╸"))
		case inSpan:
			bar.WriteString(spanStyle.Render("═"))
		case i < headPos:
			bar.WriteString(playedStyle.Render("━"))
		default:
			bar.WriteString(restStyle.Render("─"))
		}
	}

	barLine := " " + bar.String() + " " + timeStyle.Render(timeDisplay)

	// Fragment summary under the bar
	var summary string
	switch {
	case state.StartSet && state.EndSet:
		summary = fmt.Sprintf(" Fragment: %s - %s (%.1fs)",
			timeutil.FormatTime(state.Start), timeutil.FormatTime(state.End), state.End-state.Start)
		if state.Looping {
			summary += "  ⟳ looping"
		}
	case state.StartSet:
		summary = fmt.Sprintf(" Fragment: %s - (press e to mark end)", timeutil.FormatTime(state.Start))
	case state.EndSet:
		summary = fmt.Sprintf(" Fragment: (press s to mark start) - %s", timeutil.FormatTime(state.End))
	default:
		summary = " No fragment marked. s = mark start, e = mark end."
	}

	summaryStyle := lipgloss.NewStyle().Foreground(styles.Ash)
	if state.Looping {
		summaryStyle = lipgloss.NewStyle().Foreground(styles.Amber)
	}

	return RenderInfoBox("Timeline", []string{barLine, summaryStyle.Render(summary)}, width)
}
