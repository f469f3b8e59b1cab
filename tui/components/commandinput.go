package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/tui/styles"
)

// CommandInputState holds the state for the command input line.
type CommandInputState struct {
	// Active indicates if command mode is active
	Active bool
	// Input is the current command input buffer
	Input string
	// CursorPos is the cursor position within the input
	CursorPos int
	// Result is the result message to display (success or error)
	Result string
	// IsError indicates if the result is an error message
	IsError bool
}

// CommandInput renders the command input line. When active it shows a ':'
// prompt with the buffer; otherwise it shows the last result message, if any.
func CommandInput(state CommandInputState, width int) string {
	lineStyle := lipgloss.NewStyle().
		Background(styles.Charcoal).
		Width(width)

	if state.Active {
		promptStyle := lipgloss.NewStyle().Foreground(styles.Sky).Bold(true)
		inputStyle := lipgloss.NewStyle().Foreground(styles.Cream)

		// Insert cursor at position
		input := state.Input
		var displayInput string
		if state.CursorPos >= len(input) {
			displayInput = input + "_"
		} else {
			displayInput = input[:state.CursorPos] + "_" + input[state.CursorPos:]
		}

		return lineStyle.Render(promptStyle.Render(":") + inputStyle.Render(displayInput))
	}

	if state.Result != "" {
		var resultStyle lipgloss.Style
		if state.IsError {
			resultStyle = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
		} else {
			resultStyle = lipgloss.NewStyle().Foreground(styles.Sky).Bold(true)
		}
		return lineStyle.Render(" " + resultStyle.Render(state.Result))
	}

	return lineStyle.Render(" ")
}

// InsertChar inserts a character at the current cursor position.
func (s *CommandInputState) InsertChar(c rune) {
	if s.CursorPos >= len(s.Input) {
		s.Input += string(c)
	} else {
		s.Input = s.Input[:s.CursorPos] + string(c) + s.Input[s.CursorPos:]
	}
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *CommandInputState) Backspace() {
	if s.CursorPos > 0 && len(s.Input) > 0 {
		if s.CursorPos >= len(s.Input) {
			s.Input = s.Input[:len(s.Input)-1]
		} else {
			s.Input = s.Input[:s.CursorPos-1] + s.Input[s.CursorPos:]
		}
		s.CursorPos--
	}
}

// Delete deletes the character at the cursor.
func (s *CommandInputState) Delete() {
	if s.CursorPos < len(s.Input) {
		s.Input = s.Input[:s.CursorPos] + s.Input[s.CursorPos+1:]
	}
}

// MoveCursorLeft moves the cursor left.
func (s *CommandInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *CommandInputState) MoveCursorRight() {
	if s.CursorPos < len(s.Input) {
		s.CursorPos++
	}
}

// GetCommand returns the trimmed command text.
func (s *CommandInputState) GetCommand() string {
	return strings.TrimSpace(s.Input)
}

// Clear exits command mode and empties the buffer.
func (s *CommandInputState) Clear() {
	s.Active = false
	s.Input = ""
	s.CursorPos = 0
}

// SetResult stores a result message for display.
func (s *CommandInputState) SetResult(result string, isError bool) {
	s.Active = false
	s.Input = ""
	s.CursorPos = 0
	s.Result = result
	s.IsError = isError
}

// ClearResult clears the result message.
func (s *CommandInputState) ClearResult() {
	s.Result = ""
	s.IsError = false
}
