package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/video-cutter-cli/fragment"
	"github.com/user/video-cutter-cli/pkg/timeutil"
)

// handleCommandInput handles key events while command mode is active.
func (m *Model) handleCommandInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.commandInput.Active = false
		m.commandInput.Clear()
		return m, nil

	case "enter":
		command := m.commandInput.GetCommand()
		m.commandInput.Active = false
		m.commandInput.Clear()
		return m.executeCommand(command)

	case "backspace":
		m.commandInput.Backspace()
		return m, nil

	case "delete":
		m.commandInput.Delete()
		return m, nil

	case "left":
		m.commandInput.MoveCursorLeft()
		return m, nil

	case "right":
		m.commandInput.MoveCursorRight()
		return m, nil

	case " ":
		m.commandInput.InsertChar(' ')
		return m, nil
	}

	if len(msg.Runes) == 1 {
		m.commandInput.InsertChar(msg.Runes[0])
	}
	return m, nil
}

// executeCommand parses and runs a command entered in command mode.
func (m *Model) executeCommand(command string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return m, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "q", "quit":
		return m.requestQuit()

	case "help":
		m.showHelp = true
		return m, nil

	case "open", "o":
		if len(args) == 0 {
			return m, m.setResult("Usage: open <path>", true)
		}
		// Paths may contain spaces; take the remainder verbatim.
		path := strings.TrimSpace(strings.TrimPrefix(command, fields[0]))
		return m, m.openFile(path)

	case "seek":
		if len(args) != 1 {
			return m, m.setResult("Usage: seek <time>", true)
		}
		t, err := parseTimeArg(args[0])
		if err != nil {
			return m, m.setResult("Invalid time: "+args[0], true)
		}
		if err := m.ctrl.Seek(t); err != nil {
			return m, m.setResult("No video loaded", true)
		}
		return m, m.setResult("Seeked to "+timeutil.FormatTime(t), false)

	case "start":
		t := m.ctrl.Position()
		if len(args) == 1 {
			var err error
			if t, err = parseTimeArg(args[0]); err != nil {
				return m, m.setResult("Invalid time: "+args[0], true)
			}
		}
		return m, m.markStart(t)

	case "end":
		t := m.ctrl.Position()
		if len(args) == 1 {
			var err error
			if t, err = parseTimeArg(args[0]); err != nil {
				return m, m.setResult("Invalid time: "+args[0], true)
			}
		}
		return m, m.markEnd(t)

	case "clear":
		m.sess.Selection().Clear()
		return m, m.setResult("Fragment cleared", false)

	case "loop":
		return m, m.toggleLoop()

	case "export":
		reencode := m.reencode
		if len(args) == 1 && strings.ToLower(args[0]) == "full" {
			reencode = true
		}
		return m.startExport(reencode)

	case "pause":
		_ = m.ctrl.Pause()
		return m, nil

	case "play":
		_ = m.ctrl.Play()
		return m, nil

	case "mute":
		if muted, err := m.client.GetMute(); err == nil {
			_ = m.client.SetMute(!muted)
		}
		return m, nil

	case "speed":
		if len(args) == 0 {
			rate, err := m.client.GetSpeed()
			if err != nil {
				return m, m.setResult("Could not read speed", true)
			}
			return m, m.setResult(fmt.Sprintf("Speed: %.2gx", rate), false)
		}
		if len(args) != 1 {
			return m, m.setResult("Usage: speed [rate]", true)
		}
		rate, err := strconv.ParseFloat(args[0], 64)
		if err != nil || rate <= 0 || rate > 8 {
			return m, m.setResult("Invalid speed: "+args[0], true)
		}
		if err := m.client.SetSpeed(rate); err != nil {
			return m, m.setResult("Could not set speed", true)
		}
		return m, m.setResult(fmt.Sprintf("Speed set to %.2gx", rate), false)
	}

	return m, m.setResult("Unknown command: "+name, true)
}

// parseTimeArg parses a command time argument: either plain seconds
// ("90", "12.5") or a clock time ("1:30", "0:01:30").
func parseTimeArg(arg string) (float64, error) {
	if strings.Contains(arg, ":") {
		return timeutil.ParseTimeToSeconds(arg)
	}
	t, err := strconv.ParseFloat(arg, 64)
	if err != nil || t < 0 {
		return 0, fmt.Errorf("invalid time %q", arg)
	}
	return t, nil
}

// markError turns a mark failure into a user message. which is "start" or
// "end".
func markError(which string, err error) string {
	if errors.Is(err, fragment.ErrNoMedia) {
		return "No video loaded"
	}
	if which == "start" {
		return "Start must be before the marked end"
	}
	return "End must be after the marked start"
}
