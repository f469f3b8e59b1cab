package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/video-cutter-cli/deps"
	"github.com/user/video-cutter-cli/export"
	"github.com/user/video-cutter-cli/fragment"
)

// exportRun tracks an in-flight export. gen identifies the run: it only ever
// increases, and a done message whose gen doesn't match the current run is
// stale (the run it belongs to was already cancelled and replaced).
type exportRun struct {
	running  bool
	reencode bool
	gen      int
	cancel   context.CancelFunc
}

// exportDoneMsg is sent when a background export finishes, successfully or not.
type exportDoneMsg struct {
	gen  int
	path string
	err  error
}

// startExport kicks off an ffmpeg export of the marked fragment in the
// background. Starting a new export while one is running cancels the old one
// first; its partial output file is removed by the exporter.
func (m *Model) startExport(reencode bool) (tea.Model, tea.Cmd) {
	req, err := m.sess.ExportRequest(reencode)
	if err != nil {
		return m, m.setResult(exportRequestError(err), true)
	}

	m.cancelExport()

	ctx, cancel := context.WithCancel(context.Background())
	gen := m.exp.gen + 1
	m.exp = exportRun{running: true, reencode: reencode, gen: gen, cancel: cancel}

	exporter := m.exporter
	run := func() tea.Msg {
		path, err := exporter.Export(ctx, req)
		return exportDoneMsg{gen: gen, path: path, err: err}
	}
	return m, tea.Batch(m.spin.Tick, run)
}

// finishExport handles the completion message of a background export.
// Messages from a superseded run are dropped: acting on one would clobber
// the state of the run that replaced it.
func (m *Model) finishExport(msg exportDoneMsg) tea.Cmd {
	if msg.gen != m.exp.gen {
		return nil
	}
	m.exp = exportRun{gen: m.exp.gen}

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m.setResult("Export cancelled", false)
		}
		return m.setResult(exportFailedError(msg.err), true)
	}

	m.lastExport = msg.path
	return m.setResult("Saved: "+msg.path, false)
}

// cancelExport cancels a running export, if any. Safe to call repeatedly.
// The generation survives so a later done message from the cancelled run
// still compares as stale.
func (m *Model) cancelExport() {
	if m.exp.cancel != nil {
		m.exp.cancel()
	}
	m.exp = exportRun{gen: m.exp.gen}
}

// exportRequestError turns a pre-flight export error into a user message.
func exportRequestError(err error) string {
	switch {
	case errors.Is(err, fragment.ErrNoMedia):
		return "No video loaded"
	case errors.Is(err, fragment.ErrInvalidRange):
		return "Mark start and end before exporting"
	}
	return "Export failed: " + err.Error()
}

// exportFailedError turns an ffmpeg failure into a user message, surfacing
// the last line of ffmpeg's output when there is one.
func exportFailedError(err error) string {
	var depErr *deps.DependencyError
	if errors.As(err, &depErr) {
		return depErr.Error()
	}

	var trErr *export.TranscodeError
	if errors.As(err, &trErr) {
		lines := strings.Split(strings.TrimSpace(trErr.Output), "\n")
		if len(lines) > 0 && lines[len(lines)-1] != "" {
			return "ffmpeg failed: " + lines[len(lines)-1]
		}
		return "ffmpeg failed: " + trErr.Err.Error()
	}

	return "Export failed: " + err.Error()
}
