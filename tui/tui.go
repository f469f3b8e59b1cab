// Package tui implements the interactive control surface: a Bubbletea model
// that polls the player on a timer, tracks the marked fragment, and drives
// exports in the background. The video itself renders in the mpv window; the
// terminal is the remote control.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/video-cutter-cli/export"
	"github.com/user/video-cutter-cli/mpv"
	"github.com/user/video-cutter-cli/pkg/timeutil"
	"github.com/user/video-cutter-cli/player"
	"github.com/user/video-cutter-cli/session"
	"github.com/user/video-cutter-cli/tui/components"
	"github.com/user/video-cutter-cli/tui/forms"
	"github.com/user/video-cutter-cli/tui/styles"
)

const (
	// tickInterval is the interval for polling player status. Frequent
	// enough that the loop boundary feels seamless, coarse enough to keep
	// IPC traffic trivial.
	tickInterval = 100 * time.Millisecond
	// defaultStepSize is the default seek step size in seconds.
	defaultStepSize = 1.0
	// resultDisplayDuration is how long to show command results.
	resultDisplayDuration = 3 * time.Second
)

// stepSizes defines the available step sizes for seek operations.
// Users can cycle through these with < and > keys.
var stepSizes = []float64{0.1, 0.5, 1, 2, 5, 10, 30}

// tickMsg is a message sent on every tick interval to update playback status.
type tickMsg time.Time

// clearResultMsg is sent to clear the command result message.
type clearResultMsg struct{}

// Model is the Bubbletea model for the TUI application.
type Model struct {
	// mpv client, used directly for relative seeks and mute/speed
	client *mpv.Client
	// ctrl is the playback controller with clamping/no-op semantics
	ctrl *player.Controller
	// sess owns the loaded media and its fragment selection
	sess *session.Session
	// exporter runs ffmpeg
	exporter *export.Exporter
	// reencode selects the default export mode for the x key
	reencode bool

	width    int
	height   int
	quitting bool
	showHelp bool

	statusBar    components.StatusBarState
	commandInput components.CommandInputState

	// file prompt state
	filePrompt       textinput.Model
	filePromptActive bool

	// export state
	spin       spinner.Model
	exp        exportRun
	lastExport string

	// confirm form shown when quitting mid-export
	confirmQuit  *huh.Form
	confirmAbort bool
}

// NewModel creates a new TUI model over the given mpv client.
func NewModel(client *mpv.Client, videoPath string, reencode bool) *Model {
	ctrl := player.New(client)
	sess := session.New()
	if videoPath != "" {
		ctrl.Attach()
		sess.Load(videoPath)
	}

	prompt := textinput.New()
	prompt.Placeholder = "/path/to/video.mp4"
	prompt.Prompt = "Open: "
	prompt.PromptStyle = lipgloss.NewStyle().Foreground(styles.Sky).Bold(true)
	prompt.TextStyle = lipgloss.NewStyle().Foreground(styles.Cream)

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.Amber)),
	)

	return &Model{
		client:     client,
		ctrl:       ctrl,
		sess:       sess,
		exporter:   export.New(),
		reencode:   reencode,
		statusBar:  components.StatusBarState{StepSize: defaultStepSize},
		filePrompt: prompt,
		spin:       spin,
	}
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd returns a command that sends a tickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// resultAfter schedules the result message to clear.
func resultAfter() tea.Cmd {
	return tea.Tick(resultDisplayDuration, func(time.Time) tea.Msg {
		return clearResultMsg{}
	})
}

// setResult stores a result message and schedules its clearing.
func (m *Model) setResult(text string, isError bool) tea.Cmd {
	m.commandInput.SetResult(text, isError)
	return resultAfter()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		cmd := m.pollPlayer()
		return m, tea.Batch(tickCmd(), cmd)

	case clearResultMsg:
		m.commandInput.ClearResult()
		return m, nil

	case spinner.TickMsg:
		if !m.exp.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case exportDoneMsg:
		return m, m.finishExport(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Non-key messages may still belong to the confirm form (e.g. timers).
	if m.confirmQuit != nil {
		return m.updateConfirmForm(msg)
	}

	return m, nil
}

// handleKey dispatches a key press to whichever input mode is active.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmQuit != nil {
		return m.updateConfirmForm(msg)
	}

	// Help overlay: any key dismisses it
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.filePromptActive {
		return m.handleFilePrompt(msg)
	}

	if m.commandInput.Active {
		return m.handleCommandInput(msg)
	}

	return m.handleNormalKey(msg)
}

// handleNormalKey handles key events in normal mode.
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m.requestQuit()

	case "?":
		m.showHelp = true
		return m, nil

	case ":":
		m.commandInput.Active = true
		m.commandInput.Input = ""
		m.commandInput.CursorPos = 0
		m.commandInput.ClearResult()
		return m, nil

	case " ":
		_ = m.ctrl.TogglePause()
		return m, nil

	case "m", "M":
		if muted, err := m.client.GetMute(); err == nil {
			_ = m.client.SetMute(!muted)
		}
		return m, nil

	case "h", "H":
		_ = m.client.SeekRelative(-m.statusBar.StepSize)
		return m, nil

	case "l", "L":
		_ = m.client.SeekRelative(m.statusBar.StepSize)
		return m, nil

	case "<", ",":
		m.decreaseStepSize()
		return m, nil

	case ">", ".":
		m.increaseStepSize()
		return m, nil

	case "s", "S":
		return m, m.markStart(m.ctrl.Position())

	case "e", "E":
		return m, m.markEnd(m.ctrl.Position())

	case "c", "C":
		m.sess.Selection().Clear()
		return m, m.setResult("Fragment cleared", false)

	case "f", "F":
		return m, m.toggleLoop()

	case "x", "X":
		return m.startExport(m.reencode)

	case "o", "O":
		m.filePromptActive = true
		m.filePrompt.SetValue("")
		return m, m.filePrompt.Focus()
	}

	return m, nil
}

// requestQuit quits immediately, or asks for confirmation while an export is
// still running.
func (m *Model) requestQuit() (tea.Model, tea.Cmd) {
	if m.exp.running {
		m.confirmAbort = false
		m.confirmQuit = forms.NewConfirmAbortExportForm(&m.confirmAbort)
		return m, m.confirmQuit.Init()
	}
	m.quitting = true
	return m, tea.Quit
}

// updateConfirmForm routes messages to the quit-confirmation form.
func (m *Model) updateConfirmForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirmQuit.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmQuit = f
	}

	if m.confirmQuit.State == huh.StateCompleted {
		abort := m.confirmAbort
		m.confirmQuit = nil
		if abort {
			m.cancelExport()
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	}

	return m, cmd
}

// handleFilePrompt handles key events while the open-file prompt is active.
func (m *Model) handleFilePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filePromptActive = false
		m.filePrompt.Blur()
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.filePrompt.Value())
		m.filePromptActive = false
		m.filePrompt.Blur()
		if path == "" {
			return m, nil
		}
		return m, m.openFile(path)
	}

	var cmd tea.Cmd
	m.filePrompt, cmd = m.filePrompt.Update(msg)
	return m, cmd
}

// openFile loads a new video into the running player and resets the session.
func (m *Model) openFile(path string) tea.Cmd {
	// Windows drag-and-drop style quoting
	path = strings.Trim(path, `"`)

	info, err := os.Stat(path)
	if err != nil {
		return m.setResult("File not found: "+path, true)
	}
	if info.IsDir() {
		return m.setResult("Not a video file: "+path, true)
	}

	if err := m.ctrl.Load(path); err != nil {
		return m.setResult("Could not open: "+err.Error(), true)
	}
	m.sess.Load(path)
	m.lastExport = ""
	return m.setResult("Loaded: "+m.sess.Name(), false)
}

// markStart marks the fragment start at t.
func (m *Model) markStart(t float64) tea.Cmd {
	if err := m.sess.Selection().MarkStart(t); err != nil {
		return m.setResult(markError("start", err), true)
	}
	return m.setResult("Start marked at "+timeutil.FormatTime(t), false)
}

// markEnd marks the fragment end at t.
func (m *Model) markEnd(t float64) tea.Cmd {
	if err := m.sess.Selection().MarkEnd(t); err != nil {
		return m.setResult(markError("end", err), true)
	}
	return m.setResult("End marked at "+timeutil.FormatTime(t), false)
}

// toggleLoop flips fragment loop mode; when enabling it jumps playback to
// the fragment start and resumes, mirroring what a preview button would do.
func (m *Model) toggleLoop() tea.Cmd {
	sel := m.sess.Selection()
	enabled, ok := sel.ToggleLoop()
	if !ok {
		return m.setResult("Mark start and end before looping", true)
	}
	if enabled {
		if start, set := sel.Start(); set {
			_ = m.ctrl.Seek(start)
		}
		_ = m.ctrl.Play()
		start, _ := sel.Start()
		end, _ := sel.End()
		return m.setResult(fmt.Sprintf("Looping %s - %s",
			timeutil.FormatTime(start), timeutil.FormatTime(end)), false)
	}
	return m.setResult("Fragment loop disabled", false)
}

// pollPlayer refreshes playback state from mpv and runs the loop boundary
// check. Called once per tick. The returned command, if any, schedules the
// clearing of a result message set during the poll.
func (m *Model) pollPlayer() tea.Cmd {
	if m.client == nil || !m.client.IsConnected() {
		return nil
	}

	var cmd tea.Cmd

	// A different file in the player means the user dropped one onto the
	// mpv window (or used loadfile): start a fresh session for it.
	if path := m.ctrl.Path(); path != "" && path != m.sess.Media().Path {
		m.ctrl.Attach()
		m.sess.Load(path)
		m.lastExport = ""
		cmd = m.setResult("Loaded: "+m.sess.Name(), false)
	}

	m.sess.UpdateDuration(m.ctrl.Duration())

	pos := m.ctrl.Position()
	m.statusBar.TimePos = pos
	m.statusBar.Duration = m.sess.Media().Duration
	m.statusBar.Paused = m.ctrl.Paused()
	m.statusBar.FileName = m.sess.Name()
	m.statusBar.Looping = m.sess.Selection().Looping()
	if muted, err := m.client.GetMute(); err == nil {
		m.statusBar.Muted = muted
	}

	// Loop boundary check: seek back when the playhead passes the out
	// point. EOF is the same case for fragments ending at the duration,
	// where the reported position can stop just short of the mark.
	sel := m.sess.Selection()
	if seekTo, ok := sel.OnTick(pos); ok {
		_ = m.ctrl.Seek(seekTo)
	} else if sel.Looping() && m.ctrl.EOFReached() {
		if start, set := sel.Start(); set {
			_ = m.ctrl.Seek(start)
			_ = m.ctrl.Play()
		}
	}

	return cmd
}

// decreaseStepSize cycles to the previous (smaller) step size.
func (m *Model) decreaseStepSize() {
	idx := m.findStepSizeIndex()
	if idx > 0 {
		m.statusBar.StepSize = stepSizes[idx-1]
	}
}

// increaseStepSize cycles to the next (larger) step size.
func (m *Model) increaseStepSize() {
	idx := m.findStepSizeIndex()
	if idx < len(stepSizes)-1 {
		m.statusBar.StepSize = stepSizes[idx+1]
	}
}

// findStepSizeIndex finds the index of the current step size, or the closest
// one below it.
func (m *Model) findStepSizeIndex() int {
	for i, size := range stepSizes {
		if m.statusBar.StepSize == size {
			return i
		}
	}
	for i, size := range stepSizes {
		if m.statusBar.StepSize < size {
			if i == 0 {
				return 0
			}
			return i - 1
		}
	}
	return len(stepSizes) - 1
}

// minTerminalWidth is the minimum terminal width for the two-column layout.
const minTerminalWidth = 60

// View renders the current state of the model as a string.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	statusBar := components.StatusBar(m.statusBar, m.width)

	if m.confirmQuit != nil {
		return statusBar + "\n\n" + m.confirmQuit.View()
	}

	if m.width > 0 && m.width < minTerminalWidth {
		return styles.Warning.Render(fmt.Sprintf("Terminal too narrow (%d cols)", m.width)) + "\n" +
			styles.SecondaryText.Render(fmt.Sprintf("Minimum width: %d columns", minTerminalWidth))
	}

	if m.filePromptActive {
		promptBox := components.RenderInfoBox("Open video", []string{" " + m.filePrompt.View()}, m.width)
		hint := styles.SecondaryText.Render(" Enter to load, Esc to cancel.")
		return statusBar + "\n\n" + promptBox + "\n" + hint
	}

	// --- Two-column layout: controls | session/fragment detail ---
	colHeight := m.height - 7
	if colHeight < 5 {
		colHeight = 5
	}
	col1Width := 24
	col2Width := m.width - col1Width - 1

	media := m.sess.Media()
	sel := m.sess.Selection()
	start, startSet := sel.Start()
	end, endSet := sel.End()

	panelState := components.FragmentPanelState{
		Duration:   media.Duration,
		Start:      start,
		End:        end,
		StartSet:   startSet,
		EndSet:     endSet,
		Looping:    sel.Looping(),
		LastExport: m.lastExport,
	}
	if media.Loaded {
		panelState.SourcePath = media.Path
		panelState.OutputDir = export.OutputDir(media.Path)
	}

	col1Lines := components.ControlsColumn()
	col2Lines := components.FragmentPanel(panelState, components.ExportState{
		Running:  m.exp.running,
		Spinner:  m.spin.View(),
		Reencode: m.exp.reencode,
	}, col2Width)

	for len(col1Lines) < colHeight {
		col1Lines = append(col1Lines, "")
	}
	for len(col2Lines) < colHeight {
		col2Lines = append(col2Lines, "")
	}

	border := lipgloss.NewStyle().Foreground(styles.Slate).Render("│")
	var rows []string
	for i := 0; i < colHeight; i++ {
		rows = append(rows, padToWidth(col1Lines[i], col1Width)+border+padToWidth(col2Lines[i], col2Width))
	}
	columnsView := strings.Join(rows, "\n")

	timeline := components.Timeline(components.TimelineState{
		TimePos:  m.statusBar.TimePos,
		Duration: m.statusBar.Duration,
		Start:    start,
		End:      end,
		StartSet: startSet,
		EndSet:   endSet,
		Looping:  sel.Looping(),
	}, m.width)

	commandInput := components.CommandInput(m.commandInput, m.width)

	return statusBar + "\n" + columnsView + "\n" + timeline + "\n" + commandInput
}

// padToWidth pads a string with spaces to the specified width.
// If the string is wider (due to ANSI sequences), it is returned as-is.
func padToWidth(s string, width int) string {
	currentWidth := lipgloss.Width(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}

// Run starts the Bubbletea program over a connected mpv client.
// videoPath is the file the player was launched with; reencode selects the
// default export mode.
func Run(client *mpv.Client, videoPath string, reencode bool) error {
	model := NewModel(client, videoPath, reencode)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	// Never leave an orphaned ffmpeg behind.
	model.cancelExport()
	return err
}
