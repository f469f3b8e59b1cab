// Package mpv talks to a running mpv process over its JSON IPC socket.
// It is the only place that knows about the playback backend's wire protocol;
// the rest of the application goes through the player package.
package mpv

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
)

// DefaultSocketPath is the default Unix socket path for mpv IPC.
const DefaultSocketPath = "/tmp/video-cutter-mpv.sock"

var (
	// ErrNotConnected is returned when attempting operations on a disconnected client.
	ErrNotConnected = errors.New("mpv: not connected")
	// ErrSocketNotFound is returned when the socket file doesn't exist.
	ErrSocketNotFound = errors.New("mpv: socket not found - is mpv running with --input-ipc-server?")

	// requestID is a global counter for generating unique request IDs.
	requestID uint64
)

// ipcRequest is a JSON IPC request to mpv.
type ipcRequest struct {
	Command   []interface{} `json:"command"`
	RequestID uint64        `json:"request_id"`
}

// ipcResponse is a JSON IPC response from mpv. Lines without a matching
// request_id are asynchronous events and are skipped.
type ipcResponse struct {
	Data      interface{} `json:"data"`
	RequestID uint64      `json:"request_id"`
	Error     string      `json:"error"`
}

// Client is an mpv IPC client communicating over a Unix socket.
type Client struct {
	socketPath string
	conn       net.Conn
	reader     *bufio.Reader
	mu         sync.Mutex
}

// NewClient creates a new mpv IPC client.
// If socketPath is empty, DefaultSocketPath is used.
func NewClient(socketPath string) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	return &Client{socketPath: socketPath}
}

// Connect establishes a connection to the mpv IPC socket.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return ErrSocketNotFound
	}

	c.conn = conn
	c.reader = bufio.NewReader(conn)
	return nil
}

// Close closes the connection to mpv.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}

// IsConnected returns true if the client is connected to mpv.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// SocketPath returns the socket path this client is configured to use.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// GetProperty retrieves the value of an mpv property
// (e.g. "time-pos", "duration", "pause", "path").
func (c *Client) GetProperty(name string) (interface{}, error) {
	return c.sendCommand("get_property", name)
}

// SetProperty sets the value of an mpv property.
func (c *Client) SetProperty(name string, value interface{}) error {
	_, err := c.sendCommand("set_property", name, value)
	return err
}

// LoadFile replaces the currently playing file with the given path.
func (c *Client) LoadFile(path string) error {
	_, err := c.sendCommand("loadfile", path, "replace")
	return err
}

// GetPath returns the path of the currently loaded file, or an error if
// nothing is loaded.
func (c *Client) GetPath() (string, error) {
	result, err := c.GetProperty("path")
	if err != nil {
		return "", err
	}
	path, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("mpv: unexpected path value type: %T", result)
	}
	return path, nil
}

// GetTimePos returns the current playback position in seconds.
func (c *Client) GetTimePos() (float64, error) {
	result, err := c.GetProperty("time-pos")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// GetDuration returns the total duration of the video in seconds.
// mpv reports this property only once the file's demuxer has it, so callers
// must tolerate an error shortly after a load.
func (c *Client) GetDuration() (float64, error) {
	result, err := c.GetProperty("duration")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// GetPaused returns true if playback is paused.
func (c *Client) GetPaused() (bool, error) {
	result, err := c.GetProperty("pause")
	if err != nil {
		return false, err
	}
	paused, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("mpv: unexpected pause value type: %T", result)
	}
	return paused, nil
}

// Play resumes playback.
func (c *Client) Play() error {
	return c.SetProperty("pause", false)
}

// Pause pauses playback.
func (c *Client) Pause() error {
	return c.SetProperty("pause", true)
}

// TogglePause flips the pause state using mpv's cycle command.
func (c *Client) TogglePause() error {
	_, err := c.sendCommand("cycle", "pause")
	return err
}

// Seek seeks to an absolute position in seconds.
func (c *Client) Seek(seconds float64) error {
	_, err := c.sendCommand("seek", seconds, "absolute")
	return err
}

// SeekRelative seeks by an offset in seconds (negative = backward).
func (c *Client) SeekRelative(offset float64) error {
	_, err := c.sendCommand("seek", offset, "relative")
	return err
}

// GetMute returns true if audio is muted.
func (c *Client) GetMute() (bool, error) {
	result, err := c.GetProperty("mute")
	if err != nil {
		return false, err
	}
	muted, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("mpv: unexpected mute value type: %T", result)
	}
	return muted, nil
}

// SetMute sets the mute state.
func (c *Client) SetMute(muted bool) error {
	return c.SetProperty("mute", muted)
}

// GetSpeed returns the current playback speed multiplier.
func (c *Client) GetSpeed() (float64, error) {
	result, err := c.GetProperty("speed")
	if err != nil {
		return 0, err
	}
	return toFloat64(result)
}

// SetSpeed sets the playback speed multiplier.
func (c *Client) SetSpeed(speed float64) error {
	return c.SetProperty("speed", speed)
}

// GetEOFReached returns true if playback reached the end of the file.
// Requires mpv to be launched with --keep-open so the file stays loaded.
func (c *Client) GetEOFReached() (bool, error) {
	result, err := c.GetProperty("eof-reached")
	if err != nil {
		return false, err
	}
	eof, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("mpv: unexpected eof-reached value type: %T", result)
	}
	return eof, nil
}

// ShowText displays a message on the mpv OSD for the given duration in ms.
func (c *Client) ShowText(text string, durationMs int) error {
	_, err := c.sendCommand("show-text", text, durationMs)
	return err
}

// toFloat64 converts an interface{} to float64.
// JSON numbers from mpv are typically decoded as float64.
func toFloat64(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("mpv: unexpected numeric value type: %T", v)
	}
}

// sendCommand sends a JSON IPC command to mpv and returns the result.
// The command is formatted as {"command": [command, args...], "request_id": <id>}
// and sent as newline-terminated JSON over the socket.
func (c *Client) sendCommand(command string, args ...interface{}) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, ErrNotConnected
	}

	cmdArray := make([]interface{}, 0, len(args)+1)
	cmdArray = append(cmdArray, command)
	cmdArray = append(cmdArray, args...)

	req := ipcRequest{
		Command:   cmdArray,
		RequestID: atomic.AddUint64(&requestID, 1),
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("mpv: failed to marshal command: %w", err)
	}

	data = append(data, '\n')
	if _, err := c.conn.Write(data); err != nil {
		return nil, fmt.Errorf("mpv: failed to send command: %w", err)
	}

	// Read response lines until our request_id comes back. Lines that don't
	// parse or don't match are events pushed by mpv.
	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("mpv: failed to read response: %w", err)
		}

		var resp ipcResponse
		if err := json.Unmarshal(line, &resp); err != nil {
			continue
		}

		if resp.RequestID == req.RequestID {
			if resp.Error != "" && resp.Error != "success" {
				return nil, fmt.Errorf("mpv: %s", resp.Error)
			}
			return resp.Data, nil
		}
	}
}
