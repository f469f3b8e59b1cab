// Package player adapts the mpv backend to the small playback surface the
// rest of the application depends on: load, play, pause, seek, position,
// duration. The backend's event-driven side is deliberately not exposed;
// callers poll the controller instead, which keeps the fragment boundary
// logic independent of any particular player's event model.
package player

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMedia is returned when an operation requires loaded media.
	ErrNoMedia = errors.New("player: no media loaded")
	// ErrUnsupportedMedia is returned when the backend cannot open a file.
	ErrUnsupportedMedia = errors.New("player: backend could not open media")
)

// Backend is the subset of the mpv client the controller drives.
// *mpv.Client satisfies it.
type Backend interface {
	LoadFile(path string) error
	GetPath() (string, error)
	Play() error
	Pause() error
	TogglePause() error
	Seek(seconds float64) error
	GetTimePos() (float64, error)
	GetDuration() (float64, error)
	GetPaused() (bool, error)
	GetEOFReached() (bool, error)
}

// Controller is a pass-through adapter over the playback backend with the
// clamping and no-op semantics the UI relies on. It carries no algorithm of
// its own.
type Controller struct {
	backend  Backend
	loaded   bool
	duration float64
}

// New creates a controller over the given backend.
func New(backend Backend) *Controller {
	return &Controller{backend: backend}
}

// Load asks the backend to open the file at path. The duration is not known
// until the backend reports it; poll Duration afterwards.
func (c *Controller) Load(path string) error {
	if err := c.backend.LoadFile(path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedMedia, err)
	}
	c.loaded = true
	c.duration = 0
	return nil
}

// Attach marks the controller as driving media the backend already has open
// (the launcher passes the file on the mpv command line).
func (c *Controller) Attach() {
	c.loaded = true
	c.duration = 0
}

// Loaded reports whether media is loaded.
func (c *Controller) Loaded() bool {
	return c.loaded
}

// Play resumes playback. No-op when no media is loaded.
func (c *Controller) Play() error {
	if !c.loaded {
		return nil
	}
	return c.backend.Play()
}

// Pause pauses playback. No-op when no media is loaded.
func (c *Controller) Pause() error {
	if !c.loaded {
		return nil
	}
	return c.backend.Pause()
}

// TogglePause flips the pause state. No-op when no media is loaded.
func (c *Controller) TogglePause() error {
	if !c.loaded {
		return nil
	}
	return c.backend.TogglePause()
}

// Seek seeks to t seconds, clamped into [0, duration].
func (c *Controller) Seek(t float64) error {
	if !c.loaded {
		return ErrNoMedia
	}
	if t < 0 {
		t = 0
	}
	if c.duration > 0 && t > c.duration {
		t = c.duration
	}
	return c.backend.Seek(t)
}

// Position returns the backend-reported playback position, or 0 if the
// backend doesn't know it yet.
func (c *Controller) Position() float64 {
	if !c.loaded {
		return 0
	}
	pos, err := c.backend.GetTimePos()
	if err != nil || pos < 0 {
		return 0
	}
	return pos
}

// Duration returns the media duration, or 0 while the backend hasn't
// reported it. The last known value is cached so seek clamping keeps working
// through transient IPC errors.
func (c *Controller) Duration() float64 {
	if !c.loaded {
		return 0
	}
	d, err := c.backend.GetDuration()
	if err == nil && d > 0 {
		c.duration = d
	}
	return c.duration
}

// Paused returns the backend-reported pause state; defaults to true when
// unknown.
func (c *Controller) Paused() bool {
	if !c.loaded {
		return true
	}
	paused, err := c.backend.GetPaused()
	if err != nil {
		return true
	}
	return paused
}

// EOFReached reports whether playback ran off the end of the file.
func (c *Controller) EOFReached() bool {
	if !c.loaded {
		return false
	}
	eof, err := c.backend.GetEOFReached()
	return err == nil && eof
}

// Path returns the path of the file the backend currently has open.
// An empty string means the backend has nothing loaded (or hasn't told us).
func (c *Controller) Path() string {
	path, err := c.backend.GetPath()
	if err != nil {
		return ""
	}
	return path
}
