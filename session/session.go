// Package session owns the per-video state the UI mutates: which file is
// loaded, its duration, and the marked fragment. Keeping it in one object
// instead of ambient globals gives the export path a single place to read a
// consistent snapshot from.
package session

import (
	"path/filepath"

	"github.com/user/video-cutter-cli/export"
	"github.com/user/video-cutter-cli/fragment"
)

// Media describes the currently loaded file. Duration stays 0 until the
// playback backend reports it.
type Media struct {
	Path     string
	Duration float64
	Loaded   bool
}

// Session holds the loaded media and its fragment selection.
// It is mutated only from the UI loop.
type Session struct {
	media     Media
	selection *fragment.Selection
}

// New returns an empty session with nothing loaded.
func New() *Session {
	return &Session{selection: fragment.NewSelection(0)}
}

// Load replaces the session's media and resets the fragment selection.
// Marks from the previous file never survive a load.
func (s *Session) Load(path string) {
	s.media = Media{Path: path, Loaded: true}
	s.selection = fragment.NewSelection(0)
}

// UpdateDuration records the backend-reported duration and propagates it to
// the selection so marks validate against it.
func (s *Session) UpdateDuration(d float64) {
	if d <= 0 {
		return
	}
	s.media.Duration = d
	s.selection.SetDuration(d)
}

// Media returns the loaded media descriptor.
func (s *Session) Media() Media {
	return s.media
}

// Selection returns the fragment selection for the loaded media.
func (s *Session) Selection() *fragment.Selection {
	return s.selection
}

// Name returns the base name of the loaded file, for display.
func (s *Session) Name() string {
	if !s.media.Loaded {
		return ""
	}
	return filepath.Base(s.media.Path)
}

// ExportRequest builds an immutable export request from the current media
// and selection. It fails with the selection's errors when no media is
// loaded or the fragment is incomplete.
func (s *Session) ExportRequest(reencode bool) (export.Request, error) {
	if !s.media.Loaded || s.media.Duration <= 0 {
		return export.Request{}, fragment.ErrNoMedia
	}
	start, ok := s.selection.Start()
	if !ok {
		return export.Request{}, fragment.ErrInvalidRange
	}
	end, ok := s.selection.End()
	if !ok {
		return export.Request{}, fragment.ErrInvalidRange
	}
	return export.Request{
		Source:   s.media.Path,
		Start:    start,
		End:      end,
		Duration: s.media.Duration,
		Reencode: reencode,
	}, nil
}
