// Package fragment tracks the in/out points a user marks on the loaded video
// and decides when loop playback has to jump back to the start.
package fragment

import "errors"

var (
	// ErrNoMedia is returned when marking a point with no media loaded.
	ErrNoMedia = errors.New("fragment: no media loaded")
	// ErrInvalidRange is returned when a mark would break start < end or
	// fall outside the media's duration.
	ErrInvalidRange = errors.New("fragment: invalid range")
)

// Selection holds the marked fragment for the loaded media.
// Start and End are unset until marked; when both are set the invariant
// 0 <= Start < End <= duration holds.
type Selection struct {
	start    float64
	end      float64
	startSet bool
	endSet   bool
	loop     bool
	duration float64
}

// NewSelection returns an empty selection for media of the given duration.
// A duration of 0 means no media is loaded and all marks fail.
func NewSelection(duration float64) *Selection {
	return &Selection{duration: duration}
}

// SetDuration updates the media duration. The backend reports it some time
// after load, so the selection starts out unmarked and unmarkable.
func (s *Selection) SetDuration(d float64) {
	s.duration = d
}

// Duration returns the media duration the selection validates against.
func (s *Selection) Duration() float64 {
	return s.duration
}

// MarkStart sets the fragment start to t.
// Marks at exactly 0 or exactly the duration are accepted.
func (s *Selection) MarkStart(t float64) error {
	if s.duration <= 0 {
		return ErrNoMedia
	}
	if t < 0 || t > s.duration {
		return ErrInvalidRange
	}
	if s.endSet && t >= s.end {
		return ErrInvalidRange
	}
	s.start = t
	s.startSet = true
	return nil
}

// MarkEnd sets the fragment end to t. t == start fails: a fragment is the
// half-open range [start, end) and must be non-empty.
func (s *Selection) MarkEnd(t float64) error {
	if s.duration <= 0 {
		return ErrNoMedia
	}
	if t < 0 || t > s.duration {
		return ErrInvalidRange
	}
	if s.startSet && t <= s.start {
		return ErrInvalidRange
	}
	s.end = t
	s.endSet = true
	return nil
}

// Clear resets both marks and disables looping.
func (s *Selection) Clear() {
	s.start = 0
	s.end = 0
	s.startSet = false
	s.endSet = false
	s.loop = false
}

// Start returns the marked start point, if set.
func (s *Selection) Start() (float64, bool) {
	return s.start, s.startSet
}

// End returns the marked end point, if set.
func (s *Selection) End() (float64, bool) {
	return s.end, s.endSet
}

// Complete reports whether both points are marked.
func (s *Selection) Complete() bool {
	return s.startSet && s.endSet
}

// Looping reports whether loop mode is on.
func (s *Selection) Looping() bool {
	return s.loop
}

// ToggleLoop flips loop mode and returns the new state. Looping needs a
// complete range; toggling without one is a no-op, reported by the second
// return value so the UI can tell the user rather than error out.
func (s *Selection) ToggleLoop() (enabled bool, ok bool) {
	if !s.Complete() {
		return false, false
	}
	s.loop = !s.loop
	return s.loop, true
}

// OnTick checks the playback position against the fragment boundary.
// It returns the position to seek to (the fragment start) when loop mode is
// on, both points are marked, and position has reached or passed the end.
// In every other state it returns ok == false.
func (s *Selection) OnTick(position float64) (seekTo float64, ok bool) {
	if !s.loop || !s.Complete() {
		return 0, false
	}
	if position >= s.end {
		return s.start, true
	}
	return 0, false
}
