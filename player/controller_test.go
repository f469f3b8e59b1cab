package player

import (
	"errors"
	"testing"
)

// fakeBackend records calls and returns canned values.
type fakeBackend struct {
	path       string
	timePos    float64
	timeErr    error
	duration   float64
	durErr     error
	paused     bool
	pausedErr  error
	eof        bool
	loadErr    error
	seekedTo   []float64
	playCalls  int
	pauseCalls int
}

func (f *fakeBackend) LoadFile(path string) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.path = path
	return nil
}
func (f *fakeBackend) GetPath() (string, error) {
	if f.path == "" {
		return "", errors.New("property unavailable")
	}
	return f.path, nil
}
func (f *fakeBackend) Play() error        { f.playCalls++; return nil }
func (f *fakeBackend) Pause() error       { f.pauseCalls++; return nil }
func (f *fakeBackend) TogglePause() error { return nil }
func (f *fakeBackend) Seek(seconds float64) error {
	f.seekedTo = append(f.seekedTo, seconds)
	return nil
}
func (f *fakeBackend) GetTimePos() (float64, error)  { return f.timePos, f.timeErr }
func (f *fakeBackend) GetDuration() (float64, error) { return f.duration, f.durErr }
func (f *fakeBackend) GetPaused() (bool, error)      { return f.paused, f.pausedErr }
func (f *fakeBackend) GetEOFReached() (bool, error)  { return f.eof, nil }

func TestLoadFailureIsUnsupportedMedia(t *testing.T) {
	b := &fakeBackend{loadErr: errors.New("unrecognized format")}
	c := New(b)

	err := c.Load("/videos/broken.bin")
	if !errors.Is(err, ErrUnsupportedMedia) {
		t.Fatalf("Load() error = %v, want ErrUnsupportedMedia", err)
	}
	if c.Loaded() {
		t.Error("controller reports loaded after failed load")
	}
}

func TestPlayPauseNoOpWithoutMedia(t *testing.T) {
	b := &fakeBackend{}
	c := New(b)

	if err := c.Play(); err != nil {
		t.Fatalf("Play() without media: %v", err)
	}
	if err := c.Pause(); err != nil {
		t.Fatalf("Pause() without media: %v", err)
	}
	if b.playCalls != 0 || b.pauseCalls != 0 {
		t.Errorf("backend reached without media: play=%d pause=%d", b.playCalls, b.pauseCalls)
	}
}

func TestSeekClamping(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		seekTo   float64
		want     float64
	}{
		{"negative clamps to zero", 120, -3, 0},
		{"beyond duration clamps", 120, 500, 120},
		{"within range passes through", 120, 60.5, 60.5},
		{"exactly duration allowed", 120, 120, 120},
		{"unknown duration passes through", 0, 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &fakeBackend{duration: tt.duration}
			c := New(b)
			c.Attach()
			c.Duration() // prime the cached duration

			if err := c.Seek(tt.seekTo); err != nil {
				t.Fatalf("Seek(%v) error: %v", tt.seekTo, err)
			}
			if len(b.seekedTo) != 1 || b.seekedTo[0] != tt.want {
				t.Errorf("backend seeked to %v, want [%v]", b.seekedTo, tt.want)
			}
		})
	}
}

func TestSeekWithoutMedia(t *testing.T) {
	c := New(&fakeBackend{})
	if err := c.Seek(10); !errors.Is(err, ErrNoMedia) {
		t.Fatalf("Seek() without media error = %v, want ErrNoMedia", err)
	}
}

func TestPositionUnknownIsZero(t *testing.T) {
	b := &fakeBackend{timeErr: errors.New("property unavailable")}
	c := New(b)
	c.Attach()

	if got := c.Position(); got != 0 {
		t.Errorf("Position() with backend error = %v, want 0", got)
	}

	b.timeErr = nil
	b.timePos = -0.04
	if got := c.Position(); got != 0 {
		t.Errorf("Position() with negative backend value = %v, want 0", got)
	}
}

func TestDurationCachedThroughErrors(t *testing.T) {
	b := &fakeBackend{duration: 90}
	c := New(b)
	c.Attach()

	if got := c.Duration(); got != 90 {
		t.Fatalf("Duration() = %v, want 90", got)
	}

	b.durErr = errors.New("ipc hiccup")
	if got := c.Duration(); got != 90 {
		t.Errorf("Duration() after backend error = %v, want cached 90", got)
	}
}
