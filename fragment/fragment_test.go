package fragment

import (
	"errors"
	"testing"
)

func TestMarkStartThenEnd(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		start    float64
		end      float64
	}{
		{"interior range", 60, 10, 20},
		{"start at zero", 60, 0, 5},
		{"end at duration", 60, 30, 60},
		{"whole file", 60, 0, 60},
		{"sub-second range", 60, 1.25, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(tt.duration)
			if err := s.MarkStart(tt.start); err != nil {
				t.Fatalf("MarkStart(%v) error: %v", tt.start, err)
			}
			if err := s.MarkEnd(tt.end); err != nil {
				t.Fatalf("MarkEnd(%v) error: %v", tt.end, err)
			}
			gotStart, ok := s.Start()
			if !ok || gotStart != tt.start {
				t.Errorf("Start() = (%v, %v), want (%v, true)", gotStart, ok, tt.start)
			}
			gotEnd, ok := s.End()
			if !ok || gotEnd != tt.end {
				t.Errorf("End() = (%v, %v), want (%v, true)", gotEnd, ok, tt.end)
			}
			if !s.Complete() {
				t.Error("Complete() = false after both marks")
			}
		})
	}
}

func TestMarkRejectsInvalidRange(t *testing.T) {
	tests := []struct {
		name string
		mark func(s *Selection) error
	}{
		{"end equal to start", func(s *Selection) error {
			if err := s.MarkStart(10); err != nil {
				t.Fatal(err)
			}
			return s.MarkEnd(10)
		}},
		{"end before start", func(s *Selection) error {
			if err := s.MarkStart(10); err != nil {
				t.Fatal(err)
			}
			return s.MarkEnd(5)
		}},
		{"start equal to end", func(s *Selection) error {
			if err := s.MarkEnd(10); err != nil {
				t.Fatal(err)
			}
			return s.MarkStart(10)
		}},
		{"start after end", func(s *Selection) error {
			if err := s.MarkEnd(10); err != nil {
				t.Fatal(err)
			}
			return s.MarkStart(15)
		}},
		{"start negative", func(s *Selection) error {
			return s.MarkStart(-1)
		}},
		{"start past duration", func(s *Selection) error {
			return s.MarkStart(61)
		}},
		{"end past duration", func(s *Selection) error {
			return s.MarkEnd(60.1)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(60)
			if err := tt.mark(s); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("got error %v, want ErrInvalidRange", err)
			}
		})
	}
}

func TestMarkWithoutMedia(t *testing.T) {
	s := NewSelection(0)
	if err := s.MarkStart(0); !errors.Is(err, ErrNoMedia) {
		t.Errorf("MarkStart without media: got %v, want ErrNoMedia", err)
	}
	if err := s.MarkEnd(1); !errors.Is(err, ErrNoMedia) {
		t.Errorf("MarkEnd without media: got %v, want ErrNoMedia", err)
	}
}

func TestRemarkingMovesPoint(t *testing.T) {
	s := NewSelection(60)
	if err := s.MarkStart(10); err != nil {
		t.Fatal(err)
	}
	if err := s.MarkEnd(20); err != nil {
		t.Fatal(err)
	}
	// Move the start earlier, then the end later.
	if err := s.MarkStart(5); err != nil {
		t.Fatalf("re-marking start: %v", err)
	}
	if err := s.MarkEnd(30); err != nil {
		t.Fatalf("re-marking end: %v", err)
	}
	start, _ := s.Start()
	end, _ := s.End()
	if start != 5 || end != 30 {
		t.Errorf("selection = (%v, %v), want (5, 30)", start, end)
	}
}

func TestToggleLoopRequiresCompleteRange(t *testing.T) {
	s := NewSelection(60)

	if _, ok := s.ToggleLoop(); ok {
		t.Error("ToggleLoop with no marks should be a no-op")
	}

	if err := s.MarkStart(10); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.ToggleLoop(); ok {
		t.Error("ToggleLoop with only start marked should be a no-op")
	}

	if err := s.MarkEnd(20); err != nil {
		t.Fatal(err)
	}
	enabled, ok := s.ToggleLoop()
	if !ok || !enabled {
		t.Errorf("ToggleLoop with complete range = (%v, %v), want (true, true)", enabled, ok)
	}
	enabled, ok = s.ToggleLoop()
	if !ok || enabled {
		t.Errorf("second ToggleLoop = (%v, %v), want (false, true)", enabled, ok)
	}
}

func TestOnTick(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(s *Selection)
		position   float64
		wantSeek   float64
		wantActive bool
	}{
		{
			name: "before end no seek",
			setup: func(s *Selection) {
				s.MarkStart(10)
				s.MarkEnd(20)
				s.ToggleLoop()
			},
			position: 15,
		},
		{
			name: "at end seeks to start",
			setup: func(s *Selection) {
				s.MarkStart(10)
				s.MarkEnd(20)
				s.ToggleLoop()
			},
			position:   20,
			wantSeek:   10,
			wantActive: true,
		},
		{
			name: "past end seeks to start",
			setup: func(s *Selection) {
				s.MarkStart(10)
				s.MarkEnd(20)
				s.ToggleLoop()
			},
			position:   23.4,
			wantSeek:   10,
			wantActive: true,
		},
		{
			name: "loop disabled no seek",
			setup: func(s *Selection) {
				s.MarkStart(10)
				s.MarkEnd(20)
			},
			position: 25,
		},
		{
			name:     "unset marks no seek",
			setup:    func(s *Selection) {},
			position: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(60)
			tt.setup(s)
			seekTo, ok := s.OnTick(tt.position)
			if ok != tt.wantActive {
				t.Fatalf("OnTick(%v) ok = %v, want %v", tt.position, ok, tt.wantActive)
			}
			if ok && seekTo != tt.wantSeek {
				t.Errorf("OnTick(%v) seekTo = %v, want %v", tt.position, seekTo, tt.wantSeek)
			}
		})
	}
}

func TestClearResetsEverything(t *testing.T) {
	s := NewSelection(60)
	s.MarkStart(10)
	s.MarkEnd(20)
	s.ToggleLoop()

	s.Clear()

	if s.Complete() {
		t.Error("Complete() = true after Clear")
	}
	if s.Looping() {
		t.Error("Looping() = true after Clear")
	}
	if _, ok := s.Start(); ok {
		t.Error("Start() set after Clear")
	}
	if _, ok := s.End(); ok {
		t.Error("End() set after Clear")
	}
}
