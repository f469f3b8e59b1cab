package session

import (
	"errors"
	"testing"

	"github.com/user/video-cutter-cli/fragment"
)

func TestLoadResetsSelection(t *testing.T) {
	s := New()
	s.Load("/videos/first.mp4")
	s.UpdateDuration(60)

	if err := s.Selection().MarkStart(10); err != nil {
		t.Fatal(err)
	}
	if err := s.Selection().MarkEnd(20); err != nil {
		t.Fatal(err)
	}

	s.Load("/videos/second.mp4")

	if s.Selection().Complete() {
		t.Error("selection survived loading a new file")
	}
	if s.Media().Duration != 0 {
		t.Errorf("duration = %v after load, want 0 until backend reports it", s.Media().Duration)
	}
	if s.Name() != "second.mp4" {
		t.Errorf("Name() = %q, want %q", s.Name(), "second.mp4")
	}
}

func TestUpdateDurationIgnoresNonPositive(t *testing.T) {
	s := New()
	s.Load("/videos/a.mp4")
	s.UpdateDuration(90)
	s.UpdateDuration(0)
	s.UpdateDuration(-1)

	if s.Media().Duration != 90 {
		t.Errorf("duration = %v, want 90", s.Media().Duration)
	}
}

func TestExportRequest(t *testing.T) {
	s := New()
	s.Load("/videos/match.mp4")
	s.UpdateDuration(60)
	if err := s.Selection().MarkStart(10); err != nil {
		t.Fatal(err)
	}
	if err := s.Selection().MarkEnd(20); err != nil {
		t.Fatal(err)
	}

	req, err := s.ExportRequest(false)
	if err != nil {
		t.Fatalf("ExportRequest() error: %v", err)
	}
	if req.Source != "/videos/match.mp4" || req.Start != 10 || req.End != 20 || req.Duration != 60 {
		t.Errorf("ExportRequest() = %+v", req)
	}
	if req.Reencode {
		t.Error("Reencode = true, want false")
	}
}

func TestExportRequestWithoutMedia(t *testing.T) {
	s := New()
	if _, err := s.ExportRequest(false); !errors.Is(err, fragment.ErrNoMedia) {
		t.Errorf("ExportRequest() without media error = %v, want ErrNoMedia", err)
	}
}

func TestExportRequestIncompleteSelection(t *testing.T) {
	s := New()
	s.Load("/videos/match.mp4")
	s.UpdateDuration(60)
	if err := s.Selection().MarkStart(10); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ExportRequest(false); !errors.Is(err, fragment.ErrInvalidRange) {
		t.Errorf("ExportRequest() with half a selection error = %v, want ErrInvalidRange", err)
	}
}
