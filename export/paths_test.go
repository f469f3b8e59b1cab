package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputDir(t *testing.T) {
	got := OutputDir("/videos/match.mp4")
	want := filepath.Join("/videos", "VideoCutter_out")
	if got != want {
		t.Errorf("OutputDir() = %q, want %q", got, want)
	}
}

func TestFragmentName(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		start, end float64
		want       string
	}{
		{"basic", "/videos/match.mp4", 10, 20, "match_0-00-10_0-00-20.mp4"},
		{"keeps extension", "/videos/talk.mkv", 90, 150, "talk_0-01-30_0-02-30.mkv"},
		{"hour range", "/v/long.mp4", 3725, 7200, "long_1-02-05_2-00-00.mp4"},
		{"stem with dots", "/v/a.b.mp4", 0, 1, "a.b_0-00-00_0-00-01.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FragmentName(tt.path, tt.start, tt.end); got != tt.want {
				t.Errorf("FragmentName(%q, %v, %v) = %q, want %q", tt.path, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestDistinctRangesDistinctNames(t *testing.T) {
	a := FragmentName("/videos/match.mp4", 10, 20)
	b := FragmentName("/videos/match.mp4", 30, 40)
	if a == b {
		t.Fatalf("different ranges produced the same name %q", a)
	}
}

func TestResolveCollision(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip_0-00-10_0-00-20.mp4")

	// Nothing there yet: path comes back unchanged, and is claimed so a
	// concurrent resolve cannot get the same name.
	if got := resolveCollision(path); got != path {
		t.Fatalf("resolveCollision on free path = %q, want %q", got, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("resolved name was not claimed: %v", err)
	}

	// Path taken: first disambiguator is _2.
	want2 := filepath.Join(dir, "clip_0-00-10_0-00-20_2.mp4")
	if got := resolveCollision(path); got != want2 {
		t.Fatalf("resolveCollision with one collision = %q, want %q", got, want2)
	}

	// _2 taken as well: next free slot is _3.
	want3 := filepath.Join(dir, "clip_0-00-10_0-00-20_3.mp4")
	if got := resolveCollision(path); got != want3 {
		t.Fatalf("resolveCollision with two collisions = %q, want %q", got, want3)
	}
}
