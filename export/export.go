// Package export cuts the marked fragment out of the source file by running
// ffmpeg as a subprocess. The default mode is stream copy: no re-encode, so
// cuts snap to keyframes but finish in roughly I/O time. Re-encode mode
// trades speed for frame-accurate cut points.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/user/video-cutter-cli/deps"
)

// ErrInvalidRange is returned when the requested range is empty or falls
// outside the source's duration. Validation happens before any process is
// spawned.
var ErrInvalidRange = errors.New("export: invalid range")

// TranscodeError reports a transcoder run that exited nonzero, carrying the
// combined diagnostic output ffmpeg wrote.
type TranscodeError struct {
	Output string
	Err    error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("export: ffmpeg failed: %v", e.Err)
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}

// Request is an immutable description of one fragment export, built from the
// session at the moment the user asks for it.
type Request struct {
	Source   string
	Start    float64
	End      float64
	Duration float64
	Reencode bool
}

// Exporter runs ffmpeg exports. Bin is overridable for tests; it defaults
// to "ffmpeg" resolved on PATH.
type Exporter struct {
	Bin string
}

// New returns an exporter using ffmpeg from PATH.
func New() *Exporter {
	return &Exporter{Bin: "ffmpeg"}
}

// Export cuts req's fragment into <source dir>/VideoCutter_out/ and returns
// the output path. The context cancels the ffmpeg process; the incomplete
// output file is removed best-effort on any failure.
func (e *Exporter) Export(ctx context.Context, req Request) (string, error) {
	if req.Start < 0 || req.Start >= req.End || req.End > req.Duration {
		return "", fmt.Errorf("%w: start=%.3f end=%.3f duration=%.3f",
			ErrInvalidRange, req.Start, req.End, req.Duration)
	}

	if e.Bin == "" || e.Bin == "ffmpeg" {
		if err := deps.CheckFfmpeg(); err != nil {
			return "", err
		}
	} else if _, err := os.Stat(e.Bin); err != nil {
		return "", &deps.DependencyError{Name: e.Bin, InstallURL: deps.FfmpegInstallURL}
	}

	outDir := OutputDir(req.Source)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("export: failed to create output directory: %w", err)
	}

	outPath := resolveCollision(filepath.Join(outDir, FragmentName(req.Source, req.Start, req.End)))

	cmd := exec.CommandContext(ctx, e.Bin, e.args(req, outPath)...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		// Best-effort removal of whatever ffmpeg wrote before dying.
		_ = os.Remove(outPath)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &TranscodeError{Output: out.String(), Err: err}
	}

	return outPath, nil
}

// args derives the transcoder command line: seek offset = start,
// duration = end - start. -ss before -i makes ffmpeg seek in the input
// instead of decoding up to the cut point.
func (e *Exporter) args(req Request, outPath string) []string {
	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%.3f", req.Start),
		"-i", req.Source,
		"-t", fmt.Sprintf("%.3f", req.End-req.Start),
	}
	if req.Reencode {
		args = append(args, "-c:v", "libx264", "-c:a", "aac", "-preset", "fast")
	} else {
		args = append(args, "-c", "copy")
	}
	return append(args, outPath)
}
