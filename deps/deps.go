// Package deps checks for the external tools the cutter depends on:
// mpv for playback and ffmpeg for export.
package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL    = "https://mpv.io/installation/"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError reports a required external tool missing from PATH.
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckMpv checks if mpv is installed and available in PATH.
func CheckMpv() error {
	if _, err := exec.LookPath("mpv"); err != nil {
		return &DependencyError{
			Name:       "mpv",
			InstallURL: MpvInstallURL,
		}
	}
	return nil
}

// CheckFfmpeg checks if ffmpeg is installed and available in PATH.
func CheckFfmpeg() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return &DependencyError{
			Name:       "ffmpeg",
			InstallURL: FfmpegInstallURL,
		}
	}
	return nil
}

// CheckAll checks all dependencies and returns an error per missing tool.
func CheckAll() []error {
	var errs []error
	if err := CheckMpv(); err != nil {
		errs = append(errs, err)
	}
	if err := CheckFfmpeg(); err != nil {
		errs = append(errs, err)
	}
	return errs
}
