package mpv

import (
	"os/exec"

	"github.com/user/video-cutter-cli/deps"
)

// Launch starts mpv with the given video file and the IPC socket enabled.
// The player window doubles as the drop target: files dropped onto it replace
// the loaded media, which the application observes through the "path"
// property. --keep-open keeps the file loaded at end-of-file so fragment
// looping can seek back instead of losing the session. An empty videoPath
// starts the player idle, waiting for a file.
// Returns the *exec.Cmd for the running process which can be used for cleanup.
func Launch(videoPath, socketPath string) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}

	if socketPath == "" {
		socketPath = DefaultSocketPath
	}

	args := []string{
		"--input-ipc-server=" + socketPath,
		"--keep-open=yes",
		"--force-window=yes",
		"--idle=yes",
	}
	if videoPath != "" {
		args = append(args, videoPath)
	}
	cmd := exec.Command("mpv", args...)

	// Start the process (non-blocking)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}
