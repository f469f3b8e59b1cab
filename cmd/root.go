package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/user/video-cutter-cli/deps"
	"github.com/user/video-cutter-cli/mpv"
	"github.com/user/video-cutter-cli/tui"
)

var Version = "0.1.0"

var (
	socketPath string
	reencode   bool
)

var rootCmd = &cobra.Command{
	Use:   "video-cutter-cli",
	Short: "A CLI tool for cutting fragments out of video files",
	Long: `video-cutter-cli plays a video in mpv while the terminal acts as the
cutting desk: mark a start and an end point, loop the fragment to check it,
then export it losslessly with ffmpeg.

Features:
  - Open video files in mpv, or drop a file onto the player window
  - Mark fragment start and end points during playback
  - Loop the fragment for preview
  - Export fragments without re-encoding to a VideoCutter_out directory`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("video-cutter-cli version %s\n", Version)
	},
}

var openCmd = &cobra.Command{
	Use:   "open [video-file]",
	Short: "Open a video file for cutting",
	Long: `Open a video file in mpv and start the cutting interface. Without an
argument the player starts empty; load a file with the "o" key, the ":open"
command, or by dropping one onto the mpv window.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.CheckMpv(); err != nil {
			return err
		}

		var absPath string
		if len(args) == 1 {
			var err error
			absPath, err = filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			info, err := os.Stat(absPath)
			if os.IsNotExist(err) {
				return fmt.Errorf("video file not found: %s", absPath)
			}
			if err != nil {
				return fmt.Errorf("failed to access video file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("path is a directory, not a video file: %s", absPath)
			}
		}

		process, err := mpv.Launch(absPath, socketPath)
		if err != nil {
			return fmt.Errorf("failed to launch mpv: %w", err)
		}

		// Wait for the IPC socket to come up
		client := mpv.NewClient(socketPath)
		var connectErr error
		for i := 0; i < 50; i++ { // up to 5 seconds
			time.Sleep(100 * time.Millisecond)
			connectErr = client.Connect()
			if connectErr == nil {
				break
			}
		}
		if connectErr != nil {
			if process.Process != nil {
				process.Process.Kill()
			}
			return fmt.Errorf("failed to connect to mpv: %w", connectErr)
		}
		defer client.Close()
		defer func() {
			if process.Process != nil {
				process.Process.Kill()
			}
			process.Wait()
		}()

		return tui.Run(client, absPath, reencode)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (mpv, ffmpeg) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckMpv(); err != nil {
			fmt.Println("✗ mpv: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.MpvInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ mpv: OK")
		}

		if err := deps.CheckFfmpeg(); err != nil {
			fmt.Println("✗ ffmpeg: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffmpeg: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

func init() {
	openCmd.Flags().StringVar(&socketPath, "socket", mpv.DefaultSocketPath, "mpv IPC socket path")
	openCmd.Flags().BoolVar(&reencode, "reencode", false, "re-encode exports instead of stream copy")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
