package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/user/video-cutter-cli/pkg/timeutil"
)

// OutputDirName is the folder created next to the source file for exported
// fragments.
const OutputDirName = "VideoCutter_out"

// OutputDir returns the output directory for fragments cut from videoPath:
// <dir of videoPath>/VideoCutter_out.
func OutputDir(videoPath string) string {
	return filepath.Join(filepath.Dir(videoPath), OutputDirName)
}

// FragmentName returns the deterministic output filename for a fragment:
// <stem>_<H-MM-SS>_<H-MM-SS><ext>. Different ranges from the same source
// produce different names, so repeated exports don't overwrite each other.
func FragmentName(videoPath string, start, end float64) string {
	base := filepath.Base(videoPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%s_%s_%s%s", stem, timeutil.FormatStamp(start), timeutil.FormatStamp(end), ext)
}

// resolveCollision returns path if nothing exists there, otherwise the first
// variant <stem>_N<ext> (N starting at 2) that is free. The chosen name is
// claimed by creating it with O_EXCL, so two exports resolving the same name
// at once cannot both win it; ffmpeg then overwrites the empty placeholder.
func resolveCollision(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	candidate := path
	for n := 2; ; n++ {
		f, err := os.OpenFile(candidate, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			f.Close()
			return candidate
		}
		if !os.IsExist(err) {
			// Unclaimable for some other reason (permissions, bad dir);
			// let the transcoder surface the real error.
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}
}
