// Package forms provides huh-based form components for the TUI.
package forms

import (
	"github.com/charmbracelet/huh"
)

// NewConfirmAbortExportForm creates a huh confirm form asking whether to quit
// while an export is still running. The result pointer is bound to the
// confirm field value.
func NewConfirmAbortExportForm(abort *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export in progress").
				Description("Quitting now cancels the running ffmpeg export and removes the incomplete file. Quit anyway?").
				Affirmative("Yes, cancel and quit").
				Negative("No, keep exporting").
				Value(abort),
		),
	).WithTheme(Theme())
}
