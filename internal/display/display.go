// Package display renders tidy results and turn lists for the terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/grovetools/gametidy/internal/transcript"
)

// RenderSummary returns a one-line styled description of a tidy run.
func RenderSummary(res *transcript.Result) string {
	return fmt.Sprintf("%s %s %s %s %s",
		successStyle.Render("✓"),
		pathStyle.Render(res.Input),
		mutedStyle.Render("→"),
		pathStyle.Render(res.Output),
		mutedStyle.Render(fmt.Sprintf("(%d turns from %d segments, %d bytes)", len(res.Turns), res.Segments, res.BytesWritten)),
	)
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(v any, w io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
