package transform

import (
	"fmt"

	"textproxy/internal/constants"
)

// Prompt returns the single user instruction for r. r must be valid.
func Prompt(r Request) string {
	switch r.Mode {
	case ModeSummarize:
		return "Summarize this: " + r.Text
	case ModeRewrite:
		return fmt.Sprintf("Rewrite this in %s style: %s", r.Style, r.Text)
	default:
		return r.Text
	}
}

// Temperature returns the sampling temperature for mode. Summarize and
// rewrite are fixed; chat uses the configured default.
func Temperature(mode Mode, chatDefault float64) float64 {
	switch mode {
	case ModeSummarize:
		return constants.SummarizeTemperature
	case ModeRewrite:
		return constants.RewriteTemperature
	default:
		return chatDefault
	}
}
