package logging

import "github.com/fatih/color"

// Color sprint functions for consistent terminal output styling.
// These respect NO_COLOR and non-TTY environments automatically.
var (
	Green    = color.New(color.FgGreen).SprintFunc()
	Yellow   = color.New(color.FgYellow).SprintFunc()
	Red      = color.New(color.FgRed).SprintFunc()
	Cyan     = color.New(color.FgCyan).SprintFunc()
	Bold     = color.New(color.Bold).SprintFunc()
	BoldCyan = color.New(color.Bold, color.FgCyan).SprintFunc()
	Dim      = color.New(color.Faint).SprintFunc()
)

// SetColor turns colored output off when enabled is false.
// It never forces color on for a non-TTY or NO_COLOR environment.
func SetColor(enabled bool) {
	if !enabled {
		color.NoColor = true
	}
}
