package finder

// Exit code constants for findfiles commands.
const (
	ExitFound     = 0 // At least one match
	ExitNoMatches = 1 // Search ran, nothing matched
	ExitError     = 2 // Error occurred
)

// ExitCode determines the process exit code for a search outcome.
//
// Decision tree:
//   - Any error → 2
//   - No paths → 1
//   - Otherwise → 0
func ExitCode(paths []string, err error) int {
	if err != nil {
		return ExitError
	}
	if len(paths) == 0 {
		return ExitNoMatches
	}
	return ExitFound
}
