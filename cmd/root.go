package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/strongdm/findfiles/internal/config"
	"github.com/strongdm/findfiles/internal/logging"
)

var version = "0.1.0"

// cfg holds defaults from .findfiles.yaml and FINDFILES_* env vars.
// Loaded before every command runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "findfiles",
	Short: "Find files by glob, substring and prefix",
	Long: `findfiles recursively lists the files and directories under a root
whose names match a glob pattern and contain the given substrings.

Quick start:
  findfiles find . '*.txt'                     # every .txt below .
  findfiles find . '*.txt' -s a -s b -m any    # names containing a or b
  findfiles find . '*.txt' -s report -p 2024   # names starting with 2024

Defaults for --mode, --exclude and --log-dir can be set in .findfiles.yaml
or with FINDFILES_MODE, FINDFILES_EXCLUDE and FINDFILES_LOG_DIR.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadFromWorkingDir()
		if err != nil {
			PrintError("%v", err)
			SetExitCode(2)
			return err
		}
		cfg = loaded
		logging.SetColor(cfg.Color)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("findfiles version {{.Version}}\n")

	// Disable the default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Silence Cobra's automatic error and usage printing for RunE errors.
	// Our commands handle their own error output via PrintError.
	// Cobra still prints errors for unknown commands, bad flags, etc.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// exitCode is used to track the desired exit code
var exitCode int

// SetExitCode sets the exit code to be used when the program exits
func SetExitCode(code int) {
	exitCode = code
}

// GetExitCode returns the current exit code
func GetExitCode() int {
	return exitCode
}

// PrintError prints an error message to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
