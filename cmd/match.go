package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/strongdm/findfiles/internal/finder"
)

var matchMode finder.Mode

var matchCmd = &cobra.Command{
	Use:   "match NAME SUBSTRING...",
	Short: "Check a name against substrings",
	Long: `Check whether NAME contains the given substrings, using the same rule
as 'findfiles find --substring'. Prints true or false.

Exit codes:
  0 - Name matches
  1 - Name does not match
  2 - Error occurred (e.g. unknown --mode)`,
	Example: `  findfiles match report-2024.csv report 2024
  findfiles match notes.md draft final -m any`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatchCmd,
}

func init() {
	matchCmd.Flags().VarP(&matchMode, "mode", "m", "Combine substrings with all or any (default from config, all)")
	rootCmd.AddCommand(matchCmd)
}

func runMatchCmd(cmd *cobra.Command, args []string) error {
	mode := matchMode
	if !cmd.Flags().Changed("mode") {
		var err error
		if mode, err = cfg.MatchMode(); err != nil {
			PrintError("%v", err)
			SetExitCode(finder.ExitError)
			return err
		}
	}

	code, err := runMatch(args[0], args[1:], mode, os.Stdout, os.Stderr)
	SetExitCode(code)
	return err
}

// runMatch prints the match result for name and returns the exit code.
func runMatch(name string, substrings []string, mode finder.Mode, stdout, stderr io.Writer) (int, error) {
	if len(substrings) == 0 {
		substrings = []string{""}
	}

	ok, err := finder.Match(substrings, name, mode)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return finder.ExitError, err
	}

	fmt.Fprintln(stdout, ok)
	if !ok {
		return finder.ExitNoMatches, nil
	}
	return finder.ExitFound, nil
}
