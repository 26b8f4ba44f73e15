package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/strongdm/findfiles/internal/finder"
	"github.com/strongdm/findfiles/internal/logging"
)

var (
	findSubstrings []string
	findMode       finder.Mode
	findPrefix     string
	findExclude    []string
	findJSON       bool
	findCount      bool
	findLogDir     string
	findVerbose    bool
)

var findCmd = &cobra.Command{
	Use:   "find ROOT PATTERN",
	Short: "List entries under ROOT whose names match PATTERN",
	Long: `List every file and directory below ROOT, at any depth, whose name
matches the glob PATTERN, then keep those whose name contains the
--substring values and starts with --prefix. Output is sorted.

PATTERN uses glob syntax: * (any run except /), ? (one character),
[abc] classes and {a,b} alternatives. Quote it so your shell does not
expand it.

With --mode all (default) a name must contain every substring; with
--mode any it must contain at least one.

Exit codes:
  0 - At least one match
  1 - No matches
  2 - Error occurred`,
	Example: `  findfiles find . '*.txt' -s a -m any
  findfiles find ./data '*.json' -s 2024 -s report -p daily
  findfiles find . '*.go' -x vendor -x '**/testdata/**' --count`,
	Args: cobra.ExactArgs(2),
	RunE: runFindCmd,
}

func init() {
	findCmd.Flags().StringArrayVarP(&findSubstrings, "substring", "s", nil, "Substring the name must contain (repeatable)")
	findCmd.Flags().VarP(&findMode, "mode", "m", "Combine substrings with all or any (default from config, all)")
	findCmd.Flags().StringVarP(&findPrefix, "prefix", "p", "", "Keep only names starting with this literal prefix")
	findCmd.Flags().StringArrayVarP(&findExclude, "exclude", "x", nil, "Glob of relative paths to skip, with their subtrees (repeatable)")
	findCmd.Flags().BoolVar(&findJSON, "json", false, "Print results as a JSON array")
	findCmd.Flags().BoolVarP(&findCount, "count", "c", false, "Print only the number of matches")
	findCmd.Flags().StringVar(&findLogDir, "log-dir", "", "Write a markdown log of the search into this directory")
	findCmd.Flags().BoolVarP(&findVerbose, "verbose", "v", false, "Print a search summary to stderr")
	rootCmd.AddCommand(findCmd)
}

// findOptions is a fully resolved find invocation.
type findOptions struct {
	Request finder.Request
	JSON    bool
	Count   bool
	LogDir  string
	Verbose bool
}

func runFindCmd(cmd *cobra.Command, args []string) error {
	mode := findMode
	if !cmd.Flags().Changed("mode") {
		var err error
		if mode, err = cfg.MatchMode(); err != nil {
			PrintError("%v", err)
			SetExitCode(finder.ExitError)
			return err
		}
	}

	exclude := cfg.Exclude
	if cmd.Flags().Changed("exclude") {
		exclude = findExclude
	}

	logDir := cfg.LogDir
	if cmd.Flags().Changed("log-dir") {
		logDir = findLogDir
	}

	opts := findOptions{
		Request: finder.Request{
			Root:       args[0],
			Pattern:    args[1],
			Substrings: findSubstrings,
			Mode:       mode,
			Prefix:     findPrefix,
			Exclude:    exclude,
		},
		JSON:    findJSON,
		Count:   findCount,
		LogDir:  logDir,
		Verbose: findVerbose,
	}

	code, err := runFind(opts, os.Stdout, os.Stderr)
	SetExitCode(code)
	return err
}

// runFind executes a search and writes the results to stdout.
// Returns the process exit code and the error, if any, already reported on stderr.
func runFind(opts findOptions, stdout, stderr io.Writer) (int, error) {
	req := opts.Request

	var lf *logging.LogFile
	if opts.LogDir != "" {
		var err error
		lf, err = logging.NewLogger(opts.LogDir).StartSearch(logging.Search{
			Root:       req.Root,
			Pattern:    req.Pattern,
			Substrings: req.Substrings,
			Mode:       req.Mode.String(),
			Prefix:     req.Prefix,
			Exclude:    req.Exclude,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return finder.ExitError, err
		}
	}

	start := time.Now()
	paths, err := finder.FindFiles(req)
	elapsed := time.Since(start)

	if lf != nil {
		lf.SetDuration(elapsed)
		lf.SetError(err)
		lf.SetMatches(paths)
		if closeErr := lf.Close(); closeErr != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", closeErr)
		}
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return finder.ExitError, err
	}

	if opts.Verbose {
		logPath := ""
		if lf != nil {
			logPath = lf.Path
		}
		logging.PrintSearchSummary(stderr, req.Pattern, req.Root, len(paths), elapsed, logPath)
	}

	if err := writeResults(stdout, paths, opts); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write results: %v\n", err)
		return finder.ExitError, err
	}

	return finder.ExitCode(paths, nil), nil
}

func writeResults(w io.Writer, paths []string, opts findOptions) error {
	switch {
	case opts.Count && opts.JSON:
		return json.NewEncoder(w).Encode(map[string]int{"count": len(paths)})
	case opts.Count:
		_, err := fmt.Fprintln(w, len(paths))
		return err
	case opts.JSON:
		if paths == nil {
			paths = []string{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)
	default:
		for _, p := range paths {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	}
}
