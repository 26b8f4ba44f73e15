package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
	"github.com/strongdm/findfiles/internal/finder"
	"github.com/strongdm/findfiles/internal/logging"
	"mvdan.cc/sh/v3/shell"
)

var batchProgress bool

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run one find per line of stdin",
	Long: `Read searches from stdin, one per line, and run 'findfiles find' for each.
Each line holds the find arguments with shell quoting; blank lines and
lines starting with # are skipped:

  . '*.txt' -s a -m any
  ./logs '*.log' -p 2024 --count

Behavior by exit code from each search:
  0, 1  - Search ran (with or without matches), continue
  Other - Error, continue; stop after 3 consecutive errors

Exit codes:
  0 - Every search ran
  2 - At least one search failed`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchProgress, "progress", false, "Show a progress line at the bottom of the terminal")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	runner := NewBatchRunner(realExec, os.Stdin, os.Stdout, os.Stderr)

	if batchProgress {
		sv := logging.NewStatusView(os.Stdout)
		if sv.IsTTY() {
			sv.Setup()
			defer sv.Teardown()
			runner.Stdout = sv
			runner.Status = sv.SetStatus
		}
	}

	SetExitCode(runner.Run())
	return nil
}

// ExecFunc runs a findfiles subcommand as a subprocess.
// args are the subcommand arguments (e.g. ["find", ".", "*.txt"]).
// stdout and stderr receive the child process output.
// Returns the exit code (0+ on normal exit) or -1 with an error on exec failure.
type ExecFunc func(args []string, stdout, stderr io.Writer) (exitCode int, err error)

// realExec runs a findfiles subcommand via os/exec.
func realExec(args []string, stdout, stderr io.Writer) (int, error) {
	binary, err := os.Executable()
	if err != nil {
		binary = os.Args[0]
	}
	c := exec.Command(binary, args...)
	c.Stdout = stdout
	c.Stderr = stderr
	err = c.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}

// BatchRunner implements the batch command loop.
// All searches go through Exec, making the loop fully testable
// without real subprocesses.
type BatchRunner struct {
	Exec   ExecFunc
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Status, when set, receives a progress line before each search.
	Status func(string)
}

// NewBatchRunner creates a BatchRunner.
func NewBatchRunner(execFn ExecFunc, stdin io.Reader, stdout, stderr io.Writer) *BatchRunner {
	return &BatchRunner{
		Exec:   execFn,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
}

const maxConsecutiveErrors = 3

// Run executes every search read from Stdin. Returns the process exit code.
func (r *BatchRunner) Run() int {
	queries, err := r.readQueries()
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s %s\n", logging.BoldCyan("[batch]"), logging.Yellow(fmt.Sprintf("Failed to read searches: %v", err)))
		return finder.ExitError
	}

	found, empty, failed := 0, 0, 0
	consecutiveErrors := 0
	for i, line := range queries {
		header := fmt.Sprintf("Search %d/%d: %s", i+1, len(queries), line)
		if r.Status != nil {
			r.Status(header)
		}
		fmt.Fprintf(r.Stdout, "%s %s\n", logging.BoldCyan("[batch]"), header)

		code := r.runQuery(line)
		switch code {
		case finder.ExitFound:
			found++
			consecutiveErrors = 0
			continue
		case finder.ExitNoMatches:
			empty++
			consecutiveErrors = 0
			continue
		case -1:
			// Could not start a subprocess at all; nothing else will work either
			return finder.ExitError
		}

		failed++
		consecutiveErrors++
		if consecutiveErrors >= maxConsecutiveErrors {
			fmt.Fprintf(r.Stderr, "%s %s\n", logging.BoldCyan("[batch]"), logging.Yellow(fmt.Sprintf("Stopped after %d consecutive errors (last exit code %d)", consecutiveErrors, code)))
			return finder.ExitError
		}
	}

	summary := fmt.Sprintf("%d searches: %d with matches, %d empty, %d failed", len(queries), found, empty, failed)
	if failed > 0 {
		fmt.Fprintf(r.Stdout, "%s %s\n", logging.BoldCyan("[batch]"), logging.Yellow(summary))
		return finder.ExitError
	}
	fmt.Fprintf(r.Stdout, "%s %s\n", logging.BoldCyan("[batch]"), logging.Green(summary))
	return 0
}

// runQuery runs one search line and returns its exit code, or -1 if the
// subprocess could not be executed.
func (r *BatchRunner) runQuery(line string) int {
	args, err := shell.Fields(line, nil)
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s %s\n", logging.BoldCyan("[batch]"), logging.Yellow(fmt.Sprintf("Cannot parse %q: %v", line, err)))
		return finder.ExitError
	}

	code, err := r.Exec(append([]string{"find"}, args...), r.Stdout, r.Stderr)
	if err != nil {
		fmt.Fprintf(r.Stderr, "%s %s\n", logging.BoldCyan("[batch]"), logging.Yellow(fmt.Sprintf("Failed to execute: %v", err)))
		return -1
	}
	return code
}

// readQueries returns the non-blank, non-comment lines of Stdin.
func (r *BatchRunner) readQueries() ([]string, error) {
	var queries []string
	scanner := bufio.NewScanner(r.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	return queries, scanner.Err()
}
