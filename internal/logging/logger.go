package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Logger writes one markdown file per search into a log directory
type Logger struct {
	baseDir string
}

// NewLogger creates a logger that writes into dir
func NewLogger(dir string) *Logger {
	return &Logger{baseDir: dir}
}

// Search represents a single search to be logged
type Search struct {
	Timestamp  time.Time
	Root       string
	Pattern    string
	Substrings []string
	Mode       string
	Prefix     string
	Exclude    []string
	Duration   time.Duration
	Status     string
	Matches    []string
	Error      error
}

// LogFile represents an open search log
type LogFile struct {
	Path   string
	file   *os.File
	search *Search
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// StartSearch opens a new log file for a search.
// Files are named {seq}-find-{pattern}.md; seq continues after existing logs.
func (l *Logger) StartSearch(s Search) (*LogFile, error) {
	if err := os.MkdirAll(l.baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	existing, err := ListLogs(l.baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	slug := strings.Trim(unsafeChars.ReplaceAllString(s.Pattern, "_"), "_.")
	if slug == "" {
		slug = "pattern"
	}

	// O_EXCL so a concurrent writer never clobbers an existing log
	var file *os.File
	var path string
	for seq := len(existing) + 1; ; seq++ {
		path = filepath.Join(l.baseDir, fmt.Sprintf("%03d-find-%s.md", seq, slug))
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			break
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create log file: %w", err)
		}
	}

	s.Timestamp = time.Now()
	return &LogFile{
		Path:   path,
		file:   file,
		search: &s,
	}, nil
}

// SetMatches records the search result
func (lf *LogFile) SetMatches(matches []string) {
	lf.search.Matches = matches
	if lf.search.Error == nil {
		lf.search.Status = "ok"
	}
}

// SetDuration records how long the search took
func (lf *LogFile) SetDuration(d time.Duration) {
	lf.search.Duration = d
}

// SetError records any error that occurred
func (lf *LogFile) SetError(err error) {
	lf.search.Error = err
	if err != nil {
		lf.search.Status = "error"
	}
}

// Close finalizes and writes the log file
func (lf *LogFile) Close() error {
	if lf.search.Status == "" {
		lf.search.Status = "ok"
	}

	if _, err := lf.file.WriteString(FormatSearch(lf.search)); err != nil {
		lf.file.Close()
		return fmt.Errorf("failed to write log: %w", err)
	}

	return lf.file.Close()
}

// PrintSearchSummary prints a one-line summary with timestamp to w
func PrintSearchSummary(w io.Writer, pattern, root string, matches int, elapsed time.Duration, logPath string) {
	ts := strings.TrimSuffix(strings.ToLower(time.Now().Format("3:04PM")), "m")
	line := fmt.Sprintf("%s %s %q in %s: %d matches (%s)",
		Dim("["+ts+"]"), Cyan("[find]"), pattern, root, matches, elapsed.Round(time.Microsecond))
	if logPath != "" {
		line += " " + Dim("→ "+logPath)
	}
	fmt.Fprintln(w, line)
}

// ListLogs returns all search logs in dir
func ListLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".md" {
			logs = append(logs, filepath.Join(dir, e.Name()))
		}
	}
	return logs, nil
}
