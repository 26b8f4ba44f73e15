package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogger_WritesSearchLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l := NewLogger(dir)

	lf, err := l.StartSearch(Search{Root: "data", Pattern: "*.txt", Mode: "all"})
	if err != nil {
		t.Fatalf("failed to start search log: %v", err)
	}
	lf.SetMatches([]string{"data/a1.txt", "data/a2.txt"})
	lf.SetDuration(250 * time.Millisecond)
	if err := lf.Close(); err != nil {
		t.Fatalf("failed to close log: %v", err)
	}

	if filepath.Base(lf.Path) != "001-find-txt.md" {
		t.Errorf("unexpected log name %q", filepath.Base(lf.Path))
	}

	content, err := os.ReadFile(lf.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "- data/a2.txt") {
		t.Errorf("expected matches in log, got:\n%s", content)
	}
	if !strings.Contains(string(content), "| Status | ok |") {
		t.Errorf("expected ok status, got:\n%s", content)
	}
	if !strings.Contains(string(content), "| Duration | 0.250s |") {
		t.Errorf("expected recorded duration, got:\n%s", content)
	}
}

func TestLogger_SequenceContinues(t *testing.T) {
	dir := t.TempDir()
	l := NewLogger(dir)

	for i := 0; i < 3; i++ {
		lf, err := l.StartSearch(Search{Pattern: "*.json"})
		if err != nil {
			t.Fatal(err)
		}
		if err := lf.Close(); err != nil {
			t.Fatal(err)
		}
	}

	// A second logger on the same directory must not overwrite
	lf, err := NewLogger(dir).StartSearch(Search{Pattern: "*.json"})
	if err != nil {
		t.Fatal(err)
	}
	lf.Close()

	logs, err := ListLogs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 4 {
		t.Fatalf("expected 4 logs, got %d: %v", len(logs), logs)
	}
	if filepath.Base(lf.Path) != "004-find-json.md" {
		t.Errorf("expected 004-find-json.md, got %s", filepath.Base(lf.Path))
	}
}

func TestLogger_SkipsTakenName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "002-find-txt.md"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	// One existing log means seq 2 is tried first, which is taken
	lf, err := NewLogger(dir).StartSearch(Search{Pattern: "*.txt"})
	if err != nil {
		t.Fatal(err)
	}
	defer lf.Close()
	if filepath.Base(lf.Path) != "003-find-txt.md" {
		t.Errorf("expected 003-find-txt.md, got %s", filepath.Base(lf.Path))
	}

	old, _ := os.ReadFile(filepath.Join(dir, "002-find-txt.md"))
	if string(old) != "old" {
		t.Error("existing log was overwritten")
	}
}

func TestLogFile_SetError(t *testing.T) {
	lf, err := NewLogger(t.TempDir()).StartSearch(Search{Pattern: "*.txt"})
	if err != nil {
		t.Fatal(err)
	}
	lf.SetError(errors.New("permission denied"))
	lf.SetMatches(nil)
	if err := lf.Close(); err != nil {
		t.Fatal(err)
	}

	content, _ := os.ReadFile(lf.Path)
	if !strings.Contains(string(content), "| Status | error |") {
		t.Errorf("error status must survive SetMatches, got:\n%s", content)
	}
}

func TestListLogs_MissingDir(t *testing.T) {
	logs, err := ListLogs(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logs != nil {
		t.Errorf("expected nil, got %v", logs)
	}
}

func TestPrintSearchSummary(t *testing.T) {
	SetColor(false)
	var buf bytes.Buffer
	PrintSearchSummary(&buf, "*.txt", "data", 2, 1500*time.Microsecond, "logs/001-find-txt.md")

	out := buf.String()
	for _, want := range []string{"[find]", `"*.txt" in data: 2 matches (1.5ms)`, "→ logs/001-find-txt.md"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestStatusView_NonTTYPassThrough(t *testing.T) {
	var buf bytes.Buffer
	sv := NewStatusView(&buf)
	if sv.IsTTY() {
		t.Fatal("bytes.Buffer must not be a TTY")
	}

	sv.Setup()
	sv.SetStatus("query 1/2")
	if _, err := sv.Write([]byte("hello\n")); err != nil {
		t.Fatal(err)
	}
	sv.Teardown()

	if buf.String() != "hello\n" {
		t.Errorf("expected plain pass-through, got %q", buf.String())
	}
	if sv.Status() != "query 1/2" {
		t.Errorf("expected status to be recorded, got %q", sv.Status())
	}
}
