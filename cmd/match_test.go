package cmd

import (
	"bytes"
	"testing"

	"github.com/strongdm/findfiles/internal/finder"
)

func TestRunMatch(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		substrings []string
		mode       finder.Mode
		wantOut    string
		wantCode   int
	}{
		{"AllPresent", "cab", []string{"a", "b"}, finder.ModeAll, "true\n", finder.ExitFound},
		{"AllMissingOne", "cab", []string{"a", "x"}, finder.ModeAll, "false\n", finder.ExitNoMatches},
		{"AnyPresent", "cab", []string{"a", "x"}, finder.ModeAny, "true\n", finder.ExitFound},
		{"NoSubstrings", "cab", nil, finder.ModeAny, "true\n", finder.ExitFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code, err := runMatch(tt.target, tt.substrings, tt.mode, &stdout, &stderr)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("expected exit %d, got %d", tt.wantCode, code)
			}
			if stdout.String() != tt.wantOut {
				t.Errorf("expected %q, got %q", tt.wantOut, stdout.String())
			}
		})
	}
}

func TestRunMatch_InvalidMode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code, err := runMatch("cab", []string{"a"}, finder.ModeUnset, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected error for unset mode")
	}
	if code != finder.ExitError {
		t.Errorf("expected exit %d, got %d", finder.ExitError, code)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no result output, got %q", stdout.String())
	}
}
