// Package finder discovers filesystem entries below a root directory whose
// names match a glob pattern and a set of substring filters.
package finder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// Request describes a single search.
type Request struct {
	// Root is the directory to search. Empty means the current directory.
	Root string
	// Pattern is matched against entry names at every depth, e.g. "*.json".
	Pattern string
	// Substrings must appear in the entry name, combined according to Mode.
	// Empty means a single empty substring, which every name contains.
	Substrings []string
	Mode       Mode
	// Prefix keeps only names starting with it. Empty keeps everything.
	Prefix string
	// Exclude drops entries whose path relative to Root, or any parent
	// directory of it, matches one of these globs.
	Exclude []string
}

// FindFiles searches req.Root on the real filesystem and returns the sorted
// matching paths, each joined onto req.Root.
func FindFiles(req Request) ([]string, error) {
	root := rootOf(req)
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}
	return FindFilesFS(os.DirFS(root), root, req)
}

// FindFilesFS searches fsys, treating its top level as the search root.
// root is only used to render the returned paths.
func FindFilesFS(fsys fs.FS, root string, req Request) ([]string, error) {
	if !req.Mode.Valid() {
		return nil, &InvalidModeError{Value: req.Mode.String()}
	}

	walkPattern, err := compileWalkPattern(req.Pattern)
	if err != nil {
		return nil, err
	}
	excludes, err := compileExcludes(req.Exclude)
	if err != nil {
		return nil, err
	}

	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	substrings := req.Substrings
	if len(substrings) == 0 {
		substrings = []string{""}
	}

	var paths []string
	// Unreadable directories below the root are skipped, not reported
	err = doublestar.GlobWalk(fsys, walkPattern, func(rel string, d fs.DirEntry) error {
		if rel == "." || isExcluded(rel, excludes) {
			return nil
		}
		ok, err := Match(substrings, path.Base(rel), req.Mode)
		if err != nil {
			return err
		}
		if ok {
			paths = append(paths, filepath.Join(root, filepath.FromSlash(rel)))
		}
		return nil
	}, doublestar.WithNoFollow())
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	paths = slices.Compact(paths)

	if req.Prefix != "" {
		paths = filterPrefix(paths, req.Prefix)
	}
	return paths, nil
}

func rootOf(req Request) string {
	if req.Root == "" {
		return "."
	}
	return req.Root
}

// compileWalkPattern turns a name pattern into a recursive one: "*.txt"
// becomes "**/*.txt", which also matches entries directly under the root.
// Patterns already starting with "**" are used as given.
func compileWalkPattern(pattern string) (string, error) {
	if pattern == "" {
		return "", ErrPatternRequired
	}
	if strings.HasPrefix(pattern, "/") || filepath.IsAbs(pattern) {
		return "", &PatternError{Pattern: pattern, Cause: errors.New("pattern must be relative")}
	}

	walkPattern := filepath.ToSlash(pattern)
	if walkPattern != "**" && !strings.HasPrefix(walkPattern, "**/") {
		walkPattern = "**/" + walkPattern
	}
	if !doublestar.ValidatePattern(walkPattern) {
		return "", &PatternError{Pattern: pattern, Cause: doublestar.ErrBadPattern}
	}
	return walkPattern, nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	excludes := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Cause: err}
		}
		excludes = append(excludes, g)
	}
	return excludes, nil
}

// isExcluded checks rel and each of its parent directories against the
// exclude globs, so excluding a directory excludes its whole subtree.
func isExcluded(rel string, excludes []glob.Glob) bool {
	if len(excludes) == 0 {
		return false
	}
	for candidate := rel; candidate != "." && candidate != ""; candidate = path.Dir(candidate) {
		for _, g := range excludes {
			if g.Match(candidate) {
				return true
			}
		}
	}
	return false
}

func filterPrefix(paths []string, prefix string) []string {
	var kept []string
	for _, p := range paths {
		if strings.HasPrefix(filepath.Base(p), prefix) {
			kept = append(kept, p)
		}
	}
	return kept
}
