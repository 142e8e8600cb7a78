// Package file finds and reads the argument files a batch normalization works on.
package file

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Exported variables.
var (
	ErrBadPattern = errors.New("invalid glob pattern")
	ErrNoPatterns = errors.New("no patterns provided")
)

// Line is one argument string read from a file.
type Line struct {
	Path   string
	Number int
	Text   string
}

// Match expands one or more patterns against the working directory using
// fish-style globs (including ** and {a,b}). Absolute patterns are matched
// from their volume root. Only regular files are returned, sorted and unique.
func Match(patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	seen := make(map[string]bool)

	var matches []string

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(filepath.Clean(pattern))
		fsys, base := patternFS(pattern)

		list, err := MatchFS(fsys, strings.TrimPrefix(pattern, base))
		if err != nil {
			return nil, err
		}

		for _, match := range list {
			path := filepath.FromSlash(base + match)
			if !seen[path] {
				seen[path] = true
				matches = append(matches, path)
			}
		}
	}

	sort.Strings(matches)

	return matches, nil
}

// MatchFS expands patterns within fsys.
func MatchFS(fsys fs.FS, patterns ...string) ([]string, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	seen := make(map[string]bool)

	var matches []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}

		list, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching pattern %q: %w", pattern, err)
		}

		for _, match := range list {
			if !seen[match] {
				seen[match] = true
				matches = append(matches, match)
			}
		}
	}

	sort.Strings(matches)

	return matches, nil
}

// ReadFiles is ReadLines over the operating system's files.
func ReadFiles(paths ...string) ([]Line, error) {
	return readAll(func(path string) (io.ReadCloser, error) { return os.Open(path) }, paths)
}

// ReadLines reads the argument strings in each file of paths, in order.
// Blank lines and lines starting with # are skipped.
func ReadLines(fsys fs.FS, paths ...string) ([]Line, error) {
	return readAll(func(path string) (io.ReadCloser, error) { return fsys.Open(path) }, paths)
}

func patternFS(pattern string) (fs.FS, string) {
	native := filepath.FromSlash(pattern)
	if filepath.IsAbs(native) {
		volume := filepath.VolumeName(native)
		base := volume + string(filepath.Separator)

		return os.DirFS(base), filepath.ToSlash(base)
	}

	return os.DirFS("."), ""
}

func readAll(open func(string) (io.ReadCloser, error), paths []string) ([]Line, error) {
	var out []Line

	for _, path := range paths {
		f, err := open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}

		lines, err := readLines(f, path)
		_ = f.Close()

		if err != nil {
			return nil, err
		}

		out = append(out, lines...)
	}

	return out, nil
}

func readLines(r io.Reader, path string) ([]Line, error) {
	var out []Line

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		out = append(out, Line{Path: path, Number: n, Text: text})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return out, nil
}
