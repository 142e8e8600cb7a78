//go:build dev

package dev_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

// chdirRepoRoot moves the test into the repo root for tools that take
// package patterns. Tests that call it cannot run in parallel.
func chdirRepoRoot(t *testing.T) {
	t.Helper()

	root, err := findRepoRoot()
	if err != nil {
		t.Fatal(err)
	}

	t.Chdir(root)
}

// findRepoRoot walks up from current directory to find go.mod.
func findRepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod in any parent directory")
		}

		dir = parent
	}
}

// sourceFiles returns the repo root and the module's Go files relative to
// it, skipping the reference material under _examples.
func sourceFiles() (string, []string, error) {
	root, err := findRepoRoot()
	if err != nil {
		return "", nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(root), "**/*.go", doublestar.WithFilesOnly())
	if err != nil {
		return "", nil, fmt.Errorf("listing Go files: %w", err)
	}

	out := matches[:0]

	for _, m := range matches {
		if strings.HasPrefix(m, "_") || strings.Contains(m, "/.") {
			continue
		}

		out = append(out, m)
	}

	return root, out, nil
}
