package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves patterns to a sorted list of files without duplicates.
// Each pattern may be a plain path or a doublestar glob (** matches any
// number of directories). A pattern that matches nothing is an error.
func Expand(patterns ...string) ([]string, error) {
	var out []string
	for _, p := range patterns {
		base, pattern := doublestar.SplitPattern(filepath.ToSlash(p))
		matches, err := Match(filepath.FromSlash(base), pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// Match returns the files under root matching pattern, joined with root.
// Directories are never returned.
func Match(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%s: %w", pattern, ErrInvalidPattern)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("access %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory", root)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(root), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(root, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Join(root, pattern), ErrNoMatch)
	}
	slices.Sort(matches)
	return matches, nil
}
