// Package fs resolves input files and creates output sinks for generated
// documents.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for input resolution.
var (
	// ErrInvalidPattern indicates a malformed glob pattern.
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrNoMatch indicates a pattern that matched no files.
	ErrNoMatch = errors.New("no files matched")
)

// File is an output sink that becomes visible at its destination only when
// closed. Until then bytes go to a temporary file next to it.
type File struct {
	f    *os.File
	path string
}

// Create opens a sink for path, creating parent directories as needed.
func Create(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create directories: %w", err)
	}
	f, err := os.Create(path + ".tmp")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	return &File{f: f, path: path}, nil
}

// Path returns the destination path.
func (f *File) Path() string { return f.path }

// Write writes p to the temporary file.
func (f *File) Write(p []byte) (int, error) {
	return f.f.Write(p)
}

// Close closes the temporary file and renames it onto the destination.
func (f *File) Close() error {
	if err := f.f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(f.f.Name(), f.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Abort discards everything written and leaves the destination untouched.
func (f *File) Abort() error {
	_ = f.f.Close()
	if err := os.Remove(f.f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove temp file: %w", err)
	}
	return nil
}

// OutputPath returns the Markdown path for the document description src:
// src with its extension replaced by ".md", moved into outDir when outDir is
// not empty.
func OutputPath(src, outDir string) string {
	name := strings.TrimSuffix(src, filepath.Ext(src)) + ".md"
	if outDir == "" {
		return name
	}
	return filepath.Join(outDir, filepath.Base(name))
}
