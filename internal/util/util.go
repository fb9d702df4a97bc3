// Package util holds small filesystem helpers.
package util

import (
	"fmt"
	"os"
)

// FileExists checks if a file exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteTempFile creates a new file in dir (the system temp dir when empty)
// named after pattern, writes content to it and sets mode. Ownership of the
// returned path passes to the caller, who is responsible for removing it.
func WriteTempFile(dir, pattern string, content []byte, mode os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}
	name := f.Name()

	if _, err := f.Write(content); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to write temporary file %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to close temporary file %s: %w", name, err)
	}
	if err := os.Chmod(name, mode); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to set permissions on %s: %w", name, err)
	}
	return name, nil
}
