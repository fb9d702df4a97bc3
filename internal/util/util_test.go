package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing file", filepath.Join(dir, "missing.txt"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteTempFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteTempFile(dir, "test-*.repo", []byte("[repo]\n"), 0600)
	if err != nil {
		t.Fatalf("WriteTempFile() returned an error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("WriteTempFile() path %q is not inside %q", path, dir)
	}
	if !strings.HasSuffix(path, ".repo") {
		t.Errorf("WriteTempFile() path %q does not keep the pattern suffix", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read temp file: %v", err)
	}
	if string(content) != "[repo]\n" {
		t.Errorf("content = %q, want %q", string(content), "[repo]\n")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat temp file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(0600))
	}
}

func TestWriteTempFile_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := WriteTempFile(dir, "x-*", []byte("x"), 0644); err == nil {
		t.Fatal("WriteTempFile() into a missing directory did not return an error")
	}
}
