package compose

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderInstallScript(t *testing.T) {
	got := RenderInstallScript("http://example.com/yum-repo/ovirt-release44.rpm")
	want := "set -ex\n\nyum install -y --downloaddir=/dev/shm http://example.com/yum-repo/ovirt-release44.rpm\n"
	if got != want {
		t.Errorf("RenderInstallScript() = %q, want %q", got, want)
	}
}

func TestInstallScript(t *testing.T) {
	dir := t.TempDir()

	path, err := InstallScript(testRelease, dir)
	if err != nil {
		t.Fatalf("InstallScript() returned an error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("InstallScript() path %q is not inside %q", path, dir)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read install script: %v", err)
	}
	if !strings.HasPrefix(string(content), "set -ex\n") {
		t.Errorf("install script does not start with strict mode: %q", string(content))
	}
	if !strings.Contains(string(content), testRelease.URL) {
		t.Errorf("install script does not reference %s: %q", testRelease.URL, string(content))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat install script: %v", err)
	}
	if info.Mode().Perm()&0100 == 0 {
		t.Errorf("install script is not executable: %v", info.Mode())
	}
}

func TestInstallScript_BadDir(t *testing.T) {
	if _, err := InstallScript(testRelease, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("InstallScript() into a missing directory did not return an error")
	}
}
