package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/runner"

	"github.com/charmbracelet/log"
)

// pipelineCommand converts the RPM on stdin to cpio and unpacks it into the
// working directory. cpio -v reports each path on stderr.
const pipelineCommand = "rpm2cpio | cpio -idmv"

// Pipeline unpacks artifacts by shelling out to rpm2cpio and cpio.
type Pipeline struct {
	// TempDir is the parent of the per-call working directory. Empty means
	// the system temp dir.
	TempDir string
}

func (p *Pipeline) Unpack(ctx context.Context, artifact []byte, keep func(path string) bool) ([]File, error) {
	for _, tool := range []string{"rpm2cpio", "cpio"} {
		if _, err := exec.LookPath(tool); err != nil {
			return nil, errors.K("unpack", errors.ExtractionFailed,
				fmt.Errorf("%s is not installed. Please install it to extract RPM payloads", tool))
		}
	}

	workDir, err := os.MkdirTemp(p.TempDir, "ovirt-release-extract-")
	if err != nil {
		return nil, errors.K("unpack", errors.ExtractionFailed,
			fmt.Errorf("failed to create temporary extraction directory: %w", err))
	}
	defer os.RemoveAll(workDir)

	cmd := exec.CommandContext(ctx, "sh", "-c", pipelineCommand)
	cmd.Dir = workDir
	cmd.Stdin = bytes.NewReader(artifact)

	output, err := runner.Run(cmd)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.K("unpack", errors.ExtractionFailed, err)
	}

	var files []File
	for _, line := range strings.Split(string(output), "\n") {
		name := strings.TrimSpace(line)
		if name == "" || !keep(name) {
			continue
		}
		if !filepath.IsLocal(name) {
			log.Debug("skipping path outside the archive root", "path", name)
			continue
		}

		content, err := os.ReadFile(filepath.Join(workDir, name))
		if err != nil {
			return nil, errors.K("unpack", errors.ExtractionFailed,
				fmt.Errorf("failed to read extracted file %s: %w", name, err))
		}
		files = append(files, File{Name: name, Content: content})
	}
	return files, nil
}
