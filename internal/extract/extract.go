// Package extract downloads a release artifact and pulls the repository
// definition files out of it.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/downloader"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/release"

	"github.com/charmbracelet/log"
)

// RepoSuffix identifies the files Extract keeps.
const RepoSuffix = ".repo"

// File is a file read out of an artifact.
type File struct {
	Name    string
	Content []byte
}

// Unpacker turns raw artifact bytes into the files it contains. Only paths
// for which keep returns true are read. Files come back in archive order.
type Unpacker interface {
	Unpack(ctx context.Context, artifact []byte, keep func(path string) bool) ([]File, error)
}

// NewUnpacker is a factory function that returns the unpacker registered
// under name. tempDir is where working directories are created, if the
// unpacker needs one.
func NewUnpacker(name, tempDir string) (Unpacker, error) {
	switch name {
	case "", "rpm2cpio":
		return &Pipeline{TempDir: tempDir}, nil
	case "native":
		return &Native{}, nil
	default:
		return nil, fmt.Errorf("no unpacker available with name: %s", name)
	}
}

// IsRepoFile reports whether path names a yum repository definition.
func IsRepoFile(path string) bool {
	return strings.HasSuffix(path, RepoSuffix)
}

// Extractor fetches artifacts over HTTP and unpacks them.
type Extractor struct {
	Client   *http.Client
	Unpacker Unpacker
}

// New creates an Extractor.
func New(client *http.Client, unpacker Unpacker) *Extractor {
	return &Extractor{Client: client, Unpacker: unpacker}
}

// Extract downloads rel's artifact and returns its .repo files, keyed by
// basename, in archive order.
func (e *Extractor) Extract(ctx context.Context, rel *release.Release) ([]File, error) {
	data, err := downloader.FetchWithProgress(ctx, e.Client, rel.URL, rel.Artifact)
	if err != nil {
		return nil, errors.K("download", errors.DownloadFailed, err)
	}

	files, err := e.Unpacker.Unpack(ctx, data, IsRepoFile)
	if err != nil {
		return nil, errors.E("extract", err)
	}

	for i := range files {
		files[i].Name = filepath.Base(files[i].Name)
	}
	log.Debug("extracted repo files", "artifact", rel.Artifact, "count", len(files))
	return files, nil
}
