// Package compose writes the files handed to a test host: a yum repo
// definition for its distribution and a script that installs the release.
package compose

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/distro"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/extract"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/release"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/util"
)

const (
	// SnapshotFile is the optional repo fragment appended after the deps.
	SnapshotFile = "ovirt-snapshot.repo"
	// URLKey replaces @URLKEY@, selecting mirror lists over base URLs.
	URLKey = "mirrorlist"

	distPlaceholder   = "@DIST@"
	urlKeyPlaceholder = "@URLKEY@"
)

// Source provides the repo files of a release. *extract.Extractor implements it.
type Source interface {
	Extract(ctx context.Context, rel *release.Release) ([]extract.File, error)
}

// RenderRepoFile builds the repo file for target out of the extracted files.
// The deps fragment is required; the snapshot fragment is appended after a
// newline when present.
func RenderRepoFile(target distro.Target, files []extract.File) (string, error) {
	var deps, snapshot *extract.File
	for i := range files {
		switch files[i].Name {
		case target.DepsFile:
			deps = &files[i]
		case SnapshotFile:
			snapshot = &files[i]
		}
	}

	if deps == nil {
		return "", errors.K("render-repofile", errors.MissingRepofile,
			fmt.Errorf("failed to find %s for distro family %s", target.DepsFile, target.Family))
	}

	var b strings.Builder
	b.Write(deps.Content)
	if snapshot != nil {
		text := strings.ReplaceAll(string(snapshot.Content), distPlaceholder, string(target.Family))
		text = strings.ReplaceAll(text, urlKeyPlaceholder, URLKey)
		b.WriteString("\n")
		b.WriteString(text)
	}
	return b.String(), nil
}

// RepoFile composes the repo file of rel for distver and writes it to a new
// file in dir (the system temp dir when empty). Ownership of the returned
// path passes to the caller.
func RepoFile(ctx context.Context, src Source, rel *release.Release, distver, dir string) (string, error) {
	target, err := distro.Parse(distver)
	if err != nil {
		return "", err
	}

	files, err := src.Extract(ctx, rel)
	if err != nil {
		return "", err
	}

	content, err := RenderRepoFile(target, files)
	if err != nil {
		return "", errors.E("compose-repofile", fmt.Errorf("release %s: %w", rel.Version, err))
	}

	path, err := util.WriteTempFile(dir, "ovirt-"+string(target.Family)+"-*.repo", []byte(content), 0644)
	if err != nil {
		return "", errors.E("compose-repofile", err)
	}
	return path, nil
}
