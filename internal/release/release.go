// Package release picks the catalog entry published for a requested version.
package release

import (
	"context"
	"fmt"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/catalog"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/charmbracelet/log"
)

// Catalog is the source of release entries. *catalog.Fetcher implements it.
type Catalog interface {
	List(ctx context.Context) ([]catalog.Entry, error)
	ArtifactURL(artifact string) string
}

// Release is a version that was found in the catalog, together with the
// artifact that provides it.
type Release struct {
	Version  string `yaml:"version"`
	Artifact string `yaml:"artifact"`
	URL      string `yaml:"url"`
}

// Resolve looks version up in the catalog. Every entry is examined and the
// last one with an exactly matching version wins.
func Resolve(ctx context.Context, cat Catalog, version string) (*Release, error) {
	entries, err := cat.List(ctx)
	if err != nil {
		return nil, err
	}

	var found *catalog.Entry
	for i := range entries {
		if entries[i].Version == version {
			found = &entries[i]
		}
	}
	if found == nil {
		return nil, errors.K("resolve", errors.InvalidVersion, fmt.Errorf("no release matches %q", version))
	}

	log.Debug("resolved release", "version", found.Version, "artifact", found.Artifact)
	return &Release{
		Version:  found.Version,
		Artifact: found.Artifact,
		URL:      cat.ArtifactURL(found.Artifact),
	}, nil
}
