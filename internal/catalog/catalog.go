// Package catalog reads the listing of ovirt-release RPMs published under a
// yum-repo base URL.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"

	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/downloader"
	"github.com/sandrobonazzola/ovirt-patch-verifier/internal/errors"

	"github.com/charmbracelet/log"
)

// Entry is one release artifact found in the listing.
type Entry struct {
	Artifact string `yaml:"artifact"`
	Version  string `yaml:"version"`
}

// releasePattern matches quoted artifact names such as "ovirt-release44.rpm"
// or 'ovirt-release-master.rpm'. The optional hyphen is not part of the version.
var releasePattern = regexp.MustCompile(`['"](ovirt-release-?([^'"]+)\.rpm)['"]`)

// Parse extracts every release entry from a listing page, in page order.
// A body without matches yields no entries.
func Parse(body []byte) []Entry {
	var entries []Entry
	for _, m := range releasePattern.FindAllSubmatch(body, -1) {
		entries = append(entries, Entry{
			Artifact: string(m[1]),
			Version:  string(m[2]),
		})
	}
	return entries
}

// Fetcher lists the releases available under BaseURL.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewFetcher creates a fetcher for baseURL.
func NewFetcher(baseURL string, client *http.Client) *Fetcher {
	return &Fetcher{BaseURL: baseURL, Client: client}
}

// List fetches the listing page once and parses it.
func (f *Fetcher) List(ctx context.Context) ([]Entry, error) {
	body, err := downloader.FetchWithProgress(ctx, f.Client, f.BaseURL, "release catalog")
	if err != nil {
		return nil, errors.K("list-releases", errors.CatalogUnavailable, err)
	}

	entries := Parse(body)
	log.Debug("parsed release catalog", "url", f.BaseURL, "entries", len(entries))
	return entries, nil
}

// ArtifactURL returns the download location of an artifact in the catalog.
func (f *Fetcher) ArtifactURL(artifact string) string {
	return fmt.Sprintf("%s%s", f.BaseURL, artifact)
}
