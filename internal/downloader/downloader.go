// Package downloader fetches remote documents into memory.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to download %s: %s", e.URL, e.Status)
}

// Fetch downloads url into memory.
func Fetch(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
	}

	log.Debug("http get", "url", url)
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	log.Debug("http get done", "url", url, "bytes", len(data))
	return data, nil
}

// isTerminal reports whether progress output should be drawn.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// FetchWithProgress is Fetch with a spinner on stderr while the request runs.
// The spinner is skipped when stderr is not a terminal.
var FetchWithProgress = func(ctx context.Context, client *http.Client, url, what string) ([]byte, error) {
	if !isTerminal() {
		return Fetch(ctx, client, url)
	}

	s := spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = fmt.Sprintf(" Downloading %s from %s...", what, url)
	s.Start()

	data, err := Fetch(ctx, client, url)
	if err != nil {
		s.FinalMSG = color.RedString("✖ Failed to download %s.\n", what)
		s.Stop()
		return nil, err
	}
	s.FinalMSG = color.GreenString("✔ Downloaded %s.\n", what)
	s.Stop()
	return data, nil
}
