// Package manifest implements the icon-list source: a single bounded HTTP
// request against the upstream tree listing, persisted to the cache
// directory on success and read back from it when the network is down.
package manifest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-icongen/pkg/config"
	"github.com/goliatone/go-icongen/pkg/heroicons"
	"github.com/goliatone/go-icongen/pkg/logging"
	pkgmanifest "github.com/goliatone/go-icongen/pkg/manifest"
)

// Option configures the fetcher before construction.
type Option func(*Fetcher)

// WithHTTPClient swaps the HTTP client, primarily for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithLogger injects the shared progress logger.
func WithLogger(log *logging.Logger) Option {
	return func(f *Fetcher) {
		f.log = log
	}
}

// Fetcher resolves the authoritative icon set with a network → snapshot →
// empty-set fallback chain. It satisfies pkgmanifest.Source.
type Fetcher struct {
	url      string
	cacheDir string
	timeout  time.Duration
	client   *http.Client
	log      *logging.Logger
}

var _ pkgmanifest.Source = (*Fetcher)(nil)

// New constructs a Fetcher from the resolved configuration.
func New(cfg config.Config, options ...Option) *Fetcher {
	f := &Fetcher{
		url:      cfg.ManifestURL,
		cacheDir: cfg.CacheDir,
		timeout:  cfg.RequestTimeout,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// treeListing mirrors the subset of the GitHub git-trees payload we consume.
type treeListing struct {
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
	} `json:"tree"`
}

// Fetch returns the upstream icon set. A failed fetch falls back to the most
// recent cached snapshot; when that is missing too, an empty set is returned
// and validation is skipped downstream. Only context cancellation is
// propagated as an error, so an interrupt still aborts the run.
func (f *Fetcher) Fetch(ctx context.Context) (heroicons.Set, error) {
	set, err := f.fetchRemote(ctx)
	if err == nil {
		f.persistSnapshot(set)
		return set, nil
	}
	if errors.Is(err, context.Canceled) {
		return nil, err
	}

	if cached, cacheErr := f.readSnapshot(); cacheErr == nil {
		f.log.Debugf("  Warning: icon list fetch failed (%v); using cached snapshot with %d icon(s).", err, len(cached))
		return cached, nil
	}

	f.log.Debugf("  Warning: could not fetch or load the list of available icons (%v). Validation will be skipped.", err)
	return heroicons.Set{}, nil
}

func (f *Fetcher) fetchRemote(ctx context.Context) (heroicons.Set, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if f.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("manifest: build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, context.Canceled
		}
		return nil, fmt.Errorf("manifest: fetch icon list: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("manifest: fetch icon list: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("manifest: read icon list: %w", err)
	}

	return parseListing(data)
}

func parseListing(data []byte) (heroicons.Set, error) {
	var listing treeListing
	if err := json.Unmarshal(data, &listing); err != nil {
		return nil, fmt.Errorf("manifest: parse icon list: %w", err)
	}

	set := heroicons.Set{}
	for _, entry := range listing.Tree {
		if entry.Type != "" && entry.Type != "blob" {
			continue
		}
		if icon, ok := heroicons.ParseAssetPath(entry.Path); ok {
			set.Add(icon.Name, icon.Variant)
		}
	}
	if set.Empty() {
		return nil, errors.New("manifest: icon list contained no recognizable entries")
	}
	return set, nil
}

func (f *Fetcher) snapshotPath() string {
	return filepath.Join(f.cacheDir, pkgmanifest.SnapshotFilename)
}

// persistSnapshot is best effort: a read-only cache directory must not fail
// the run.
func (f *Fetcher) persistSnapshot(set heroicons.Set) {
	data, err := pkgmanifest.EncodeSnapshot(set)
	if err != nil {
		f.log.Debugf("  Warning: could not encode icon list snapshot: %v", err)
		return
	}
	if err := os.MkdirAll(f.cacheDir, 0o755); err != nil {
		f.log.Debugf("  Warning: could not create cache dir %s: %v", f.cacheDir, err)
		return
	}
	if err := os.WriteFile(f.snapshotPath(), data, 0o644); err != nil {
		f.log.Debugf("  Warning: could not write icon list snapshot: %v", err)
	}
}

func (f *Fetcher) readSnapshot() (heroicons.Set, error) {
	data, err := os.ReadFile(f.snapshotPath())
	if err != nil {
		return nil, err
	}
	set, err := pkgmanifest.DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	if set.Empty() {
		return nil, errors.New("manifest: cached snapshot is empty")
	}
	return set, nil
}
