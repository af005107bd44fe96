// Package svgdl resolves icon references to sanitized SVG markup, reading
// from the on-disk cache first and falling back to one sequential HTTP GET
// per icon. Per-icon failures are counted and skipped, never fatal.
package svgdl

import (
	"context"
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
)

// cacheSubdir holds the per-icon SVG files inside the cache directory.
const cacheSubdir = "svgs"

// Option configures the downloader.
type Option func(*Downloader)

// WithHTTPClient swaps the HTTP client, primarily for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(d *Downloader) {
		if client != nil {
			d.client = client
		}
	}
}

// WithLogger injects the shared progress logger.
func WithLogger(log *logging.Logger) Option {
	return func(d *Downloader) {
		d.log = log
	}
}

// Downloader fetches and caches SVG assets one icon at a time.
type Downloader struct {
	baseURL  string
	cacheDir string
	timeout  time.Duration
	client   *http.Client
	log      *logging.Logger
}

// New constructs a Downloader from the resolved configuration.
func New(cfg config.Config, options ...Option) *Downloader {
	d := &Downloader{
		baseURL:  cfg.AssetBaseURL,
		cacheDir: cfg.CacheDir,
		timeout:  cfg.RequestTimeout,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d
}

// Download resolves markup for every icon, returning the successful subset
// and the number of icons that failed. Failures are logged and skipped so a
// partially reachable upstream still yields a usable package; only context
// cancellation aborts the loop with an error.
func (d *Downloader) Download(ctx context.Context, icons []heroicons.Icon) (heroicons.ResolvedSet, int, error) {
	resolved := make(heroicons.ResolvedSet, len(icons))
	errorCount := 0

	for _, icon := range icons {
		if err := ctx.Err(); err != nil {
			return resolved, errorCount, err
		}

		markup, err := d.resolve(ctx, icon)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return resolved, errorCount, context.Canceled
			}
			d.log.Warnf("  Warning: could not process icon %q: %v", icon.Key(), err)
			errorCount++
			continue
		}
		resolved[icon] = markup
	}

	return resolved, errorCount, nil
}

func (d *Downloader) resolve(ctx context.Context, icon heroicons.Icon) (string, error) {
	cachePath := d.cachePath(icon)

	if data, err := os.ReadFile(cachePath); err == nil {
		markup, sanErr := heroicons.SanitizeSVG(string(data))
		if sanErr == nil {
			d.log.Debugf("  Using cached SVG for %s", icon.Key())
			return markup, nil
		}
		// Corrupt cache entries fall through to a fresh download.
		d.log.Debugf("  Warning: cached SVG for %s is invalid; refetching.", icon.Key())
	}

	body, err := d.fetch(ctx, heroicons.AssetURL(d.baseURL, icon))
	if err != nil {
		return "", err
	}

	markup, err := heroicons.SanitizeSVG(string(body))
	if err != nil {
		return "", fmt.Errorf("svgdl: %s: %w", icon.Key(), err)
	}

	d.writeCache(cachePath, markup, icon)
	return markup, nil
}

func (d *Downloader) fetch(ctx context.Context, url string) ([]byte, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if d.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("svgdl: build request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, context.Canceled
		}
		return nil, fmt.Errorf("svgdl: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("svgdl: fetch %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("svgdl: read %s: %w", url, err)
	}
	return data, nil
}

func (d *Downloader) cachePath(icon heroicons.Icon) string {
	return filepath.Join(d.cacheDir, cacheSubdir, icon.Key()+".svg")
}

// writeCache is best effort: a read-only cache directory must not fail the
// run.
func (d *Downloader) writeCache(path, markup string, icon heroicons.Icon) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		d.log.Debugf("  Warning: could not create cache dir for %s: %v", icon.Key(), err)
		return
	}
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		d.log.Debugf("  Warning: could not cache SVG for %s: %v", icon.Key(), err)
	}
}
