package svgdl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-icongen/pkg/config"
	"github.com/goliatone/go-icongen/pkg/heroicons"
	"github.com/goliatone/go-icongen/pkg/logging"
	"github.com/goliatone/go-icongen/pkg/testsupport"
)

const homeSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path d="M2 12h20"/></svg>`

func testDownloader(t *testing.T, handler http.HandlerFunc) (*Downloader, string) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cacheDir := t.TempDir()
	cfg := config.Default()
	cfg.AssetBaseURL = server.URL
	cfg.CacheDir = cacheDir
	return New(cfg, WithLogger(logging.Discard())), cacheDir
}

func TestDownload_FetchesAndCaches(t *testing.T) {
	requests := 0
	dl, cacheDir := testDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/24/outline/home.svg" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(homeSVG))
	})

	icon := heroicons.Icon{Name: "home", Variant: heroicons.VariantOutline}
	resolved, errorCount, err := dl.Download(testsupport.Context(), []heroicons.Icon{icon})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if errorCount != 0 {
		t.Fatalf("error count = %d", errorCount)
	}
	if !strings.Contains(resolved[icon], "<path") {
		t.Fatalf("markup missing path: %q", resolved[icon])
	}

	cached := filepath.Join(cacheDir, "svgs", "home.outline.svg")
	if _, err := os.Stat(cached); err != nil {
		t.Fatalf("cache file missing: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected 1 request, saw %d", requests)
	}
}

func TestDownload_CacheHitSkipsNetwork(t *testing.T) {
	requests := 0
	dl, cacheDir := testDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(homeSVG))
	})

	icon := heroicons.Icon{Name: "home", Variant: heroicons.VariantOutline}
	testsupport.WriteFile(t, cacheDir, filepath.Join("svgs", "home.outline.svg"), homeSVG)

	resolved, errorCount, err := dl.Download(testsupport.Context(), []heroicons.Icon{icon})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if errorCount != 0 || len(resolved) != 1 {
		t.Fatalf("resolved=%d errors=%d", len(resolved), errorCount)
	}
	if requests != 0 {
		t.Fatalf("cache hit still hit the network %d time(s)", requests)
	}
}

func TestDownload_CorruptCacheEntryIsRefetched(t *testing.T) {
	requests := 0
	dl, cacheDir := testDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		_, _ = w.Write([]byte(homeSVG))
	})

	icon := heroicons.Icon{Name: "home", Variant: heroicons.VariantOutline}
	testsupport.WriteFile(t, cacheDir, filepath.Join("svgs", "home.outline.svg"), "<div>not svg</div>")

	resolved, errorCount, err := dl.Download(testsupport.Context(), []heroicons.Icon{icon})
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if errorCount != 0 || len(resolved) != 1 {
		t.Fatalf("resolved=%d errors=%d", len(resolved), errorCount)
	}
	if requests != 1 {
		t.Fatalf("expected refetch, saw %d request(s)", requests)
	}
}

func TestDownload_PartialFailureIsCountedNotFatal(t *testing.T) {
	dl, _ := testDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/home.svg"):
			_, _ = w.Write([]byte(homeSVG))
		case strings.HasSuffix(r.URL.Path, "/broken.svg"):
			_, _ = w.Write([]byte("this is not svg"))
		default:
			http.NotFound(w, r)
		}
	})

	icons := []heroicons.Icon{
		{Name: "home", Variant: heroicons.VariantOutline},
		{Name: "broken", Variant: heroicons.VariantOutline},
		{Name: "missing", Variant: heroicons.VariantOutline},
	}

	resolved, errorCount, err := dl.Download(testsupport.Context(), icons)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if errorCount != 2 {
		t.Fatalf("error count = %d, want 2", errorCount)
	}
	if len(resolved) != 1 {
		t.Fatalf("resolved = %v", resolved)
	}
	if _, ok := resolved[icons[0]]; !ok {
		t.Fatal("home should have resolved")
	}
}

func TestDownload_StopsOnCancellation(t *testing.T) {
	dl, _ := testDownloader(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(homeSVG))
	})

	ctx, cancel := context.WithCancel(testsupport.Context())
	cancel()

	_, _, err := dl.Download(ctx, []heroicons.Icon{{Name: "home", Variant: heroicons.VariantOutline}})
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
