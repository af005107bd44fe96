// Package config carries the static defaults of the generator as an
// immutable value constructed once and passed explicitly through the
// pipeline. An optional YAML project file can override individual fields.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultOutputDir is where the generated package lands; its base name
	// becomes the templ package name.
	DefaultOutputDir = "heroicons"

	// OutputFilename is the fixed name of the generated file. Files carrying
	// this name are never scanned for icon usage.
	OutputFilename = "heroicons.templ"

	// DefaultCacheDir stores the icon-list snapshot and per-icon SVG files.
	DefaultCacheDir = ".heroicons-cache"

	// DefaultSVGClass is the CSS class generated components fall back to
	// when callers pass an empty override.
	DefaultSVGClass = "w-6 h-6"

	// DefaultManifestURL lists every file in the upstream Heroicons repo;
	// the manifest fetcher filters it down to optimized SVG assets.
	DefaultManifestURL = "https://api.github.com/repos/tailwindlabs/heroicons/git/trees/master?recursive=1"

	// DefaultAssetBaseURL is the root under which per-icon SVGs are fetched.
	DefaultAssetBaseURL = "https://raw.githubusercontent.com/tailwindlabs/heroicons/master/optimized"

	// DefaultRequestTimeout bounds every network call. There are no retries.
	DefaultRequestTimeout = 15 * time.Second
)

// Config is the resolved configuration handed to each pipeline stage.
type Config struct {
	InputDir       string
	OutputDir      string
	CacheDir       string
	DefaultClass   string
	ManifestURL    string
	AssetBaseURL   string
	RequestTimeout time.Duration
}

// fileConfig is the YAML shape of the optional project file. Durations are
// strings ("5s") so the file reads naturally.
type fileConfig struct {
	InputDir       string `yaml:"input_dir"`
	OutputDir      string `yaml:"output_dir"`
	CacheDir       string `yaml:"cache_dir"`
	DefaultClass   string `yaml:"default_class"`
	ManifestURL    string `yaml:"manifest_url"`
	AssetBaseURL   string `yaml:"asset_base_url"`
	RequestTimeout string `yaml:"request_timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputDir:       ".",
		OutputDir:      DefaultOutputDir,
		CacheDir:       DefaultCacheDir,
		DefaultClass:   DefaultSVGClass,
		ManifestURL:    DefaultManifestURL,
		AssetBaseURL:   DefaultAssetBaseURL,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// LoadFile reads a YAML project file and overlays its non-zero fields on top
// of the defaults. A missing file is not an error when optional is true.
func LoadFile(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var overlay fileConfig
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.merge(overlay); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) merge(overlay fileConfig) error {
	if overlay.InputDir != "" {
		c.InputDir = overlay.InputDir
	}
	if overlay.OutputDir != "" {
		c.OutputDir = overlay.OutputDir
	}
	if overlay.CacheDir != "" {
		c.CacheDir = overlay.CacheDir
	}
	if overlay.DefaultClass != "" {
		c.DefaultClass = overlay.DefaultClass
	}
	if overlay.ManifestURL != "" {
		c.ManifestURL = overlay.ManifestURL
	}
	if overlay.AssetBaseURL != "" {
		c.AssetBaseURL = overlay.AssetBaseURL
	}
	if overlay.RequestTimeout != "" {
		timeout, err := time.ParseDuration(overlay.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}
		c.RequestTimeout = timeout
	}
	return nil
}
