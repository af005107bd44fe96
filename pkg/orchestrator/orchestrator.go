// Package orchestrator wires the manifest → scanner → downloader → generator
// pipeline, providing dependency-injection friendly helpers for consumers
// that prefer a single entry point. Stages run sequentially; the only
// suspension points are the bounded network calls inside the manifest source
// and the downloader.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	internalmanifest "github.com/goliatone/go-icongen/internal/manifest"
	internalscanner "github.com/goliatone/go-icongen/internal/scanner"
	"github.com/goliatone/go-icongen/internal/svgdl"
	"github.com/goliatone/go-icongen/pkg/config"
	"github.com/goliatone/go-icongen/pkg/generator"
	"github.com/goliatone/go-icongen/pkg/heroicons"
	"github.com/goliatone/go-icongen/pkg/logging"
	"github.com/goliatone/go-icongen/pkg/manifest"
	"github.com/goliatone/go-icongen/pkg/scan"
)

// ErrNoIconsProcessed is returned when icons were identified in the project
// but none could be downloaded or validated. An empty scan is not an error;
// a project whose icons are all unresolvable is.
var ErrNoIconsProcessed = errors.New("orchestrator: no identified icons could be processed")

// Downloader resolves icon references to sanitized markup, returning the
// successful subset and the count of per-icon failures.
type Downloader interface {
	Download(ctx context.Context, icons []heroicons.Icon) (heroicons.ResolvedSet, int, error)
}

// Generator emits the package file from resolved markup.
type Generator interface {
	Generate(req generator.Request) ([]byte, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithManifestSource injects a custom icon-list source.
func WithManifestSource(source manifest.Source) Option {
	return func(o *Orchestrator) {
		o.source = source
	}
}

// WithScanner injects a custom project scanner.
func WithScanner(scanner scan.Scanner) Option {
	return func(o *Orchestrator) {
		o.scanner = scanner
	}
}

// WithDownloader injects a custom SVG downloader.
func WithDownloader(downloader Downloader) Option {
	return func(o *Orchestrator) {
		o.downloader = downloader
	}
}

// WithGenerator injects a custom package generator.
func WithGenerator(gen Generator) Option {
	return func(o *Orchestrator) {
		o.generator = gen
	}
}

// WithLogger injects the progress logger shared across stages.
func WithLogger(log *logging.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// Orchestrator coordinates the full pipeline from project scan to generated
// file. It applies the built-in implementations for any stage not injected.
type Orchestrator struct {
	cfg        config.Config
	log        *logging.Logger
	source     manifest.Source
	scanner    scan.Scanner
	downloader Downloader
	generator  Generator
}

// New constructs an Orchestrator from the resolved configuration, applying
// any provided options. Missing stages are initialised with the built-in
// implementations so callers can start with a single constructor call.
func New(cfg config.Config, options ...Option) (*Orchestrator, error) {
	o := &Orchestrator{cfg: cfg}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}

	if o.log == nil {
		o.log = logging.New(logging.LevelNormal, nil, nil)
	}
	if o.source == nil {
		o.source = internalmanifest.New(cfg, internalmanifest.WithLogger(o.log))
	}
	if o.scanner == nil {
		o.scanner = internalscanner.New(internalscanner.WithLogger(o.log))
	}
	if o.downloader == nil {
		o.downloader = svgdl.New(cfg, svgdl.WithLogger(o.log))
	}
	if o.generator == nil {
		gen, err := generator.New(generator.WithLogger(o.log))
		if err != nil {
			return nil, err
		}
		o.generator = gen
	}
	return o, nil
}

// Request describes one generation run. Zero values fall back to the
// configuration the orchestrator was constructed with.
type Request struct {
	// InputDir is the project root to scan.
	InputDir string

	// OutputDir receives the generated file and names its package.
	OutputDir string

	// IncludeOutputDir scans files physically located under OutputDir too.
	// The default skips them so prior generator output is never re-scanned
	// as usage.
	IncludeOutputDir bool

	// Force overwrites an existing output file whose content differs.
	Force bool

	// DryRun suppresses all disk writes apart from cache maintenance.
	DryRun bool

	// DefaultClass overrides the configured fallback CSS class.
	DefaultClass string
}

// Report summarises one run for display by the caller.
type Report struct {
	// Found counts the distinct icons referenced by the project.
	Found int

	// Dropped counts references rejected by the valid-icon set.
	Dropped int

	// Resolved counts icons whose markup was cached or downloaded.
	Resolved int

	// DownloadErrors counts per-icon download or validation failures.
	DownloadErrors int

	// Content is the generated file content, also on dry runs.
	Content []byte

	// OutputPath is where the content was (or would be) written.
	OutputPath string
}

// Run executes the pipeline: resolve the valid-icon set, scan the project,
// download or load cached markup, and generate the package file. Per-icon
// failures are tolerated; Run returns an error only for cancellation,
// filesystem problems, an output conflict, or when icons were identified but
// none survived processing outside a dry run.
func (o *Orchestrator) Run(ctx context.Context, req Request) (Report, error) {
	report := Report{}

	inputDir := req.InputDir
	if inputDir == "" {
		inputDir = o.cfg.InputDir
	}
	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = o.cfg.OutputDir
	}
	defaultClass := req.DefaultClass
	if defaultClass == "" {
		defaultClass = o.cfg.DefaultClass
	}
	report.OutputPath = filepath.Join(outputDir, config.OutputFilename)

	valid, err := o.source.Fetch(ctx)
	if err != nil {
		return report, err
	}

	o.log.Debugf("Scanning project for icon usage...")
	scanned, err := o.scanner.Scan(inputDir, outputDir, !req.IncludeOutputDir, valid)
	if err != nil {
		return report, err
	}
	report.Found = len(scanned.Icons)
	report.Dropped = len(scanned.Dropped)

	if report.Found == 0 && !req.DryRun {
		o.log.Infof("No icons found in project files matching the required format, or none were valid.")
	}
	if report.Found > 0 {
		o.log.Debugf("Preparing to download/cache SVGs for %d icon(s)...", report.Found)
	} else {
		o.log.Debugf("No icons to download/cache.")
	}

	resolved, downloadErrors, err := o.downloader.Download(ctx, scanned.Icons)
	if err != nil {
		return report, err
	}
	report.Resolved = len(resolved)
	report.DownloadErrors = downloadErrors

	if downloadErrors > 0 {
		o.log.Warnf("Warning: encountered %d error(s) during SVG download/processing.", downloadErrors)
		if report.Resolved == 0 && report.Found > 0 && !req.DryRun {
			return report, fmt.Errorf("%w: %d icon(s) identified, %d error(s)", ErrNoIconsProcessed, report.Found, downloadErrors)
		}
		if report.Found > 0 {
			o.log.Debugf("  Proceeding with %d successfully processed icon(s).", report.Resolved)
		}
	}

	o.log.Debugf("Generating templ package...")
	content, err := o.generator.Generate(generator.Request{
		OutputDir:    outputDir,
		Icons:        resolved,
		Force:        req.Force,
		DryRun:       req.DryRun,
		DefaultClass: defaultClass,
	})
	if err != nil {
		return report, err
	}
	report.Content = content

	return report, nil
}
