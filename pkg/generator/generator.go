// Package generator renders the heroicons.templ package file from resolved
// icon markup and owns the write rules: identical content is never
// rewritten, differing content requires force, and dry runs touch nothing.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-icongen/pkg/config"
	"github.com/goliatone/go-icongen/pkg/heroicons"
	"github.com/goliatone/go-icongen/pkg/logging"
)

const templateName = "templates/heroicons.templ"

// ErrOutputExists is returned when the target file holds different content
// and force was not requested.
var ErrOutputExists = errors.New("generator: output file exists")

// Option configures a Generator.
type Option func(*options)

type options struct {
	templateFS fs.FS
	templates  TemplateRenderer
	log        *logging.Logger
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(o *options) {
		if files != nil {
			o.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer TemplateRenderer) Option {
	return func(o *options) {
		if renderer != nil {
			o.templates = renderer
		}
	}
}

// WithLogger injects the shared progress logger.
func WithLogger(log *logging.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Generator emits the icon package file.
type Generator struct {
	templates TemplateRenderer
	log       *logging.Logger
}

// New constructs a Generator, defaulting to the embedded template bundle.
func New(opts ...Option) (*Generator, error) {
	cfg := options{templateFS: TemplatesFS()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templates
	if renderer == nil {
		engine, err := NewEngine(WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("generator: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Generator{templates: renderer, log: cfg.log}, nil
}

// Request describes one generation pass.
type Request struct {
	// OutputDir receives the generated file; its base name becomes the
	// templ package name.
	OutputDir string

	// Icons maps each resolved icon to its sanitized markup. Empty input
	// produces a valid empty package.
	Icons heroicons.ResolvedSet

	// Force overwrites an existing file whose content differs.
	Force bool

	// DryRun suppresses every disk write; the rendered content is still
	// returned for display.
	DryRun bool

	// DefaultClass is the CSS class baked into the generated package as the
	// fallback for empty overrides.
	DefaultClass string
}

// Generate renders the package file and applies the write rules. The
// rendered content is returned in every non-error case, including dry runs
// and the identical-content short-circuit.
func (g *Generator) Generate(req Request) ([]byte, error) {
	views := make([]map[string]any, 0, len(req.Icons))
	for _, icon := range req.Icons.Icons() {
		markup, err := heroicons.ParseMarkup(req.Icons[icon])
		if err != nil {
			return nil, fmt.Errorf("generator: markup for %s: %w", icon.Key(), err)
		}
		attrs := make([]map[string]any, 0, len(markup.Attrs))
		for _, attr := range markup.Attrs {
			attrs = append(attrs, map[string]any{"key": attr.Key, "value": attr.Value})
		}
		views = append(views, map[string]any{
			"component": icon.Component(),
			"name":      string(icon.Name),
			"variant":   string(icon.Variant),
			"attrs":     attrs,
			"inner":     markup.Inner,
		})
	}

	rendered, err := g.templates.RenderTemplate(templateName, map[string]any{
		"package_name":  PackageName(req.OutputDir),
		"default_class": req.DefaultClass,
		"icons":         views,
	})
	if err != nil {
		return nil, err
	}
	content := []byte(strings.TrimRight(rendered, "\n") + "\n")

	target := filepath.Join(req.OutputDir, config.OutputFilename)

	existing, err := os.ReadFile(target)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			g.log.Infof("Output file %s is up to date; nothing written.", target)
			return content, nil
		}
		if !req.Force && !req.DryRun {
			return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, target)
		}
	case !os.IsNotExist(err):
		// An unreadable existing file must not be silently overwritten.
		return nil, fmt.Errorf("generator: inspect %s: %w", target, err)
	}

	if req.DryRun {
		return content, nil
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("generator: create output dir %s: %w", req.OutputDir, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return nil, fmt.Errorf("generator: write %s: %w", target, err)
	}

	g.log.Infof("Wrote %d icon component(s) to %s.", len(req.Icons), target)
	return content, nil
}

// PackageName derives the templ package identifier from the output directory
// base name, stripping everything that cannot appear in a Go identifier.
func PackageName(outputDir string) string {
	base := strings.ToLower(filepath.Base(filepath.Clean(outputDir)))
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "heroicons"
	}
	return name
}
