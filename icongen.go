// Package icongen generates a templ component package from the Heroicons a
// project actually uses: it scans source files for icon references, resolves
// them against the upstream icon list, downloads and caches the SVG assets,
// and emits one heroicons.templ file exposing a typed component per icon.
package icongen

import (
	"context"

	"github.com/goliatone/go-icongen/pkg/config"
	"github.com/goliatone/go-icongen/pkg/orchestrator"
)

// Request mirrors orchestrator.Request; alias exported via the root package
// for convenience.
type Request = orchestrator.Request

// Report summarises one generation run.
type Report = orchestrator.Report

// Option customises the pipeline configuration.
type Option = orchestrator.Option

// New exposes the orchestrator constructor from the top-level module.
func New(cfg config.Config, options ...Option) (*orchestrator.Orchestrator, error) {
	return orchestrator.New(cfg, options...)
}

// Generate runs the whole pipeline with the built-in stage implementations.
// It is the simplest entry point for callers that just want the generated
// file written (or previewed, with Request.DryRun).
func Generate(ctx context.Context, cfg config.Config, req Request, options ...Option) (Report, error) {
	gen, err := orchestrator.New(cfg, options...)
	if err != nil {
		return Report{}, err
	}
	return gen.Run(ctx, req)
}
