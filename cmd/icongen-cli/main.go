package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/pflag"

	icongen "github.com/goliatone/go-icongen"
	"github.com/goliatone/go-icongen/pkg/config"
	"github.com/goliatone/go-icongen/pkg/generator"
	"github.com/goliatone/go-icongen/pkg/logging"
	"github.com/goliatone/go-icongen/pkg/orchestrator"
)

const version = "0.2.0"

// Exit codes follow the usual CLI conventions: 130 signals a user interrupt.
const (
	exitOK        = 0
	exitFailure   = 1
	exitInterrupt = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: icongen-cli [options]\n\n")
		fmt.Fprintf(os.Stderr, "Generate a heroicons.templ file from the Heroicons your project uses.\n")
		fmt.Fprintf(os.Stderr, "Scans .templ and .go sources (excluding *_templ.go) for icon references,\n")
		fmt.Fprintf(os.Stderr, "downloads and caches the SVGs, and emits one templ component per icon.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	inputDir := pflag.StringP("input-dir", "i", ".", "Root directory of the project to scan")
	outputDir := pflag.StringP("output-dir", "o", config.DefaultOutputDir, "Output directory for "+config.OutputFilename+"; its base name becomes the package name")
	force := pflag.BoolP("force", "f", false, "Overwrite the output file if it exists with different content")
	excludeOutput := pflag.Bool("exclude-output", true, "Exclude source files within --output-dir from scanning")
	verbose := pflag.BoolP("verbose", "v", false, "Enable detailed output during scanning and downloading")
	silent := pflag.BoolP("silent", "s", false, "Suppress all informational output; only errors are printed (overrides --verbose)")
	dryRun := pflag.Bool("dry-run", false, "Preview the generated output without writing to disk")
	defaultClass := pflag.String("default-class", config.DefaultSVGClass, "Default CSS class attribute value for SVG elements")
	cacheDir := pflag.String("cache-dir", config.DefaultCacheDir, "Directory for cached SVG files and the icon list")
	configPath := pflag.String("config", ".icongen.yaml", "Optional YAML project configuration file")
	interactive := pflag.Bool("interactive", false, "Prompt before overwriting an existing output file instead of failing")
	showVersion := pflag.BoolP("version", "V", false, "Print version information")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("icongen-cli version %s\n", version)
		return exitOK
	}

	// Silent wins when both verbosity flags are given.
	level := logging.LevelNormal
	switch {
	case *silent:
		level = logging.LevelSilent
	case *verbose:
		level = logging.LevelVerbose
	}
	log := logging.New(level, os.Stdout, os.Stderr)
	log.Debugf("Verbose mode enabled.")

	cfg, err := config.LoadFile(*configPath, !pflag.Lookup("config").Changed)
	if err != nil {
		log.Errorf("Configuration error: %v", err)
		return finish(log, exitFailure)
	}
	applyFlagOverrides(&cfg, *inputDir, *outputDir, *defaultClass, *cacheDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	req := icongen.Request{
		InputDir:         cfg.InputDir,
		OutputDir:        cfg.OutputDir,
		IncludeOutputDir: !*excludeOutput,
		Force:            *force,
		DryRun:           *dryRun,
		DefaultClass:     cfg.DefaultClass,
	}

	gen, err := icongen.New(cfg, orchestrator.WithLogger(log))
	if err != nil {
		log.Errorf("Setup error: %v", err)
		return finish(log, exitFailure)
	}

	report, err := gen.Run(ctx, req)
	if err != nil && *interactive && !req.Force && errors.Is(err, generator.ErrOutputExists) {
		var retry bool
		retry, err = confirmOverwrite(report.OutputPath)
		if retry {
			req.Force = true
			report, err = gen.Run(ctx, req)
		}
	}
	if err != nil {
		return finish(log, exitCodeFor(log, err))
	}

	if *dryRun {
		printDryRun(report.OutputPath, report.Content)
	}

	return finish(log, exitOK)
}

// applyFlagOverrides layers explicit command-line values over the config
// file so flags always win.
func applyFlagOverrides(cfg *config.Config, inputDir, outputDir, defaultClass, cacheDir string) {
	if pflag.Lookup("input-dir").Changed || cfg.InputDir == "" {
		cfg.InputDir = inputDir
	}
	if pflag.Lookup("output-dir").Changed || cfg.OutputDir == "" {
		cfg.OutputDir = outputDir
	}
	if pflag.Lookup("default-class").Changed || cfg.DefaultClass == "" {
		cfg.DefaultClass = defaultClass
	}
	if pflag.Lookup("cache-dir").Changed || cfg.CacheDir == "" {
		cfg.CacheDir = cacheDir
	}
}

func confirmOverwrite(target string) (bool, error) {
	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s exists with different content. Overwrite?", displayPath(target)),
		Default: false,
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, context.Canceled
		}
		return false, err
	}
	if !overwrite {
		return false, fmt.Errorf("%w: %s", generator.ErrOutputExists, target)
	}
	return true, nil
}

func printDryRun(target string, content []byte) {
	fmt.Printf("\n--- Dry Run: content that would be written to %s ---\n", displayPath(target))
	fmt.Println(string(content))
	fmt.Println("--- End Dry Run ---")
}

// displayPath prefers a path relative to the working directory.
func displayPath(target string) string {
	wd, err := os.Getwd()
	if err != nil {
		return target
	}
	rel, err := filepath.Rel(wd, target)
	if err != nil {
		return target
	}
	return rel
}

func exitCodeFor(log *logging.Logger, err error) int {
	if errors.Is(err, context.Canceled) {
		log.Errorf("\nOperation cancelled by user.")
		return exitInterrupt
	}
	log.Errorf("Error: %v", err)
	return exitFailure
}

func finish(log *logging.Logger, code int) int {
	if code == exitOK {
		log.Infof("Finished successfully.")
	} else {
		log.Infof("Finished with errors (exit code %d).", code)
	}
	return code
}
