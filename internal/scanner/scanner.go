// Package scanner walks a project tree extracting Heroicons references from
// templ sources and their compiled Go output.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goliatone/go-icongen/pkg/config"
	"github.com/goliatone/go-icongen/pkg/heroicons"
	"github.com/goliatone/go-icongen/pkg/logging"
	"github.com/goliatone/go-icongen/pkg/scan"
)

// generatedGoSuffix marks templ compiler output, which is always skipped:
// it restates every reference of its source .templ file.
const generatedGoSuffix = "_templ.go"

// referencePattern matches the call-like invocation of a generated icon
// component: "@heroicons.Home(" in .templ sources, "heroicons.Home(" in
// compiled Go files.
var referencePattern = regexp.MustCompile(`@?heroicons\.([A-Z][A-Za-z0-9]*)\s*\(`)

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger injects the shared progress logger.
func WithLogger(log *logging.Logger) Option {
	return func(s *Scanner) {
		s.log = log
	}
}

// Scanner extracts icon references from project files.
type Scanner struct {
	log *logging.Logger
}

var _ scan.Scanner = (*Scanner)(nil)

// New constructs a Scanner.
func New(options ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Scan recursively walks inputDir collecting icon references. Files under
// outputDir are skipped when excludeOutput is true, and files named after
// the generated output or carrying the generated Go suffix are skipped
// unconditionally. When valid is non-empty, names outside it are dropped.
// The returned icons are deduplicated and sorted.
func (s *Scanner) Scan(inputDir, outputDir string, excludeOutput bool, valid heroicons.Set) (scan.Result, error) {
	var result scan.Result

	excludedDir := ""
	if excludeOutput {
		abs, err := filepath.Abs(outputDir)
		if err != nil {
			return result, fmt.Errorf("scanner: resolve output dir: %w", err)
		}
		excludedDir = abs
	}

	seen := map[heroicons.Icon]struct{}{}

	err := filepath.WalkDir(inputDir, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if entry.IsDir() {
			if excludedDir != "" {
				if abs, err := filepath.Abs(path); err == nil && abs == excludedDir {
					s.log.Debugf("  Skipping output directory %s", path)
					return fs.SkipDir
				}
			}
			return nil
		}

		if !scannable(entry.Name()) {
			return nil
		}

		s.log.Debugf("  Scanning %s", path)

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("scanner: read %s: %w", path, err)
		}

		for lineNo, line := range strings.Split(string(data), "\n") {
			for _, match := range referencePattern.FindAllStringSubmatch(line, -1) {
				icon, ok := heroicons.ParseComponent(match[1])
				if !ok {
					continue
				}
				record := scan.UsageRecord{Icon: icon, Path: path, Line: lineNo + 1}
				if !valid.Empty() && !valid.Contains(icon.Name) {
					s.log.Debugf("  Warning: unknown icon %q referenced at %s:%d; skipping.", icon.Name, path, lineNo+1)
					result.Dropped = append(result.Dropped, record)
					continue
				}
				if _, dup := seen[icon]; !dup {
					s.log.Debugf("  Found %s at %s:%d", icon.Component(), path, lineNo+1)
				}
				result.Usages = append(result.Usages, record)
				seen[icon] = struct{}{}
			}
		}
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("scanner: walk %s: %w", inputDir, err)
	}

	for icon := range seen {
		result.Icons = append(result.Icons, icon)
	}
	heroicons.SortIcons(result.Icons)
	return result, nil
}

// scannable reports whether the file name matches the project source
// conventions: .templ sources and .go files, excluding templ compiler output
// and the generated icon package itself.
func scannable(name string) bool {
	if name == config.OutputFilename {
		return false
	}
	switch {
	case strings.HasSuffix(name, generatedGoSuffix):
		return false
	case strings.HasSuffix(name, ".templ"), strings.HasSuffix(name, ".go"):
		return true
	}
	return false
}
