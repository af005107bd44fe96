// Package scan defines the contract for extracting Heroicons references
// from project sources. The implementation lives in internal/scanner.
package scan

import "github.com/goliatone/go-icongen/pkg/heroicons"

// UsageRecord pins one reference to where it was found. Records exist for
// diagnostics only; generation correctness depends solely on the icon set.
type UsageRecord struct {
	Icon heroicons.Icon
	Path string
	Line int
}

// Result carries the deduplicated, sorted icons plus the per-occurrence
// records behind them. Dropped lists syntactically valid references rejected
// by the valid-icon set.
type Result struct {
	Icons   []heroicons.Icon
	Usages  []UsageRecord
	Dropped []UsageRecord
}

// Scanner walks a project tree collecting icon references. Files under
// outputDir are skipped when excludeOutput is true. When valid is non-empty,
// names outside it are dropped; an empty set admits every well-formed
// reference.
type Scanner interface {
	Scan(inputDir, outputDir string, excludeOutput bool, valid heroicons.Set) (Result, error)
}
