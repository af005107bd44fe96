package scanner

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-icongen/pkg/heroicons"
	"github.com/goliatone/go-icongen/pkg/logging"
	"github.com/goliatone/go-icongen/pkg/testsupport"
)

func newTestScanner() *Scanner {
	return New(WithLogger(logging.Discard()))
}

func TestScan_ExtractsAndDeduplicatesReferences(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, root, "views/nav.templ", `package views

templ Nav() {
	@heroicons.Home("", templ.Attributes{})
	@heroicons.Home("w-4 h-4", nil)
	@heroicons.ArrowLeftSolid("", nil)
}
`)
	testsupport.WriteFile(t, root, "handlers/page.go", `package handlers

var _ = heroicons.BellMini("", nil)
`)

	result, err := newTestScanner().Scan(root, filepath.Join(root, "heroicons"), true, nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []heroicons.Icon{
		{Name: "arrow-left", Variant: heroicons.VariantSolid},
		{Name: "bell", Variant: heroicons.VariantMini},
		{Name: "home", Variant: heroicons.VariantOutline},
	}
	if diff := cmp.Diff(want, result.Icons); diff != "" {
		t.Fatalf("icons mismatch (-want +got):\n%s", diff)
	}
	// Two occurrences of Home, one each of the others.
	if len(result.Usages) != 4 {
		t.Fatalf("expected 4 usage records, got %d", len(result.Usages))
	}
}

func TestScan_SkipsGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, root, "views/nav_templ.go", `package views

var _ = heroicons.Home("", nil)
`)
	testsupport.WriteFile(t, root, "views/heroicons.templ", `package views

templ Stale() {
	@heroicons.Bolt("", nil)
}
`)
	testsupport.WriteFile(t, root, "views/readme.txt", `@heroicons.ameBell("", nil)`)

	result, err := newTestScanner().Scan(root, filepath.Join(root, "out"), true, nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(result.Icons) != 0 {
		t.Fatalf("generated or non-source files contributed icons: %v", result.Icons)
	}
}

func TestScan_OutputDirExclusionToggle(t *testing.T) {
	root := t.TempDir()
	outputDir := filepath.Join(root, "heroicons")
	testsupport.WriteFile(t, root, "heroicons/helpers.templ", `package heroicons

templ Wrapped() {
	@heroicons.Bolt("", nil)
}
`)

	excluded, err := newTestScanner().Scan(root, outputDir, true, nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(excluded.Icons) != 0 {
		t.Fatalf("output dir file contributed icons despite exclusion: %v", excluded.Icons)
	}

	included, err := newTestScanner().Scan(root, outputDir, false, nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	want := []heroicons.Icon{{Name: "bolt", Variant: heroicons.VariantOutline}}
	if diff := cmp.Diff(want, included.Icons); diff != "" {
		t.Fatalf("icons mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_ValidSetFiltersUnknownNames(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, root, "page.templ", `package page

templ Page() {
	@heroicons.Home("", nil)
	@heroicons.UnknownXyz("", nil)
}
`)

	valid := heroicons.Set{}
	valid.Add("home", heroicons.VariantOutline)

	result, err := newTestScanner().Scan(root, filepath.Join(root, "out"), true, valid)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	want := []heroicons.Icon{{Name: "home", Variant: heroicons.VariantOutline}}
	if diff := cmp.Diff(want, result.Icons); diff != "" {
		t.Fatalf("icons mismatch (-want +got):\n%s", diff)
	}
	if len(result.Dropped) != 1 || result.Dropped[0].Icon.Name != "unknown-xyz" {
		t.Fatalf("dropped records = %+v", result.Dropped)
	}
}

func TestScan_EmptyValidSetAdmitsEverything(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, root, "page.templ", `package page

templ Page() {
	@heroicons.UnknownXyz("", nil)
}
`)

	result, err := newTestScanner().Scan(root, filepath.Join(root, "out"), true, heroicons.Set{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(result.Icons) != 1 || result.Icons[0].Name != "unknown-xyz" {
		t.Fatalf("icons = %+v", result.Icons)
	}
}

func TestScan_RecordsUsageLocations(t *testing.T) {
	root := t.TempDir()
	path := testsupport.WriteFile(t, root, "page.templ", `package page

templ Page() {
	@heroicons.Home("", nil)
}
`)

	result, err := newTestScanner().Scan(root, filepath.Join(root, "out"), true, nil)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(result.Usages) != 1 {
		t.Fatalf("usages = %+v", result.Usages)
	}
	if result.Usages[0].Path != path || result.Usages[0].Line != 4 {
		t.Fatalf("usage location = %s:%d", result.Usages[0].Path, result.Usages[0].Line)
	}
}
