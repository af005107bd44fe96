package heroicons

import "testing"

func TestComponentName_ConvertsKebabToPascal(t *testing.T) {
	cases := map[Name]string{
		"home":               "Home",
		"arrow-left":         "ArrowLeft",
		"x-mark":             "XMark",
		"archive-box-x-mark": "ArchiveBoxXMark",
	}
	for name, want := range cases {
		if got := ComponentName(name); got != want {
			t.Fatalf("ComponentName(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestIcon_Component_AppendsVariantSuffix(t *testing.T) {
	icon := Icon{Name: "arrow-left", Variant: VariantOutline}
	if got := icon.Component(); got != "ArrowLeft" {
		t.Fatalf("outline component = %q", got)
	}
	icon.Variant = VariantSolid
	if got := icon.Component(); got != "ArrowLeftSolid" {
		t.Fatalf("solid component = %q", got)
	}
	icon.Variant = VariantMicro
	if got := icon.Component(); got != "ArrowLeftMicro" {
		t.Fatalf("micro component = %q", got)
	}
}

func TestParseComponent_RoundTripsNamesAndVariants(t *testing.T) {
	cases := []struct {
		component string
		want      Icon
	}{
		{"Home", Icon{Name: "home", Variant: VariantOutline}},
		{"ArrowLeft", Icon{Name: "arrow-left", Variant: VariantOutline}},
		{"ArrowLeftSolid", Icon{Name: "arrow-left", Variant: VariantSolid}},
		{"BellMini", Icon{Name: "bell", Variant: VariantMini}},
		{"BoltMicro", Icon{Name: "bolt", Variant: VariantMicro}},
		{"XMark", Icon{Name: "x-mark", Variant: VariantOutline}},
	}
	for _, tc := range cases {
		got, ok := ParseComponent(tc.component)
		if !ok {
			t.Fatalf("ParseComponent(%q) not recognized", tc.component)
		}
		if got != tc.want {
			t.Fatalf("ParseComponent(%q) = %+v, want %+v", tc.component, got, tc.want)
		}
	}
}

func TestParseComponent_RejectsMalformedIdentifiers(t *testing.T) {
	for _, component := range []string{"", "home", "Solid", "Mini", "Ar row", "Home!"} {
		if icon, ok := ParseComponent(component); ok {
			t.Fatalf("ParseComponent(%q) unexpectedly accepted as %+v", component, icon)
		}
	}
}

func TestIcon_Key_IsStable(t *testing.T) {
	icon := Icon{Name: "arrow-left", Variant: VariantSolid}
	if got := icon.Key(); got != "arrow-left.solid" {
		t.Fatalf("Key() = %q", got)
	}
}

func TestSet_AddDeduplicatesVariants(t *testing.T) {
	set := Set{}
	set.Add("home", VariantOutline)
	set.Add("home", VariantOutline)
	set.Add("home", VariantSolid)

	if len(set["home"]) != 2 {
		t.Fatalf("expected 2 variants, got %v", set["home"])
	}
	if !set.Contains("home") {
		t.Fatal("expected set to contain home")
	}
	if set.Contains("bolt") {
		t.Fatal("did not expect set to contain bolt")
	}
	if set.Empty() {
		t.Fatal("set is not empty")
	}
}

func TestSortIcons_OrdersByNameThenVariant(t *testing.T) {
	icons := []Icon{
		{Name: "home", Variant: VariantSolid},
		{Name: "bell", Variant: VariantOutline},
		{Name: "home", Variant: VariantOutline},
	}
	SortIcons(icons)

	want := []Icon{
		{Name: "bell", Variant: VariantOutline},
		{Name: "home", Variant: VariantOutline},
		{Name: "home", Variant: VariantSolid},
	}
	for i := range want {
		if icons[i] != want[i] {
			t.Fatalf("position %d = %+v, want %+v", i, icons[i], want[i])
		}
	}
}

func TestAssetURL_FollowsOptimizedLayout(t *testing.T) {
	base := "https://example.com/optimized"
	cases := map[Icon]string{
		{Name: "home", Variant: VariantOutline}: base + "/24/outline/home.svg",
		{Name: "home", Variant: VariantSolid}:   base + "/24/solid/home.svg",
		{Name: "home", Variant: VariantMini}:    base + "/20/solid/home.svg",
		{Name: "home", Variant: VariantMicro}:   base + "/16/solid/home.svg",
	}
	for icon, want := range cases {
		if got := AssetURL(base+"/", icon); got != want {
			t.Fatalf("AssetURL(%+v) = %q, want %q", icon, got, want)
		}
	}
}

func TestParseAssetPath_RecognizesOptimizedEntries(t *testing.T) {
	icon, ok := ParseAssetPath("optimized/20/solid/bell.svg")
	if !ok {
		t.Fatal("expected path to parse")
	}
	if icon != (Icon{Name: "bell", Variant: VariantMini}) {
		t.Fatalf("parsed %+v", icon)
	}

	for _, path := range []string{
		"src/24/outline/bell.svg",
		"optimized/24/outline/bell.png",
		"optimized/24/outline",
		"optimized/12/outline/bell.svg",
		"README.md",
	} {
		if _, ok := ParseAssetPath(path); ok {
			t.Fatalf("ParseAssetPath(%q) unexpectedly accepted", path)
		}
	}
}
