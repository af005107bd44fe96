package heroicons

import "strings"

// AssetURL derives the download URL for an icon from the configured base,
// following the optimized/<size>/<style>/<name>.svg layout published by the
// Heroicons repository.
func AssetURL(baseURL string, icon Icon) string {
	return strings.TrimRight(baseURL, "/") + "/" + icon.Variant.AssetPath() + "/" + string(icon.Name) + ".svg"
}

// ParseAssetPath resolves a repository-relative path such as
// "optimized/24/outline/home.svg" into the icon it publishes. Paths outside
// the optimized SVG layout return false.
func ParseAssetPath(path string) (Icon, bool) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) != 4 || parts[0] != "optimized" {
		return Icon{}, false
	}
	name, ok := strings.CutSuffix(parts[3], ".svg")
	if !ok || name == "" {
		return Icon{}, false
	}
	variant, ok := VariantFromAssetPath(parts[1], parts[2])
	if !ok {
		return Icon{}, false
	}
	return Icon{Name: Name(name), Variant: variant}, true
}
