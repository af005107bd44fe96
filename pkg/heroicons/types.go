package heroicons

import (
	"sort"
	"strings"
)

// Name is the normalized kebab-case identifier of an icon, e.g. "arrow-left".
// It is the unit of identity across scanning, downloading, and generation.
type Name string

// Variant selects one of the published Heroicons styles.
type Variant string

const (
	VariantOutline Variant = "outline"
	VariantSolid   Variant = "solid"
	VariantMini    Variant = "mini"
	VariantMicro   Variant = "micro"
)

// Variants lists all known variants in canonical order.
var Variants = []Variant{VariantOutline, VariantSolid, VariantMini, VariantMicro}

// componentSuffixes maps the Pascal-case suffix appended to component names
// onto the variant it selects. Outline is the default and carries no suffix.
var componentSuffixes = []struct {
	suffix  string
	variant Variant
}{
	{"Micro", VariantMicro},
	{"Mini", VariantMini},
	{"Solid", VariantSolid},
}

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	switch v {
	case VariantOutline, VariantSolid, VariantMini, VariantMicro:
		return true
	}
	return false
}

// AssetPath returns the upstream repository path segment for the variant,
// mirroring the optimized/<size>/<style> layout of the Heroicons repo.
func (v Variant) AssetPath() string {
	switch v {
	case VariantSolid:
		return "24/solid"
	case VariantMini:
		return "20/solid"
	case VariantMicro:
		return "16/solid"
	default:
		return "24/outline"
	}
}

// VariantFromAssetPath resolves the optimized/<size>/<style> segment back to
// a variant. The second return value is false for unknown combinations.
func VariantFromAssetPath(size, style string) (Variant, bool) {
	switch size + "/" + style {
	case "24/outline":
		return VariantOutline, true
	case "24/solid":
		return VariantSolid, true
	case "20/solid":
		return VariantMini, true
	case "16/solid":
		return VariantMicro, true
	}
	return "", false
}

// Icon identifies a single renderable asset: a name plus the variant it is
// drawn in.
type Icon struct {
	Name    Name
	Variant Variant
}

// Key returns the stable identifier used for cache files and dedup,
// e.g. "arrow-left.solid".
func (i Icon) Key() string {
	return string(i.Name) + "." + string(i.Variant)
}

// Component returns the templ component name the icon is exposed as, e.g.
// "ArrowLeftSolid". Outline icons carry no suffix.
func (i Icon) Component() string {
	base := ComponentName(i.Name)
	for _, cs := range componentSuffixes {
		if cs.variant == i.Variant {
			return base + cs.suffix
		}
	}
	return base
}

// ComponentName converts a kebab-case icon name into the exported Pascal-case
// identifier used in generated components: "arrow-left" becomes "ArrowLeft".
func ComponentName(name Name) string {
	parts := strings.Split(string(name), "-")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// ParseComponent reverses ComponentName plus the variant suffix convention:
// "ArrowLeftSolid" yields the "arrow-left" solid icon. The second return
// value is false when the identifier is not a well-formed component name.
func ParseComponent(component string) (Icon, bool) {
	if component == "" || component[0] < 'A' || component[0] > 'Z' {
		return Icon{}, false
	}

	variant := VariantOutline
	for _, cs := range componentSuffixes {
		// A bare suffix ("Solid") is not an icon reference.
		if component == cs.suffix {
			return Icon{}, false
		}
		if trimmed := strings.TrimSuffix(component, cs.suffix); trimmed != component {
			component = trimmed
			variant = cs.variant
			break
		}
	}

	name := kebabCase(component)
	if name == "" {
		return Icon{}, false
	}
	return Icon{Name: Name(name), Variant: variant}, true
}

// kebabCase lowercases a Pascal-case identifier inserting hyphens at word
// boundaries. Digit runs stay attached to the preceding word.
func kebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r - 'A' + 'a')
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		default:
			return ""
		}
	}
	return b.String()
}

// ResolvedSet maps each icon that passed validation and downloaded
// successfully to its sanitized SVG markup. It is the sole input to the
// generator.
type ResolvedSet map[Icon]string

// Icons returns the resolved icons in deterministic order.
func (r ResolvedSet) Icons() []Icon {
	icons := make([]Icon, 0, len(r))
	for icon := range r {
		icons = append(icons, icon)
	}
	SortIcons(icons)
	return icons
}

// Set is the authoritative collection of recognized icons: each name maps to
// the variants the upstream manifest publishes for it. An empty Set disables
// validation downstream rather than rejecting everything.
type Set map[Name][]Variant

// Add records that the named icon is available in the given variant.
func (s Set) Add(name Name, variant Variant) {
	for _, v := range s[name] {
		if v == variant {
			return
		}
	}
	s[name] = append(s[name], variant)
}

// Contains reports whether the set recognizes the icon name in any variant.
func (s Set) Contains(name Name) bool {
	_, ok := s[name]
	return ok
}

// Empty reports whether the set carries no icons, i.e. validation should be
// skipped.
func (s Set) Empty() bool {
	return len(s) == 0
}

// Names returns the icon names in sorted order.
func (s Set) Names() []Name {
	names := make([]Name, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// SortIcons orders icons by name, then by canonical variant order, so every
// downstream stage sees a deterministic sequence.
func SortIcons(icons []Icon) {
	rank := func(v Variant) int {
		for i, known := range Variants {
			if known == v {
				return i
			}
		}
		return len(Variants)
	}
	sort.Slice(icons, func(i, j int) bool {
		if icons[i].Name != icons[j].Name {
			return icons[i].Name < icons[j].Name
		}
		return rank(icons[i].Variant) < rank(icons[j].Variant)
	})
}
