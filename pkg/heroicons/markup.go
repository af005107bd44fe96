package heroicons

import (
	"regexp"
	"strings"
)

// Attr is a single attribute on the root <svg> element, preserved in source
// order so generated output stays byte-stable across runs.
type Attr struct {
	Key   string
	Value string
}

// Markup is a sanitized SVG split into the pieces the generator interpolates:
// the root element attributes (class removed, the component injects its own)
// and the raw inner markup.
type Markup struct {
	Attrs []Attr
	Inner string
}

var svgRootPattern = regexp.MustCompile(`(?s)^<svg\b([^>]*?)/?>(?:(.*)</svg>)?$`)

var svgAttrPattern = regexp.MustCompile(`([a-zA-Z_:][-a-zA-Z0-9_:.]*)\s*=\s*"([^"]*)"`)

// Sanitization lowercases attribute names; restore the camel-case spellings
// SVG requires.
var svgAttrCase = map[string]string{
	"viewbox":       "viewBox",
	"clippathunits": "clipPathUnits",
}

// ParseMarkup sanitizes raw SVG content and decomposes it into root
// attributes and inner markup. Content that fails sanitization is rejected
// with ErrInvalidSVG.
func ParseMarkup(raw string) (Markup, error) {
	cleaned, err := SanitizeSVG(raw)
	if err != nil {
		return Markup{}, err
	}

	m := svgRootPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return Markup{}, ErrInvalidSVG
	}

	var attrs []Attr
	for _, pair := range svgAttrPattern.FindAllStringSubmatch(m[1], -1) {
		key := pair[1]
		if canonical, ok := svgAttrCase[strings.ToLower(key)]; ok {
			key = canonical
		}
		// The component owns the class attribute.
		if strings.EqualFold(key, "class") {
			continue
		}
		attrs = append(attrs, Attr{Key: key, Value: pair[2]})
	}

	return Markup{Attrs: attrs, Inner: strings.TrimSpace(m[2])}, nil
}
