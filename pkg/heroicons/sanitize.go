package heroicons

import (
	"errors"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// ErrInvalidSVG is returned when fetched or cached content does not survive
// sanitization as a well-formed SVG document.
var ErrInvalidSVG = errors.New("heroicons: content is not valid svg markup")

// SanitizeSVG strips everything outside a conservative SVG element/attribute
// allowlist and verifies an <svg> root remains. Content that sanitizes to
// nothing, or that lost its root element, is rejected rather than cached.
func SanitizeSVG(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidSVG
	}
	cleaned := strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
	if cleaned == "" || !strings.HasPrefix(cleaned, "<svg") || !strings.HasSuffix(cleaned, "</svg>") {
		return "", ErrInvalidSVG
	}
	return cleaned, nil
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		elements := []string{
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use", "clipPath",
		}
		policy.AllowElements(elements...)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "data-slot", "class",
		).OnElements("svg")

		policy.AllowAttrs(
			"href", "xlink:href", "clip-path",
		).OnElements("use")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "fill-rule", "clip-rule",
				"class",
			).OnElements(el)
		}

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs")
		policy.AllowAttrs("id").OnElements("g")

		svgPolicy = policy
	})
	return svgPolicy
}
