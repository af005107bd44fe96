// Package heroicons models the Heroicons icon set: kebab-case icon names,
// the four published variants (outline, solid, mini, micro), the mapping
// between icon identity and templ component names, upstream asset URLs, and
// the sanitization rules fetched SVG markup must pass before it is accepted
// into the cache or the generated output.
package heroicons
