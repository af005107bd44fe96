package generator

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle so callers can reuse or
// override the built-in component layout.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
