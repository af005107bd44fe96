package icongen

import (
	"io/fs"

	"github.com/goliatone/go-icongen/pkg/generator"
)

// EmbeddedTemplates exposes the built-in component templates so callers can
// reuse or extend them without importing the generator package directly.
func EmbeddedTemplates() fs.FS {
	return generator.TemplatesFS()
}
