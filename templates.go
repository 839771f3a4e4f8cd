package acfgen

import (
	"io/fs"

	"github.com/goliatone/go-acfgen/pkg/scaffold"
)

// ScaffoldTemplates exposes the built-in block templates so callers can
// reuse or extend them without importing the scaffold package directly.
func ScaffoldTemplates() fs.FS {
	return scaffold.TemplatesFS()
}
