package theme

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed templates
var embeddedTemplates embed.FS //nolint:gochecknoglobals

// templateEmbedFS serves the 'templates' directory as the root of the tree.
type templateEmbedFS struct {
	content embed.FS
}

// Open opens the named file from the 'templates' directory.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join("templates", name))
}
