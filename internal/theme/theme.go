package theme

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"
)

const (
	// Extension is the file extension of every template.
	Extension = ".gohtml"

	// sourceDir is used instead of the embedded tree in dev mode.
	sourceDir = "./internal/theme/templates"
)

// NewViews creates the template engine. In dev mode templates are read from
// the source tree and reloaded on every render.
func NewViews(devMode bool) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), Extension)

	if devMode {
		engine = html.New(sourceDir, Extension)
		engine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFuncMap(Funcs())

	return engine
}

// Funcs returns the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"deref": func(p *uint64) uint64 {
			if p == nil {
				return 0
			}

			return *p
		},
		"join":      strings.Join,
		"hasPrefix": strings.HasPrefix,
	}
}
