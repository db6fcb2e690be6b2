package widget

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// CapUnfilteredHTML lets an actor store textarea markup verbatim.
const CapUnfilteredHTML = "unfiltered_html"

// Actor is the user applying a settings update.
type Actor interface {
	Can(capability string) bool
}

// Page is a selectable page for page fields.
type Page struct {
	ID    uint64
	Title string
}

// Category is a selectable category for category fields.
type Category struct {
	ID       uint64
	ParentID uint64
	Name     string
	Slug     string
	Count    int64
}

// Catalog supplies the host content listed by page and category fields.
type Catalog interface {
	// Pages returns published pages sorted by title, without the posts page
	// and the front page.
	Pages(ctx context.Context) ([]Page, error)
	// Categories returns all categories sorted by slug.
	Categories(ctx context.Context) ([]Category, error)
}

// Engine renders settings forms and applies submitted updates.
type Engine struct {
	views    fiber.Views
	registry *Registry
	catalog  Catalog
}

// NewEngine creates an engine. views must provide the fields/<kind>
// templates; catalog may be nil when no widget uses page or category fields.
func NewEngine(views fiber.Views, registry *Registry, catalog Catalog) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}

	return &Engine{
		views:    views,
		registry: registry,
		catalog:  catalog,
	}
}

// Registry returns the extension registry of the engine.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Views returns the template engine used for fields.
func (e *Engine) Views() fiber.Views {
	return e.views
}
