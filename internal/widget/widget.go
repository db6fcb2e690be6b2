package widget

import (
	"context"
	"html/template"

	"github.com/atik-theme/atik-assistant/internal/widget/cache"
)

// Meta is what a widget tells the host registry about itself.
type Meta struct {
	ID               string
	Name             string
	Description      string
	ClassName        string
	SelectiveRefresh bool
}

// RenderContext carries the request scoped values of one widget render.
type RenderContext struct {
	// WidgetID is the placement id, for example "atik_widget_category_boxes-2".
	WidgetID string
	// ContentID is the content item being viewed, 0 on listing pages.
	ContentID uint64
	// SkipCache ignores the cached output and overwrites it with the fresh render.
	SkipCache bool

	BeforeWidget template.HTML
	AfterWidget  template.HTML
	BeforeTitle  template.HTML
	AfterTitle   template.HTML
}

// Scope returns the cache scope of the render.
func (rc RenderContext) Scope() cache.Scope {
	return cache.Scope{PlacementID: rc.WidgetID, ContentID: rc.ContentID}
}

// Widget is a placeable content block.
type Widget interface {
	Meta() Meta
	Schema() *Schema
	Form(ctx context.Context, b Binding, inst Instance) (template.HTML, error)
	Update(submitted Submission, previous Instance, actor Actor) Instance
	Render(ctx context.Context, rc RenderContext, inst Instance) (template.HTML, error)
	// Flush drops every cached rendering of the widget type.
	Flush(ctx context.Context)
}

// Base implements the schema and cache plumbing shared by all widgets.
// Concrete widgets embed it and add Render.
type Base struct {
	meta   Meta
	schema *Schema
	engine *Engine
	cache  *cache.Cache
}

// NewBase bundles the parts of a widget. cache may be nil to render
// without caching.
func NewBase(meta Meta, schema *Schema, engine *Engine, c *cache.Cache) Base {
	if meta.ClassName == "" {
		meta.ClassName = meta.ID
	}

	return Base{
		meta:   meta,
		schema: schema,
		engine: engine,
		cache:  c,
	}
}

// Meta returns the registry metadata.
func (b *Base) Meta() Meta { return b.meta }

// Schema returns the settings schema.
func (b *Base) Schema() *Schema { return b.schema }

// Engine returns the settings engine.
func (b *Base) Engine() *Engine { return b.engine }

// Form renders the admin form of one placement.
func (b *Base) Form(ctx context.Context, binding Binding, inst Instance) (template.HTML, error) {
	return b.engine.RenderForm(ctx, binding, b.schema, inst)
}

// Update sanitizes a submission and drops the cached output.
func (b *Base) Update(submitted Submission, previous Instance, actor Actor) Instance {
	if b.schema.Len() == 0 {
		return previous
	}

	next := b.engine.ApplyUpdate(b.schema, submitted, previous, actor)
	b.cache.Invalidate(b.meta.ID)

	return next
}

// Flush drops every cached rendering of the widget type.
func (b *Base) Flush(context.Context) {
	b.cache.Invalidate(b.meta.ID)
}

// CachedOutput looks up markup cached for the render. A SkipCache render
// always misses.
func (b *Base) CachedOutput(rc RenderContext) cache.Result {
	if rc.SkipCache {
		return cache.Miss(cache.MissDisabled)
	}

	return b.cache.Get(b.meta.ID, rc.Scope())
}

// CacheOutput stores markup for the render, replacing any earlier entry.
func (b *Base) CacheOutput(rc RenderContext, markup template.HTML) {
	b.cache.Put(b.meta.ID, rc.Scope(), string(markup))
}
