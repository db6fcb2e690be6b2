package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/widget/cache"
)

func newTestBase(t *testing.T, s *Schema) (Base, *cache.Cache) {
	t.Helper()

	c := newTestCache()

	return NewBase(Meta{ID: "demo", Name: "Demo"}, s, newTestEngine(t, nil), c), c
}

func TestNewBaseClassName(t *testing.T) {
	t.Parallel()

	b, _ := newTestBase(t, MustSchema())
	assert.Equal(t, "demo", b.Meta().ClassName)

	b = NewBase(Meta{ID: "demo", ClassName: "custom"}, MustSchema(), nil, nil)
	assert.Equal(t, "custom", b.Meta().ClassName)
}

func TestBaseUpdateInvalidates(t *testing.T) {
	t.Parallel()

	b, c := newTestBase(t, MustSchema(Text("title", "Title:", "")))
	rc := RenderContext{WidgetID: "demo-1"}

	b.CacheOutput(rc, "<p>cached</p>")
	require.True(t, b.CachedOutput(rc).IsHit())

	next := b.Update(Submission{"title": "<b>New</b>"}, Instance{}, editor)

	assert.Equal(t, "New", next["title"])
	assert.False(t, c.Get("demo", rc.Scope()).IsHit())
}

func TestBaseUpdateEmptySchemaKeepsCache(t *testing.T) {
	t.Parallel()

	b, c := newTestBase(t, MustSchema())
	rc := RenderContext{WidgetID: "demo-1"}
	previous := Instance{"title": "x"}

	b.CacheOutput(rc, "<p>cached</p>")

	assert.Equal(t, previous, b.Update(Submission{"title": "y"}, previous, editor))
	assert.True(t, c.Get("demo", rc.Scope()).IsHit())
}

func TestBaseCacheScopes(t *testing.T) {
	t.Parallel()

	b, _ := newTestBase(t, MustSchema())
	listing := RenderContext{WidgetID: "demo-1"}
	single := RenderContext{WidgetID: "demo-1", ContentID: 9}

	b.CacheOutput(listing, "<p>listing</p>")

	markup, ok := b.CachedOutput(listing).Markup()
	require.True(t, ok)
	assert.Equal(t, "<p>listing</p>", markup)
	assert.False(t, b.CachedOutput(single).IsHit())
}

func TestBaseSkipCache(t *testing.T) {
	t.Parallel()

	b, c := newTestBase(t, MustSchema())
	rc := RenderContext{WidgetID: "demo-1"}
	other := RenderContext{WidgetID: "demo-2"}

	b.CacheOutput(rc, "<p>old</p>")
	b.CacheOutput(other, "<p>other</p>")

	skip := rc
	skip.SkipCache = true

	res := b.CachedOutput(skip)
	assert.False(t, res.IsHit())
	assert.Equal(t, cache.MissDisabled, res.Reason())

	// other placements keep their entries
	markup, ok := c.Get("demo", other.Scope()).Markup()
	require.True(t, ok)
	assert.Equal(t, "<p>other</p>", markup)

	b.CacheOutput(skip, "<p>fresh</p>")

	markup, ok = c.Get("demo", rc.Scope()).Markup()
	require.True(t, ok)
	assert.Equal(t, "<p>fresh</p>", markup)
}

func TestBaseFlush(t *testing.T) {
	t.Parallel()

	b, _ := newTestBase(t, MustSchema())
	rc := RenderContext{WidgetID: "demo-1"}

	b.CacheOutput(rc, "<p>x</p>")
	b.Flush(context.Background())

	assert.False(t, b.CachedOutput(rc).IsHit())
}

func TestBaseWithoutCache(t *testing.T) {
	t.Parallel()

	b := NewBase(Meta{ID: "demo"}, MustSchema(), newTestEngine(t, nil), nil)
	rc := RenderContext{WidgetID: "demo-1"}

	b.CacheOutput(rc, "<p>x</p>")
	b.Flush(context.Background())
	assert.False(t, b.CachedOutput(rc).IsHit())
}

func TestBaseForm(t *testing.T) {
	t.Parallel()

	b, _ := newTestBase(t, MustSchema(Text("title", "Title:", "Hello")))

	out, err := b.Form(context.Background(), Binding{IDBase: "demo", Number: 1}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `name="widget-demo[1][title]"`)
	assert.Contains(t, string(out), `value="Hello"`)
}
