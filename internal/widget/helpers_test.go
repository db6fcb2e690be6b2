package widget

import (
	"context"
	"errors"
	"testing"

	"github.com/gofiber/storage/memory/v2"

	"github.com/atik-theme/atik-assistant/internal/cachestore"
	"github.com/atik-theme/atik-assistant/internal/theme"
	"github.com/atik-theme/atik-assistant/internal/widget/cache"
)

var errCatalog = errors.New("catalog down")

type stubCatalog struct {
	pages      []Page
	categories []Category
	err        error
}

func (c stubCatalog) Pages(context.Context) ([]Page, error) {
	return c.pages, c.err
}

func (c stubCatalog) Categories(context.Context) ([]Category, error) {
	return c.categories, c.err
}

// actor holds the capabilities it was created with.
type actor []string

func (a actor) Can(capability string) bool {
	for _, c := range a {
		if c == capability {
			return true
		}
	}

	return false
}

var (
	editor = actor{}
	admin  = actor{CapUnfilteredHTML}
)

func newTestEngine(t *testing.T, catalog Catalog) *Engine {
	t.Helper()

	return NewEngine(theme.NewViews(false), NewRegistry(), catalog)
}

func newTestCache() *cache.Cache {
	return cache.New(cachestore.NewNamespaced(memory.New(), 0))
}
