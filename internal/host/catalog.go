package host

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/db/controller/content"
	"github.com/atik-theme/atik-assistant/internal/db/controller/setting"
	"github.com/atik-theme/atik-assistant/internal/widget"
)

// Catalog lists site content for page and category fields.
type Catalog struct {
	db *gorm.DB
}

var _ widget.Catalog = (*Catalog)(nil)

// NewCatalog creates a catalog reading from db.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// Pages returns published pages sorted by title. The posts page and the
// static front page are left out.
func (c *Catalog) Pages(ctx context.Context) ([]widget.Page, error) {
	db := c.db.WithContext(ctx)

	exclude := make([]uint64, 0, 2) //nolint:mnd

	for _, name := range []string{setting.PageForPosts, setting.PageOnFront} {
		id, err := setting.Uint(db, name)
		if err != nil {
			return nil, fmt.Errorf("read option %s: %w", name, err)
		}

		exclude = append(exclude, id)
	}

	pages, err := content.PublishedPages(db, exclude...)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	out := make([]widget.Page, 0, len(pages))
	for _, p := range pages {
		out = append(out, widget.Page{ID: p.ID, Title: p.Title})
	}

	return out, nil
}

// Categories returns every category sorted by slug.
func (c *Catalog) Categories(ctx context.Context) ([]widget.Category, error) {
	categories, err := content.Categories(c.db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]widget.Category, 0, len(categories))
	for _, cat := range categories {
		out = append(out, widget.Category{
			ID:       cat.ID,
			ParentID: cat.ParentID,
			Name:     cat.Name,
			Slug:     cat.Slug,
			Count:    cat.Count,
		})
	}

	return out, nil
}
