package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atik-theme/atik-assistant/internal/db/dbtest"
	"github.com/atik-theme/atik-assistant/internal/db/models"
)

func page(title string, status models.ContentStatus) *models.Content {
	return &models.Content{Type: models.ContentPage, Status: status, Title: title}
}

func TestSaveGetDelete(t *testing.T) {
	db := dbtest.New(t)

	c := page("About", models.StatusPublish)
	require.NoError(t, Save(db, c))
	require.NotZero(t, c.ID)

	c.Title = "About us"
	require.NoError(t, Save(db, c))

	got, err := Get(db, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "About us", got.Title)

	assert.ErrorIs(t, Save(db, &models.Content{Title: ""}), ErrTitleEmpty)
	assert.ErrorIs(t, Save(db, &models.Content{ID: 999, Title: "x"}), ErrContentNotFound)

	require.NoError(t, Delete(db, c.ID))
	assert.ErrorIs(t, Delete(db, c.ID), ErrContentNotFound)
}

func TestPublishedPages(t *testing.T) {
	db := dbtest.New(t)

	front := page("Home", models.StatusPublish)
	blog := page("Blog", models.StatusPublish)
	about := page("About", models.StatusPublish)
	draft := page("Draft", models.StatusDraft)
	post := &models.Content{Type: models.ContentPost, Status: models.StatusPublish, Title: "A post"}

	for _, c := range []*models.Content{front, blog, about, draft, post} {
		require.NoError(t, Save(db, c))
	}

	pages, err := PublishedPages(db, front.ID, blog.ID, 0)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "About", pages[0].Title)

	pages, err = PublishedPages(db)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, []string{"About", "Blog", "Home"}, []string{pages[0].Title, pages[1].Title, pages[2].Title})
}

func TestCategories(t *testing.T) {
	db := dbtest.New(t)

	shoes := &models.Category{Name: "Shoes", Slug: "shoes"}
	bags := &models.Category{Name: "Bags", Slug: "bags"}
	require.NoError(t, CreateCategory(db, shoes))
	require.NoError(t, CreateCategory(db, bags))

	for range 2 {
		require.NoError(t, Save(db, &models.Content{
			Type: models.ContentPost, Status: models.StatusPublish, Title: "p", CategoryID: &shoes.ID,
		}))
	}

	require.NoError(t, Save(db, &models.Content{
		Type: models.ContentPost, Status: models.StatusDraft, Title: "d", CategoryID: &bags.ID,
	}))

	cats, err := Categories(db)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "bags", cats[0].Slug)
	assert.Zero(t, cats[0].Count)
	assert.Equal(t, "shoes", cats[1].Slug)
	assert.Equal(t, int64(2), cats[1].Count)
}

func TestList(t *testing.T) {
	db := dbtest.New(t)

	require.NoError(t, Save(db, &models.Content{Type: models.ContentPost, Status: models.StatusDraft, Title: "A post"}))
	require.NoError(t, Save(db, page("Zebra", models.StatusPublish)))
	require.NoError(t, Save(db, page("Apple", models.StatusDraft)))

	items, err := List(db)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "Apple", items[0].Title)
	assert.Equal(t, "Zebra", items[1].Title)
	assert.Equal(t, "A post", items[2].Title)
}
