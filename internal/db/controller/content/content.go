// Package content stores pages, posts and categories.
package content

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/db/models"
)

var (
	// ErrContentNotFound is returned when a content item does not exist.
	ErrContentNotFound = errors.New("content not found")
	// ErrTitleEmpty is returned when saving content without title.
	ErrTitleEmpty = errors.New("content title cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// CategoryCount is a category with the number of published posts in it.
type CategoryCount struct {
	models.Category
	Count int64
}

// Get retrieves a content item by id.
func Get(db *gorm.DB, id uint64) (*models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var c models.Content
	if err := db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}

		return nil, err
	}

	return &c, nil
}

// Save creates c when its id is 0 and updates it otherwise.
func Save(db *gorm.DB, c *models.Content) error {
	if db == nil {
		return ErrDBNil
	}

	if c.Title == "" {
		return ErrTitleEmpty
	}

	if c.ID != 0 {
		if _, err := Get(db, c.ID); err != nil {
			return err
		}
	}

	if err := db.Save(c).Error; err != nil {
		return fmt.Errorf("save content %d: %w", c.ID, err)
	}

	return nil
}

// Delete removes a content item.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Content{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}

	return nil
}

// List returns every content item, pages first, by title.
func List(db *gorm.DB) ([]models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out []models.Content
	if err := db.Order("type, title, id").Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// PublishedPages lists published pages sorted by title, leaving out the
// given ids.
func PublishedPages(db *gorm.DB, exclude ...uint64) ([]models.Content, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	q := db.Where("type = ? AND status = ?", models.ContentPage, models.StatusPublish)

	ids := make([]uint64, 0, len(exclude))
	for _, id := range exclude {
		if id != 0 {
			ids = append(ids, id)
		}
	}

	if len(ids) > 0 {
		q = q.Where("id NOT IN ?", ids)
	}

	var pages []models.Content
	if err := q.Order("title, id").Find(&pages).Error; err != nil {
		return nil, err
	}

	return pages, nil
}

// Categories lists every category sorted by slug with its published post
// count.
func Categories(db *gorm.DB) ([]CategoryCount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var categories []models.Category
	if err := db.Order("slug").Find(&categories).Error; err != nil {
		return nil, err
	}

	var counts []struct {
		CategoryID uint64
		Total      int64
	}

	if err := db.Model(&models.Content{}).
		Select("category_id, COUNT(*) AS total").
		Where("type = ? AND status = ? AND category_id IS NOT NULL", models.ContentPost, models.StatusPublish).
		Group("category_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint64]int64, len(counts))
	for _, c := range counts {
		byID[c.CategoryID] = c.Total
	}

	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryCount{Category: c, Count: byID[c.ID]})
	}

	return out, nil
}

// CreateCategory stores a new category.
func CreateCategory(db *gorm.DB, c *models.Category) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Create(c).Error
}
