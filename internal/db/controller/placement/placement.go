// Package placement stores widget placements and their settings.
package placement

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/db/models"
)

var (
	// ErrPlacementNotFound is returned when a placement does not exist.
	ErrPlacementNotFound = errors.New("widget placement not found")
	// ErrWidgetTypeEmpty is returned when creating a placement without type.
	ErrWidgetTypeEmpty = errors.New("widget type cannot be empty")
	// ErrSidebarEmpty is returned when creating a placement without sidebar.
	ErrSidebarEmpty = errors.New("sidebar cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create appends a placement of widgetType to the end of sidebar. The
// placement number is the next free number of the type.
func Create(db *gorm.DB, widgetType, sidebar string, settings []byte) (*models.Placement, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if widgetType == "" {
		return nil, ErrWidgetTypeEmpty
	}

	if sidebar == "" {
		return nil, ErrSidebarEmpty
	}

	p := &models.Placement{
		WidgetType: widgetType,
		Sidebar:    sidebar,
		Settings:   settings,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var maxNumber, maxPosition struct{ Value int64 }

		if err := tx.Model(&models.Placement{}).
			Select("COALESCE(MAX(number), 0) AS value").
			Where("widget_type = ?", widgetType).
			Scan(&maxNumber).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Placement{}).
			Select("COALESCE(MAX(position), -1) AS value").
			Where("sidebar = ?", sidebar).
			Scan(&maxPosition).Error; err != nil {
			return err
		}

		p.Number = uint64(maxNumber.Value) + 1 //nolint:gosec
		p.Position = int(maxPosition.Value) + 1

		return tx.Create(p).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create placement: %w", err)
	}

	return p, nil
}

// Get retrieves a placement by id.
func Get(db *gorm.DB, id uint64) (*models.Placement, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var p models.Placement
	if err := db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlacementNotFound
		}

		return nil, err
	}

	return &p, nil
}

// List returns every placement, by sidebar and position.
func List(db *gorm.DB) ([]models.Placement, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out []models.Placement
	if err := db.Order("sidebar, position, id").Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// ListBySidebar returns the placements of sidebar in display order.
func ListBySidebar(db *gorm.DB, sidebar string) ([]models.Placement, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out []models.Placement
	if err := db.Where("sidebar = ?", sidebar).Order("position, id").Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// SaveSettings replaces the stored instance of a placement.
func SaveSettings(db *gorm.DB, id uint64, settings []byte) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Placement{}).Where("id = ?", id).Update("settings", settings)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPlacementNotFound
	}

	return nil
}

// Delete removes a placement.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Placement{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPlacementNotFound
	}

	return nil
}
