// Package setting stores named option blobs.
package setting

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/db/models"
)

// Well known option names.
const (
	PageForPosts = "page_for_posts"
	PageOnFront  = "page_on_front"
	ActiveTheme  = "theme"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned for an empty setting name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

func check(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	return nil
}

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	var setting models.Setting

	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings ordered by name.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting

	if err := db.Order("name").Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// Set creates or updates a setting by name.
func Set(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	if err := check(db, name); err != nil {
		return nil, err
	}

	setting, err := Get(db, name)

	switch {
	case errors.Is(err, ErrSettingNotFound):
		setting = &models.Setting{Name: name, Value: value}
		if err = db.Create(setting).Error; err != nil {
			return nil, err
		}

		return setting, nil
	case err != nil:
		return nil, err
	}

	setting.Value = value
	if err = db.Save(setting).Error; err != nil {
		return nil, err
	}

	return setting, nil
}

// DeleteByName deletes a setting by name.
func DeleteByName(db *gorm.DB, name string) error {
	if err := check(db, name); err != nil {
		return err
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

// String returns the option as text, or def when it is not set.
func String(db *gorm.DB, name, def string) (string, error) {
	setting, err := Get(db, name)
	if errors.Is(err, ErrSettingNotFound) {
		return def, nil
	}

	if err != nil {
		return def, err
	}

	return string(setting.Value), nil
}

// SetString stores a text option.
func SetString(db *gorm.DB, name, value string) error {
	_, err := Set(db, name, []byte(value))
	return err
}

// Uint returns a numeric option such as a page id. Unset or malformed
// options read as 0.
func Uint(db *gorm.DB, name string) (uint64, error) {
	s, err := String(db, name, "")
	if err != nil || s == "" {
		return 0, err
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, nil //nolint:nilerr
	}

	return n, nil
}
