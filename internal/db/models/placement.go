package models

import (
	"strconv"
	"time"
)

// Placement is one instance of a widget type placed into a sidebar. Its
// settings are the JSON encoded stored instance.
type Placement struct {
	ID         uint64 `gorm:"primaryKey"`
	WidgetType string `gorm:"size:100;not null;uniqueIndex:idx_widget_number"`
	// Number is unique per widget type and starts at 1.
	Number    uint64 `gorm:"not null;uniqueIndex:idx_widget_number"`
	Sidebar   string `gorm:"size:100;not null;index"`
	Position  int    `gorm:"not null;default:0"`
	Settings  []byte `gorm:"type:blob"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the gorm table name.
func (Placement) TableName() string {
	return "widget_placements"
}

// WidgetID returns the placement id used in markup and cache keys,
// "<widget type>-<number>".
func (p Placement) WidgetID() string {
	return p.WidgetType + "-" + strconv.FormatUint(p.Number, 10)
}
