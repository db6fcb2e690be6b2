package models

import "time"

// Role groups capabilities. Users have exactly one role.
type Role struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;size:100;not null"`
	Description string `gorm:"size:255"`
	// IsSystem roles are seeded and cannot be deleted.
	IsSystem  bool `gorm:"default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the gorm table name.
func (Role) TableName() string {
	return "roles"
}
