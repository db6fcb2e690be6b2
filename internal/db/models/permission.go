package models

import "time"

// Permission is a capability in resource.action form, e.g. "widgets.manage".
// The unrestricted markup capability is "unfiltered_html".
type Permission struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"unique;size:100;not null"`
	Resource    string `gorm:"size:100;not null"`
	Action      string `gorm:"size:50;not null"`
	Description string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the gorm table name.
func (Permission) TableName() string {
	return "permissions"
}
