package models

import "time"

// ContentType distinguishes pages from posts.
type ContentType string

// Content types.
const (
	ContentPage ContentType = "page"
	ContentPost ContentType = "post"
)

// ContentStatus is the publication state.
type ContentStatus string

// Content states.
const (
	StatusPublish ContentStatus = "publish"
	StatusDraft   ContentStatus = "draft"
)

// Content is a page or a post.
type Content struct {
	ID         uint64        `gorm:"primaryKey"`
	Type       ContentType   `gorm:"type:varchar(20);not null;index"`
	Status     ContentStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	Title      string        `gorm:"size:255;not null"`
	Slug       string        `gorm:"size:191;index"`
	Body       string        `gorm:"type:text"`
	CategoryID *uint64       `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the gorm table name.
func (Content) TableName() string {
	return "contents"
}

// Category groups posts. Categories nest through ParentID, 0 is top level.
type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	ParentID    uint64 `gorm:"not null;default:0;index"`
	Name        string `gorm:"size:200;not null"`
	Slug        string `gorm:"size:191;unique;not null"`
	Description string `gorm:"size:255"`
}

// TableName overrides the gorm table name.
func (Category) TableName() string {
	return "categories"
}

// All returns every model for auto migration, parents first.
func All() []any {
	return []any{
		&Role{},
		&Permission{},
		&RolePermission{},
		&User{},
		&Setting{},
		&Category{},
		&Content{},
		&Placement{},
	}
}
