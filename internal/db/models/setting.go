// Package models contains database model definitions.
package models

// Setting is a named option blob, e.g. page_on_front or the active theme.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique;size:191"`
	Value []byte `gorm:"type:blob"`
}
