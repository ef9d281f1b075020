package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin is a staff account. Each admin belongs to one property; the
// property id travels in the auth token and scopes every management view.
type Admin struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	FullName   string         `gorm:"size:255" json:"full_name"`
	Username   string         `gorm:"uniqueIndex;size:150" json:"username"`
	Password   string         `gorm:"size:255" json:"-"` // bcrypt hash, never returned
	PropertyID uint           `gorm:"index" json:"property_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
}
