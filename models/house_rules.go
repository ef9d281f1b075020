package models

import "time"

// DefaultHouseRulesTitle is used when a property has no custom rules yet.
const DefaultHouseRulesTitle = "Terms and Conditions"

// HouseRules are shown to guests on the public form before they consent.
// The unique index on PropertyID enforces the one-rules-per-property
// relationship and makes the lazy get-or-create safe under concurrent
// first access: the second writer hits the constraint and re-fetches.
type HouseRules struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"uniqueIndex" json:"property_id"`
	Title      string `gorm:"size:200" json:"title"`
	Content    string `gorm:"type:text" json:"content"`

	// Version increments by one on every staff edit.
	Version int `gorm:"default:1" json:"version"`

	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedByID *uint     `gorm:"index" json:"updated_by_id"`

	Property  Property `gorm:"foreignKey:PropertyID" json:"-"`
	UpdatedBy *Admin   `gorm:"foreignKey:UpdatedByID" json:"-"`
}
