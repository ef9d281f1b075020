package models

import "time"

// Property represents one homestay. All guests, stays, documents and house
// rules hang off a property, and every staff account belongs to exactly one.
type Property struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;uniqueIndex" json:"name"`
	Address     string    `gorm:"type:text" json:"address"`
	LocationURL string    `gorm:"size:255" json:"location_url"`
	Phone       string    `gorm:"size:15" json:"phone"`
	Email       string    `gorm:"size:150" json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}
