package models

import "time"

// BookingCode is the short token an operator shares with guests so they can
// fill their own stay record. One code per stay.
type BookingCode struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Code   string `gorm:"uniqueIndex;size:7" json:"code"`
	StayID uint   `gorm:"uniqueIndex" json:"stay_id"`

	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     *time.Time `json:"expires_at"`
	AccessedCount int        `gorm:"default:0" json:"accessed_count"`
	LastAccessed  *time.Time `json:"last_accessed"`

	Stay Stay `gorm:"foreignKey:StayID" json:"-"`
}

// IsValid reports whether the code can still be used. A code without an
// expiry never expires; otherwise it is valid strictly before the instant.
func (bc *BookingCode) IsValid() bool {
	if bc.ExpiresAt == nil {
		return true
	}
	return time.Now().Before(*bc.ExpiresAt)
}

// PublicURL returns the guest-facing path for this code.
func (bc *BookingCode) PublicURL() string {
	return "/b/" + bc.Code + "/"
}
