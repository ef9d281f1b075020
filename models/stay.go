package models

import (
	"time"

	"gorm.io/datatypes"
)

// Stay is a reservation record: one or more guests, a date range, contact
// details and the consent/form flags filled in either by staff or by the
// guest through the public booking-code form.
type Stay struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PropertyID uint `gorm:"index" json:"property_id"`

	Guests     []Guest    `gorm:"many2many:stay_guests" json:"guests,omitempty"`
	GuestCount int        `gorm:"default:1" json:"guest_count"`
	Documents  []Document `gorm:"many2many:stay_documents" json:"documents,omitempty"`

	CheckInDate  datatypes.Date  `json:"check_in_date"`
	CheckOutDate *datatypes.Date `json:"check_out_date"`

	PhoneNumber string `gorm:"size:15" json:"phone_number"`
	Email       string `gorm:"size:150" json:"email"`
	ComingFrom  string `gorm:"size:200" json:"coming_from"`

	TermsAgreed         bool       `gorm:"default:false" json:"terms_agreed"`
	TermsAgreedDatetime *time.Time `json:"terms_agreed_datetime"`
	FormFilled          bool       `gorm:"default:false" json:"form_filled"`
	FormFilledDatetime  *time.Time `json:"form_filled_datetime"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	CreatedByID *uint     `gorm:"index" json:"created_by_id"`

	Property  Property `gorm:"foreignKey:PropertyID" json:"-"`
	CreatedBy *Admin   `gorm:"foreignKey:CreatedByID" json:"-"`
}
