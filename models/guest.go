package models

// Guest stores a guest name scoped to a property. Names are not unique;
// the same person can stay many times.
type Guest struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:200" json:"name"`
	PropertyID uint   `gorm:"index" json:"property_id"`

	Property Property `gorm:"foreignKey:PropertyID" json:"-"`
}
