package models

import (
	"path/filepath"
	"time"
)

// Accepted document types for uploaded guest IDs.
const (
	DocTypeAadhaar        = "aadhaar"
	DocTypePassport       = "passport"
	DocTypeDrivingLicense = "driving_license"
	DocTypeVoterID        = "voter_id"
	DocTypeOther          = "other"
)

// Document is an uploaded guest ID proof, stored on disk under a
// date-partitioned uploads directory and scoped to a property.
type Document struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	PropertyID uint `gorm:"index" json:"property_id"`

	DocumentName string `gorm:"size:200" json:"document_name"`
	DocumentType string `gorm:"size:50;default:other" json:"document_type"`
	FilePath     string `gorm:"size:500" json:"file_path"`
	Notes        string `gorm:"type:text" json:"notes"`

	UploadedAt   time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	UploadedByID *uint     `gorm:"index" json:"uploaded_by_id"`

	Property   Property `gorm:"foreignKey:PropertyID" json:"-"`
	UploadedBy *Admin   `gorm:"foreignKey:UploadedByID" json:"-"`
}

// Filename returns just the stored file name, not the full path.
func (d *Document) Filename() string {
	return filepath.Base(d.FilePath)
}

// ValidDocumentType reports whether t is one of the accepted types.
func ValidDocumentType(t string) bool {
	switch t {
	case DocTypeAadhaar, DocTypePassport, DocTypeDrivingLicense, DocTypeVoterID, DocTypeOther:
		return true
	}
	return false
}
