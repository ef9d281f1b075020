package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"homestay-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentService stores uploaded guest ID documents on disk under a
// date-partitioned directory and records them per property.
type DocumentService struct {
	DB      *gorm.DB
	BaseDir string // e.g. "./uploads"
}

func NewDocumentService(db *gorm.DB, baseDir string) *DocumentService {
	return &DocumentService{DB: db, BaseDir: baseDir}
}

// Store streams the uploaded file to
// <base>/guest_docs/YYYY/MM/DD/<uuid>_<name> and creates the record.
// No deduplication or integrity check is performed.
func (s *DocumentService) Store(propertyID, uploadedBy uint, src io.Reader, originalName, documentName, documentType, notes string) (*models.Document, error) {
	if documentType == "" || !models.ValidDocumentType(documentType) {
		documentType = models.DocTypeOther
	}

	now := time.Now()
	dir := filepath.Join(s.BaseDir, "guest_docs", now.Format("2006/01/02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}

	stored := uuid.NewString() + "_" + sanitizeFilename(originalName)
	fullPath := filepath.Join(dir, stored)

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	doc := models.Document{
		PropertyID:   propertyID,
		DocumentName: documentName,
		DocumentType: documentType,
		FilePath:     fullPath,
		Notes:        notes,
		UploadedByID: &uploadedBy,
	}
	if err := s.DB.Create(&doc).Error; err != nil {
		os.Remove(fullPath)
		return nil, err
	}
	return &doc, nil
}

// List returns the property's documents, newest upload first.
func (s *DocumentService) List(propertyID uint) ([]models.Document, error) {
	var docs []models.Document
	err := s.DB.
		Where("property_id = ?", propertyID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// sanitizeFilename keeps the original name readable while stripping path
// separators and whitespace.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "document"
	}
	return name
}
