package services

import (
	"errors"
	"fmt"
	"strings"

	"homestay-backend/models"

	"gorm.io/gorm"
)

// GuestService manages the per-property guest name book.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// Create adds a guest name under the property. Names are not unique.
func (s *GuestService) Create(propertyID uint, name string) (*models.Guest, error) {
	guest := models.Guest{Name: name, PropertyID: propertyID}
	if err := s.DB.Create(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// List returns the property's guests ordered by name.
func (s *GuestService) List(propertyID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.
		Where("property_id = ?", propertyID).
		Order("name ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

// Search does a case-insensitive substring match on guest names, capped at
// limit results, ordered by name as the tie-break.
func (s *GuestService) Search(propertyID uint, query string, limit int) ([]models.Guest, error) {
	var guests []models.Guest
	q := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	err := s.DB.
		Where("property_id = ? AND LOWER(name) LIKE ?", propertyID, q).
		Order("name ASC").
		Limit(limit).
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

// GetByID fetches one guest scoped to the property.
func (s *GuestService) GetByID(propertyID, id uint) (*models.Guest, error) {
	var guest models.Guest
	err := s.DB.Where("property_id = ?", propertyID).First(&guest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to load guest: %w", err)
	}
	return &guest, nil
}

// Count returns the property's total guest count for the dashboard.
func (s *GuestService) Count(propertyID uint) (int64, error) {
	var n int64
	err := s.DB.Model(&models.Guest{}).Where("property_id = ?", propertyID).Count(&n).Error
	return n, err
}
