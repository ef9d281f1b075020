package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"homestay-backend/models"
	"homestay-backend/utils"

	"gorm.io/gorm"
)

// BookingCodeService owns the lifecycle of guest-facing booking codes:
// generation, lookup and access accounting.
type BookingCodeService struct {
	DB *gorm.DB
}

func NewBookingCodeService(db *gorm.DB) *BookingCodeService {
	return &BookingCodeService{DB: db}
}

// CreateForStay issues the booking code for a stay. Collisions on the
// 58^7 code space are negligible but the column is unique, so a duplicate
// insert re-rolls instead of failing the stay creation.
func (s *BookingCodeService) CreateForStay(stayID uint, expiresAt *time.Time) (models.BookingCode, error) {
	var existing models.BookingCode
	err := s.DB.Where("stay_id = ?", stayID).First(&existing).Error
	if err == nil {
		return models.BookingCode{}, ErrStayHasCode
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.BookingCode{}, fmt.Errorf("failed to check existing booking code: %w", err)
	}

	var bookingCode models.BookingCode
	maxRetries := 5
	var createErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		code, gErr := utils.GenerateBookingCode(utils.BookingCodeLength)
		if gErr != nil {
			return models.BookingCode{}, fmt.Errorf("failed to generate booking code: %w", gErr)
		}

		bookingCode = models.BookingCode{
			Code:      code,
			StayID:    stayID,
			ExpiresAt: expiresAt,
		}

		createErr = s.DB.Create(&bookingCode).Error
		if createErr == nil {
			break
		}
		if utils.IsDuplicateKeyError(createErr) {
			log.Printf("booking code collision (attempt %d) - retrying", attempt+1)
			continue
		}
		return models.BookingCode{}, fmt.Errorf("failed to create booking code: %w", createErr)
	}
	if createErr != nil {
		return models.BookingCode{}, fmt.Errorf("failed to create booking code after retries: %w", createErr)
	}

	return bookingCode, nil
}

// Resolve looks up a code string. Expiry is not checked here: an expired
// code still resolves, the caller decides how to present it.
func (s *BookingCodeService) Resolve(code string) (*models.BookingCode, error) {
	var bc models.BookingCode
	err := s.DB.Preload("Stay").Preload("Stay.Guests").Where("code = ?", code).First(&bc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve booking code: %w", err)
	}
	return &bc, nil
}

// RecordAccess bumps the access counter and stamps last_accessed in a
// single UPDATE. Concurrent guest visits on a shared link are an expected
// case, so this must not be a read-modify-write pair.
func (s *BookingCodeService) RecordAccess(id uint) error {
	now := time.Now()
	return s.DB.Model(&models.BookingCode{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"accessed_count": gorm.Expr("accessed_count + ?", 1),
			"last_accessed":  now,
		}).Error
}

// ListByProperty returns the property's codes, newest first, for the
// management screen.
func (s *BookingCodeService) ListByProperty(propertyID uint) ([]models.BookingCode, error) {
	var codes []models.BookingCode
	err := s.DB.
		Joins("JOIN stays ON stays.id = booking_codes.stay_id").
		Where("stays.property_id = ?", propertyID).
		Order("booking_codes.created_at DESC").
		Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}
