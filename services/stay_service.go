package services

import (
	"errors"
	"fmt"
	"time"

	"homestay-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// StayCreateInput carries the fields of the staff "new stay" form.
type StayCreateInput struct {
	GuestIDs      []uint
	CheckInDate   string // YYYY-MM-DD
	CheckOutDate  string // optional
	PhoneNumber   string
	Email         string
	ComingFrom    string
	TermsAgreed   bool
	FormFilled    bool
	Notes         string
	CodeExpiresAt *time.Time // optional expiry for the issued booking code
}

// StayService manages stays and issues their booking codes.
type StayService struct {
	DB    *gorm.DB
	Codes *BookingCodeService
}

func NewStayService(db *gorm.DB, codes *BookingCodeService) *StayService {
	return &StayService{DB: db, Codes: codes}
}

// Create builds a stay from the staff form, links the listed guests
// (unknown ids are skipped, matching the management-form contract) and
// issues the stay's booking code.
func (s *StayService) Create(propertyID, createdBy uint, in StayCreateInput) (*models.Stay, *models.BookingCode, error) {
	checkIn, err := time.Parse(dateLayout, in.CheckInDate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid check_in_date format: %w", err)
	}

	var checkOut *datatypes.Date
	if in.CheckOutDate != "" {
		co, err := time.Parse(dateLayout, in.CheckOutDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid check_out_date format: %w", err)
		}
		d := datatypes.Date(co)
		checkOut = &d
	}

	now := time.Now()
	stay := models.Stay{
		PropertyID:   propertyID,
		CheckInDate:  datatypes.Date(checkIn),
		CheckOutDate: checkOut,
		PhoneNumber:  in.PhoneNumber,
		Email:        in.Email,
		ComingFrom:   in.ComingFrom,
		TermsAgreed:  in.TermsAgreed,
		FormFilled:   in.FormFilled,
		Notes:        in.Notes,
		CreatedByID:  &createdBy,
	}
	if in.TermsAgreed {
		stay.TermsAgreedDatetime = &now
	}
	if in.FormFilled {
		stay.FormFilledDatetime = &now
	}

	if err := s.DB.Create(&stay).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create stay: %w", err)
	}

	linked := 0
	for _, guestID := range in.GuestIDs {
		var guest models.Guest
		if err := s.DB.Where("property_id = ?", propertyID).First(&guest, guestID).Error; err != nil {
			continue // unknown guest id, skip
		}
		if err := s.DB.Model(&stay).Association("Guests").Append(&guest); err != nil {
			return nil, nil, fmt.Errorf("failed to link guest %d: %w", guestID, err)
		}
		linked++
	}
	if linked > 0 {
		if err := s.DB.Model(&stay).UpdateColumn("guest_count", linked).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to update guest count: %w", err)
		}
	}

	code, err := s.Codes.CreateForStay(stay.ID, in.CodeExpiresAt)
	if err != nil {
		return nil, nil, err
	}

	return &stay, &code, nil
}

// List returns the property's stays, most recent check-in first.
func (s *StayService) List(propertyID uint) ([]models.Stay, error) {
	var stays []models.Stay
	err := s.DB.
		Preload("Guests").
		Where("property_id = ?", propertyID).
		Order("check_in_date DESC").
		Find(&stays).Error
	if err != nil {
		return nil, err
	}
	return stays, nil
}

// Recent returns the newest stays for the dashboard.
func (s *StayService) Recent(propertyID uint, limit int) ([]models.Stay, error) {
	var stays []models.Stay
	err := s.DB.
		Preload("Guests").
		Where("property_id = ?", propertyID).
		Order("check_in_date DESC").
		Limit(limit).
		Find(&stays).Error
	if err != nil {
		return nil, err
	}
	return stays, nil
}

// ActiveCount counts stays with no check-out date yet.
func (s *StayService) ActiveCount(propertyID uint) (int64, error) {
	var n int64
	err := s.DB.Model(&models.Stay{}).
		Where("property_id = ? AND check_out_date IS NULL", propertyID).
		Count(&n).Error
	return n, err
}

// GetByID fetches one stay with its guests and documents.
func (s *StayService) GetByID(propertyID, id uint) (*models.Stay, error) {
	var stay models.Stay
	err := s.DB.
		Preload("Guests").
		Preload("Documents").
		Where("property_id = ?", propertyID).
		First(&stay, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStayNotFound
		}
		return nil, fmt.Errorf("failed to load stay: %w", err)
	}
	return &stay, nil
}

// Delete removes a stay, its booking code and its join rows. Guests and
// documents themselves survive; they are shared records.
func (s *StayService) Delete(propertyID, id uint) error {
	stay, err := s.GetByID(propertyID, id)
	if err != nil {
		return err
	}
	if err := s.DB.Where("stay_id = ?", stay.ID).Delete(&models.BookingCode{}).Error; err != nil {
		return fmt.Errorf("failed to delete booking code: %w", err)
	}
	if err := s.DB.Model(stay).Association("Guests").Clear(); err != nil {
		return fmt.Errorf("failed to unlink guests: %w", err)
	}
	if err := s.DB.Model(stay).Association("Documents").Clear(); err != nil {
		return fmt.Errorf("failed to unlink documents: %w", err)
	}
	if err := s.DB.Delete(stay).Error; err != nil {
		return fmt.Errorf("failed to delete stay: %w", err)
	}
	return nil
}

// LegacyData flattens a stay into the shape the old /customer/<id>/
// endpoint returned.
func (s *StayService) LegacyData(stay *models.Stay) map[string]interface{} {
	guests := make([]map[string]interface{}, 0, len(stay.Guests))
	for _, g := range stay.Guests {
		guests = append(guests, map[string]interface{}{"id": g.ID, "name": g.Name})
	}

	var checkOut interface{}
	if stay.CheckOutDate != nil {
		checkOut = time.Time(*stay.CheckOutDate).Format(dateLayout)
	}

	return map[string]interface{}{
		"guests":         guests,
		"check_in_date":  time.Time(stay.CheckInDate).Format(dateLayout),
		"check_out_date": checkOut,
		"phone_number":   stay.PhoneNumber,
		"email":          stay.Email,
		"coming_from":    stay.ComingFrom,
		"notes":          stay.Notes,
		"terms_agreed":   stay.TermsAgreed,
		"form_filled":    stay.FormFilled,
	}
}
