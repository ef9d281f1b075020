package services

import (
	"errors"
	"fmt"

	"homestay-backend/models"
	"homestay-backend/utils"

	"gorm.io/gorm"
)

// defaultHouseRulesContent is the templated content a property starts with
// until staff edit it.
const defaultHouseRulesContent = `<h3>Check-in & Check-out</h3>
<ul>
<li>Valid government ID is required at check-in</li>
<li>Check-in time is after 2:00 PM</li>
<li>Check-out time is before 11:00 AM</li>
</ul>

<h3>House Policies</h3>
<ul>
<li>No smoking inside the property</li>
<li>Quiet hours after 10:00 PM</li>
<li>Additional guests may incur extra charges</li>
<li>Damage to property will be charged accordingly</li>
</ul>`

// HouseRulesService provisions and versions per-property house rules.
type HouseRulesService struct {
	DB *gorm.DB
}

func NewHouseRulesService(db *gorm.DB) *HouseRulesService {
	return &HouseRulesService{DB: db}
}

// GetOrCreateDefault returns the property's rules, lazily creating the
// default record at version 1 on first access. The unique index on
// property_id settles concurrent first access: the losing writer hits the
// constraint and re-fetches instead of creating a second record.
func (s *HouseRulesService) GetOrCreateDefault(propertyID uint) (*models.HouseRules, error) {
	var rules models.HouseRules
	err := s.DB.Where("property_id = ?", propertyID).First(&rules).Error
	if err == nil {
		return &rules, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load house rules: %w", err)
	}

	rules = models.HouseRules{
		PropertyID: propertyID,
		Title:      models.DefaultHouseRulesTitle,
		Content:    defaultHouseRulesContent,
		Version:    1,
	}
	if createErr := s.DB.Create(&rules).Error; createErr != nil {
		if utils.IsDuplicateKeyError(createErr) {
			// lost the race, someone else created them first
			var won models.HouseRules
			if err := s.DB.Where("property_id = ?", propertyID).First(&won).Error; err != nil {
				return nil, fmt.Errorf("failed to re-fetch house rules: %w", err)
			}
			return &won, nil
		}
		return nil, fmt.Errorf("failed to create default house rules: %w", createErr)
	}
	return &rules, nil
}

// Update replaces title and content, bumps the version by exactly one and
// records the editor, regardless of which fields actually changed.
func (s *HouseRulesService) Update(propertyID uint, title, content string, editorID uint) (*models.HouseRules, error) {
	rules, err := s.GetOrCreateDefault(propertyID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.HouseRules{}).
		Where("id = ?", rules.ID).
		Updates(map[string]interface{}{
			"title":         title,
			"content":       content,
			"version":       gorm.Expr("version + ?", 1),
			"updated_by_id": editorID,
		}).Error; err != nil {
		return nil, fmt.Errorf("failed to update house rules: %w", err)
	}

	var updated models.HouseRules
	if err := s.DB.First(&updated, rules.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload house rules: %w", err)
	}
	return &updated, nil
}
