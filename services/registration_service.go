package services

import (
	"fmt"
	"time"

	"homestay-backend/models"

	"gorm.io/gorm"
)

// Form states for the public booking-code flow.
const (
	FormStateActive  = "active"
	FormStateExpired = "expired"
)

// ResolvedForm is what a guest visit to /b/<code>/ resolves to.
type ResolvedForm struct {
	State string
	Code  *models.BookingCode
	Stay  *models.Stay
	Rules *models.HouseRules
}

// FormSubmission carries the guest-submitted fields of the public form.
type FormSubmission struct {
	PhoneNumber string
	Email       string
	ComingFrom  string
	TermsAgreed bool
}

// RegistrationService drives the public guest self-registration flow:
// code resolution, expiry branching, access accounting and form submission.
type RegistrationService struct {
	DB    *gorm.DB
	Codes *BookingCodeService
	Rules *HouseRulesService
}

func NewRegistrationService(db *gorm.DB, codes *BookingCodeService, rules *HouseRulesService) *RegistrationService {
	return &RegistrationService{DB: db, Codes: codes, Rules: rules}
}

// ResolveForm resolves a code for the guest-facing form. Unknown codes
// return ErrCodeNotFound and leave the access counter untouched. Expired
// codes are not an error: the caller gets an expired-state result, also
// without touching the counter. A valid code records the visit and carries
// the stay plus the property's (possibly freshly defaulted) house rules.
func (s *RegistrationService) ResolveForm(code string) (*ResolvedForm, error) {
	bc, err := s.Codes.Resolve(code)
	if err != nil {
		return nil, err
	}

	if !bc.IsValid() {
		return &ResolvedForm{State: FormStateExpired, Code: bc, Stay: &bc.Stay}, nil
	}

	if err := s.Codes.RecordAccess(bc.ID); err != nil {
		return nil, fmt.Errorf("failed to record access: %w", err)
	}

	rules, err := s.Rules.GetOrCreateDefault(bc.Stay.PropertyID)
	if err != nil {
		return nil, err
	}

	return &ResolvedForm{State: FormStateActive, Code: bc, Stay: &bc.Stay, Rules: rules}, nil
}

// SubmitForm applies a guest submission to the stay behind the code. The
// same resolve/validity gates as ResolveForm apply and the visit is counted.
// Contact fields are overwritten from the submission; the consent timestamp
// is stamped only when consent is affirmed; form_filled and its timestamp
// are always set.
func (s *RegistrationService) SubmitForm(code string, sub FormSubmission) (*models.Stay, error) {
	bc, err := s.Codes.Resolve(code)
	if err != nil {
		return nil, err
	}
	if !bc.IsValid() {
		return nil, ErrCodeExpired
	}

	if err := s.Codes.RecordAccess(bc.ID); err != nil {
		return nil, fmt.Errorf("failed to record access: %w", err)
	}

	now := time.Now()
	updates := map[string]interface{}{
		"phone_number":         sub.PhoneNumber,
		"email":                sub.Email,
		"coming_from":          sub.ComingFrom,
		"terms_agreed":         sub.TermsAgreed,
		"form_filled":          true,
		"form_filled_datetime": now,
	}
	if sub.TermsAgreed {
		updates["terms_agreed_datetime"] = now
	}

	if err := s.DB.Model(&models.Stay{}).Where("id = ?", bc.StayID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to save stay: %w", err)
	}

	var stay models.Stay
	if err := s.DB.Preload("Guests").First(&stay, bc.StayID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload stay: %w", err)
	}
	return &stay, nil
}
