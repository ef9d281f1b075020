package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"homestay-backend/models"
	"homestay-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createStayWithCode(t *testing.T, db *gorm.DB, propertyID uint, expiresAt *time.Time) (models.Stay, models.BookingCode) {
	t.Helper()
	stay := models.Stay{PropertyID: propertyID}
	require.NoError(t, db.Create(&stay).Error)

	codes := services.NewBookingCodeService(db)
	code, err := codes.CreateForStay(stay.ID, expiresAt)
	require.NoError(t, err)
	return stay, code
}

func TestPublicFormUnknownCode(t *testing.T) {
	db, router := setupTestApp(t)
	property := seedProperty(t, db)
	_, code := createStayWithCode(t, db, property.ID, nil)

	req, _ := http.NewRequest(http.MethodGet, "/b/zzzzzzz/", nil)
	w := doRequest(router, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body["status"])

	// the real code's counter must be untouched
	var reloaded models.BookingCode
	require.NoError(t, db.First(&reloaded, code.ID).Error)
	assert.Equal(t, 0, reloaded.AccessedCount)
}

func TestPublicFormExpiredCode(t *testing.T) {
	db, router := setupTestApp(t)
	property := seedProperty(t, db)
	past := time.Now().Add(-time.Hour)
	_, code := createStayWithCode(t, db, property.ID, &past)

	req, _ := http.NewRequest(http.MethodGet, "/b/"+code.Code+"/", nil)
	w := doRequest(router, req)
	assert.Equal(t, http.StatusGone, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "expired", body["status"])
	assert.Equal(t, "This booking link has expired.", body["message"])
}

// The end-to-end flow: a fresh property with no custom rules, one stay, one
// code. The first visit shows the default rules and counts once; the
// submission lands on the stay and reports success.
func TestPublicFormEndToEnd(t *testing.T) {
	db, router := setupTestApp(t)
	property := seedProperty(t, db)
	stay, code := createStayWithCode(t, db, property.ID, nil)

	// GET /b/<code>/
	req, _ := http.NewRequest(http.MethodGet, "/b/"+code.Code+"/", nil)
	w := doRequest(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status     string `json:"status"`
		HouseRules struct {
			Title   string `json:"title"`
			Version int    `json:"version"`
		} `json:"house_rules"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "active", body.Status)
	assert.Equal(t, models.DefaultHouseRulesTitle, body.HouseRules.Title)
	assert.Equal(t, 1, body.HouseRules.Version)

	var reloadedCode models.BookingCode
	require.NoError(t, db.First(&reloadedCode, code.ID).Error)
	assert.Equal(t, 1, reloadedCode.AccessedCount)

	// POST /b/<code>/ with phone 555 and consent checked
	form := url.Values{}
	form.Set("phone_number", "555")
	form.Set("terms_agreed", "on")
	req, _ = http.NewRequest(http.MethodPost, "/b/"+code.Code+"/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = doRequest(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	var submitted map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitted))
	assert.Equal(t, "submitted", submitted["status"])

	var reloadedStay models.Stay
	require.NoError(t, db.First(&reloadedStay, stay.ID).Error)
	assert.Equal(t, "555", reloadedStay.PhoneNumber)
	assert.True(t, reloadedStay.TermsAgreed)
	assert.NotNil(t, reloadedStay.TermsAgreedDatetime)
	assert.True(t, reloadedStay.FormFilled)
	assert.NotNil(t, reloadedStay.FormFilledDatetime)
}

func TestPublicFormSubmitWithoutConsent(t *testing.T) {
	db, router := setupTestApp(t)
	property := seedProperty(t, db)
	stay, code := createStayWithCode(t, db, property.ID, nil)

	form := url.Values{}
	form.Set("phone_number", "777")
	req, _ := http.NewRequest(http.MethodPost, "/b/"+code.Code+"/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := doRequest(router, req)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Stay
	require.NoError(t, db.First(&reloaded, stay.ID).Error)
	assert.False(t, reloaded.TermsAgreed)
	assert.Nil(t, reloaded.TermsAgreedDatetime)
	assert.True(t, reloaded.FormFilled)
}
