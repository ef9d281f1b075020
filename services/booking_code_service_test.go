package services

import (
	"testing"
	"time"

	"homestay-backend/models"
	"homestay-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateForStayIssuesSevenCharCode(t *testing.T) {
	db := newTestDB(t)
	property := createTestProperty(t, db)
	stay := createTestStay(t, db, property.ID)

	svc := NewBookingCodeService(db)
	code, err := svc.CreateForStay(stay.ID, nil)
	require.NoError(t, err)

	assert.Len(t, code.Code, utils.BookingCodeLength)
	for _, ch := range code.Code {
		assert.Contains(t, utils.BookingCodeAlphabet, string(ch))
	}
	assert.Equal(t, stay.ID, code.StayID)
	assert.Equal(t, 0, code.AccessedCount)
	assert.Nil(t, code.LastAccessed)
}

func TestCreateForStayRejectsSecondCode(t *testing.T) {
	db := newTestDB(t)
	property := createTestProperty(t, db)
	stay := createTestStay(t, db, property.ID)

	svc := NewBookingCodeService(db)
	_, err := svc.CreateForStay(stay.ID, nil)
	require.NoError(t, err)

	_, err = svc.CreateForStay(stay.ID, nil)
	assert.ErrorIs(t, err, ErrStayHasCode)
}

func TestResolveUnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingCodeService(db)

	_, err := svc.Resolve("zzzzzzz")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestRecordAccessCountsEveryCall(t *testing.T) {
	db := newTestDB(t)
	property := createTestProperty(t, db)
	stay := createTestStay(t, db, property.ID)

	svc := NewBookingCodeService(db)
	code, err := svc.CreateForStay(stay.ID, nil)
	require.NoError(t, err)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, svc.RecordAccess(code.ID))
	}
	after := time.Now()

	var reloaded models.BookingCode
	require.NoError(t, db.First(&reloaded, code.ID).Error)
	assert.Equal(t, n, reloaded.AccessedCount)
	require.NotNil(t, reloaded.LastAccessed)
	assert.WithinDuration(t, after, *reloaded.LastAccessed, 2*time.Second)
}

func TestListByPropertyNewestFirst(t *testing.T) {
	db := newTestDB(t)
	property := createTestProperty(t, db)
	svc := NewBookingCodeService(db)

	first := createTestStay(t, db, property.ID)
	second := createTestStay(t, db, property.ID)

	c1, err := svc.CreateForStay(first.ID, nil)
	require.NoError(t, err)
	// sqlite timestamps have second precision in some modes; force ordering
	require.NoError(t, db.Model(&models.BookingCode{}).Where("id = ?", c1.ID).
		UpdateColumn("created_at", time.Now().Add(-time.Hour)).Error)
	c2, err := svc.CreateForStay(second.ID, nil)
	require.NoError(t, err)

	codes, err := svc.ListByProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.Equal(t, c2.Code, codes[0].Code)
	assert.Equal(t, c1.Code, codes[1].Code)
}
