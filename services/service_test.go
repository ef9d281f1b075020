package services

import (
	"path/filepath"
	"testing"

	"homestay-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database in the test's temp dir and
// migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Property{},
		&models.Admin{},
		&models.HouseRules{},
		&models.Guest{},
		&models.Stay{},
		&models.Document{},
		&models.BookingCode{},
	))
	return db
}

func createTestProperty(t *testing.T, db *gorm.DB) models.Property {
	t.Helper()
	property := models.Property{Name: "Cedar Cottage " + t.Name()}
	require.NoError(t, db.Create(&property).Error)
	return property
}

func createTestPropertyNamed(t *testing.T, db *gorm.DB, name string) models.Property {
	t.Helper()
	property := models.Property{Name: name + " " + t.Name()}
	require.NoError(t, db.Create(&property).Error)
	return property
}

func createTestStay(t *testing.T, db *gorm.DB, propertyID uint) models.Stay {
	t.Helper()
	stay := models.Stay{PropertyID: propertyID}
	require.NoError(t, db.Create(&stay).Error)
	return stay
}
