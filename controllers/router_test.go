package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"homestay-backend/config"
	"homestay-backend/controllers"
	"homestay-backend/middleware"
	"homestay-backend/models"
	"homestay-backend/routes"
	"homestay-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp builds the full router over a throwaway sqlite database.
func setupTestApp(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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
	config.DB = db

	codeService := services.NewBookingCodeService(db)
	rulesService := services.NewHouseRulesService(db)
	guestService := services.NewGuestService(db)
	stayService := services.NewStayService(db, codeService)
	documentService := services.NewDocumentService(db, t.TempDir())
	registrationService := services.NewRegistrationService(db, codeService, rulesService)

	router := routes.SetupRouter(
		controllers.NewDashboardController(stayService, guestService),
		controllers.NewGuestController(guestService),
		controllers.NewStayController(stayService),
		controllers.NewDocumentController(documentService),
		controllers.NewHouseRulesController(rulesService),
		controllers.NewBookingCodeController(codeService),
		controllers.NewPublicController(registrationService),
	)
	return db, router
}

func seedProperty(t *testing.T, db *gorm.DB) models.Property {
	t.Helper()
	property := models.Property{Name: "Cedar Cottage " + t.Name()}
	require.NoError(t, db.Create(&property).Error)
	return property
}

func seedAdmin(t *testing.T, db *gorm.DB, propertyID uint) (models.Admin, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.Admin{
		FullName:   "Test Admin",
		Username:   "admin-" + t.Name(),
		Password:   string(hash),
		PropertyID: propertyID,
	}
	require.NoError(t, db.Create(&admin).Error)

	token, err := middleware.IssueToken(admin.ID, admin.PropertyID, time.Hour)
	require.NoError(t, err)
	return admin, token
}

func doRequest(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
