package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"homestay-backend/controllers"
	"homestay-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public guest flow and the JWT-guarded management
// surface onto one gin engine.
func SetupRouter(
	dash *controllers.DashboardController,
	gc *controllers.GuestController,
	sc *controllers.StayController,
	dc *controllers.DocumentController,
	hc *controllers.HouseRulesController,
	cc *controllers.BookingCodeController,
	pc *controllers.PublicController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public guest form, reached via the shared booking-code URL.
	r.GET("/b/:code/", pc.ShowGuestForm)
	r.POST("/b/:code/", pc.SubmitGuestForm)

	r.POST("/api/auth/login", controllers.Login)

	// Management surface. The auth middleware puts the caller's admin and
	// property ids into the request context; every handler below scopes
	// its queries by that property.
	staff := r.Group("/", middleware.AuthRequired())
	{
		staff.GET("", dash.Home)
		staff.GET("/customers/", dash.Home)
		staff.GET("/dashboard/", dash.Dashboard)

		staff.GET("/guests/", gc.ListGuests)
		staff.GET("/guests/search/", gc.SearchGuests)
		staff.POST("/guests/new/", gc.NewGuest)

		staff.GET("/stays/", sc.ListStays)
		staff.GET("/stays/:id/", sc.StayDetail)
		staff.POST("/stays/new/", sc.NewStay)

		staff.GET("/documents/", dc.ListDocuments)
		staff.POST("/documents/upload/", dc.UploadDocument)

		staff.GET("/house-rules/", hc.GetHouseRules)
		staff.POST("/house-rules/", hc.UpdateHouseRules)

		staff.GET("/codes/", cc.ListCodes)

		// Legacy endpoints kept for compatibility.
		staff.GET("/customer/:id/", sc.LegacyStayData)
		staff.POST("/customer/:id/delete/", sc.LegacyDeleteStay)
	}

	return r
}
