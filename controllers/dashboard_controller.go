package controllers

import (
	"net/http"

	"homestay-backend/middleware"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
)

const dashboardRecentStays = 10

type DashboardController struct {
	StaySvc  *services.StayService
	GuestSvc *services.GuestService
}

func NewDashboardController(staySvc *services.StayService, guestSvc *services.GuestService) *DashboardController {
	return &DashboardController{StaySvc: staySvc, GuestSvc: guestSvc}
}

// GET / and /customers/
// The main staff screen: all stays (latest check-in first) plus the guest
// book ordered by name.
func (dc *DashboardController) Home(c *gin.Context) {
	propertyID := middleware.PropertyID(c)

	stays, err := dc.StaySvc.List(propertyID)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	guests, err := dc.GuestSvc.List(propertyID)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":  "Homestay Booking Management",
		"stays":  stays,
		"guests": guests,
	})
}

// GET /dashboard/
func (dc *DashboardController) Dashboard(c *gin.Context) {
	propertyID := middleware.PropertyID(c)

	recent, err := dc.StaySvc.Recent(propertyID, dashboardRecentStays)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	totalGuests, err := dc.GuestSvc.Count(propertyID)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	activeStays, err := dc.StaySvc.ActiveCount(propertyID)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title":        "Homestay Booking Management",
		"recent_stays": recent,
		"total_guests": totalGuests,
		"active_stays": activeStays,
	})
}
