package controllers

import (
	"net/http"
	"strings"

	"homestay-backend/middleware"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
)

const guestSearchLimit = 10

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// GET /guests/
func (gc *GuestController) ListGuests(c *gin.Context) {
	guests, err := gc.GuestSvc.List(middleware.PropertyID(c))
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

// GET /guests/search/?q=
func (gc *GuestController) SearchGuests(c *gin.Context) {
	query := c.Query("q")
	guests, err := gc.GuestSvc.Search(middleware.PropertyID(c), query, guestSearchLimit)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	results := make([]gin.H, 0, len(guests))
	for _, g := range guests {
		results = append(results, gin.H{"id": g.ID, "name": g.Name})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// POST /guests/new/
func (gc *GuestController) NewGuest(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		utils.JSONInvalidRequest(c)
		return
	}

	guest, err := gc.GuestSvc.Create(middleware.PropertyID(c), name)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"guest_id":   guest.ID,
		"guest_name": guest.Name,
	})
}
