package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"homestay-backend/middleware"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
)

type StayController struct {
	StaySvc *services.StayService
}

func NewStayController(svc *services.StayService) *StayController {
	return &StayController{StaySvc: svc}
}

// GET /stays/
func (sc *StayController) ListStays(c *gin.Context) {
	stays, err := sc.StaySvc.List(middleware.PropertyID(c))
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"stays": stays})
}

// GET /stays/:id/
func (sc *StayController) StayDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	stay, err := sc.StaySvc.GetByID(middleware.PropertyID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrStayNotFound) {
			utils.JSONFailure(c, http.StatusNotFound, "Stay not found.")
			return
		}
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"stay": stay})
}

// POST /stays/new/
// Form fields mirror the staff booking form: guests[] ids, dates, contact
// fields, terms_agreed/form_filled as "true"/"false", notes.
func (sc *StayController) NewStay(c *gin.Context) {
	checkIn := c.PostForm("check_in_date")
	if checkIn == "" {
		utils.JSONInvalidRequest(c)
		return
	}

	guestIDs := make([]uint, 0)
	for _, raw := range c.PostFormArray("guests[]") {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			continue
		}
		guestIDs = append(guestIDs, uint(id))
	}

	var codeExpiry *time.Time
	if raw := c.PostForm("code_expires_at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONFailure(c, http.StatusBadRequest, "invalid code_expires_at format")
			return
		}
		codeExpiry = &t
	}

	input := services.StayCreateInput{
		GuestIDs:      guestIDs,
		CheckInDate:   checkIn,
		CheckOutDate:  c.PostForm("check_out_date"),
		PhoneNumber:   c.PostForm("phone_number"),
		Email:         c.PostForm("email"),
		ComingFrom:    c.PostForm("coming_from"),
		TermsAgreed:   c.PostForm("terms_agreed") == "true",
		FormFilled:    c.PostForm("form_filled") == "true",
		Notes:         c.PostForm("notes"),
		CodeExpiresAt: codeExpiry,
	}

	stay, code, err := sc.StaySvc.Create(middleware.PropertyID(c), middleware.AdminID(c), input)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"stay_id": stay.ID,
		"code":    code.Code,
		"message": "Stay created successfully",
	})
}

// GET /customer/:id/ (legacy shape)
func (sc *StayController) LegacyStayData(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	stay, err := sc.StaySvc.GetByID(middleware.PropertyID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrStayNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Stay not found."})
			return
		}
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": sc.StaySvc.LegacyData(stay)})
}

// POST /customer/:id/delete/ (legacy endpoint name kept for compatibility)
func (sc *StayController) LegacyDeleteStay(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := sc.StaySvc.Delete(middleware.PropertyID(c), id); err != nil {
		if errors.Is(err, services.ErrStayNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Stay not found."})
			return
		}
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Stay deleted successfully."})
}

func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONInvalidRequest(c)
		return 0, false
	}
	return uint(id), true
}
