package controllers

import (
	"errors"
	"net/http"

	"homestay-backend/services"

	"github.com/gin-gonic/gin"
)

// PublicController serves the unauthenticated /b/<code>/ flow where guests
// fill their own stay record.
type PublicController struct {
	RegSvc *services.RegistrationService
}

func NewPublicController(svc *services.RegistrationService) *PublicController {
	return &PublicController{RegSvc: svc}
}

// GET /b/:code/
// Unknown code → 404. Expired code → 410 with the expired state. A valid
// code counts the visit and returns the stay plus the house rules to show
// above the form.
func (pc *PublicController) ShowGuestForm(c *gin.Context) {
	code := c.Param("code")

	form, err := pc.RegSvc.ResolveForm(code)
	if err != nil {
		if errors.Is(err, services.ErrCodeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "not_found",
				"message": "Invalid booking code. Please contact support.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	if form.State == services.FormStateExpired {
		c.JSON(http.StatusGone, gin.H{
			"status":  "expired",
			"message": "This booking link has expired.",
			"stay":    form.Stay,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "active",
		"code":        code,
		"stay":        form.Stay,
		"house_rules": form.Rules,
	})
}

// POST /b/:code/
// Form: phone_number, email, coming_from, terms_agreed ("on" when checked).
func (pc *PublicController) SubmitGuestForm(c *gin.Context) {
	code := c.Param("code")

	sub := services.FormSubmission{
		PhoneNumber: c.PostForm("phone_number"),
		Email:       c.PostForm("email"),
		ComingFrom:  c.PostForm("coming_from"),
		TermsAgreed: c.PostForm("terms_agreed") == "on",
	}

	stay, err := pc.RegSvc.SubmitForm(code, sub)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "not_found",
				"message": "Invalid booking code. Please contact support.",
			})
		case errors.Is(err, services.ErrCodeExpired):
			c.JSON(http.StatusGone, gin.H{
				"status":  "expired",
				"message": "This booking link has expired.",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "submitted",
		"message": "Thank you! Your details have been recorded.",
		"stay":    stay,
	})
}
