package controllers

import (
	"net/http"

	"homestay-backend/middleware"
	"homestay-backend/models"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
)

type HouseRulesController struct {
	RulesSvc *services.HouseRulesService
}

func NewHouseRulesController(svc *services.HouseRulesService) *HouseRulesController {
	return &HouseRulesController{RulesSvc: svc}
}

// GET /house-rules/
// Returns the property's rules, creating the default record on first access.
func (hc *HouseRulesController) GetHouseRules(c *gin.Context) {
	rules, err := hc.RulesSvc.GetOrCreateDefault(middleware.PropertyID(c))
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"house_rules": rules})
}

// POST /house-rules/
// Form: title, content. Every update bumps the version by one and records
// the acting admin as the editor.
func (hc *HouseRulesController) UpdateHouseRules(c *gin.Context) {
	title := c.PostForm("title")
	if title == "" {
		title = models.DefaultHouseRulesTitle
	}
	content := c.PostForm("content")

	rules, err := hc.RulesSvc.Update(middleware.PropertyID(c), title, content, middleware.AdminID(c))
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "House rules updated successfully!",
		"version": rules.Version,
	})
}
