package controllers

import (
	"net/http"

	"homestay-backend/middleware"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingCodeController struct {
	CodeSvc *services.BookingCodeService
}

func NewBookingCodeController(svc *services.BookingCodeService) *BookingCodeController {
	return &BookingCodeController{CodeSvc: svc}
}

// GET /codes/
// Management view over issued booking codes, newest first, with the public
// URL and access audit fields.
func (bc *BookingCodeController) ListCodes(c *gin.Context) {
	codes, err := bc.CodeSvc.ListByProperty(middleware.PropertyID(c))
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	out := make([]gin.H, 0, len(codes))
	for i := range codes {
		out = append(out, gin.H{
			"id":             codes[i].ID,
			"code":           codes[i].Code,
			"stay_id":        codes[i].StayID,
			"url":            codes[i].PublicURL(),
			"created_at":     codes[i].CreatedAt,
			"expires_at":     codes[i].ExpiresAt,
			"accessed_count": codes[i].AccessedCount,
			"last_accessed":  codes[i].LastAccessed,
		})
	}
	c.JSON(http.StatusOK, gin.H{"codes": out})
}
