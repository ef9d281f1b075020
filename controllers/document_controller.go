package controllers

import (
	"net/http"

	"homestay-backend/middleware"
	"homestay-backend/services"
	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	DocSvc *services.DocumentService
}

func NewDocumentController(svc *services.DocumentService) *DocumentController {
	return &DocumentController{DocSvc: svc}
}

// GET /documents/
func (dc *DocumentController) ListDocuments(c *gin.Context) {
	docs, err := dc.DocSvc.List(middleware.PropertyID(c))
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// POST /documents/upload/
// Multipart: file + document_name, document_type, notes.
func (dc *DocumentController) UploadDocument(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.JSONInvalidRequest(c)
		return
	}
	defer file.Close()

	doc, err := dc.DocSvc.Store(
		middleware.PropertyID(c),
		middleware.AdminID(c),
		file,
		header.Filename,
		c.PostForm("document_name"),
		c.PostForm("document_type"),
		c.PostForm("notes"),
	)
	if err != nil {
		utils.JSONFailure(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"doc_id":        doc.ID,
		"document_name": doc.DocumentName,
		"filename":      doc.Filename(),
	})
}
