package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONSuccess writes the standard success envelope. Extra pairs are merged
// into the body next to "success": true.
func JSONSuccess(c *gin.Context, code int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

// JSONFailure writes {"success": false, "message": ...}.
func JSONFailure(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONInvalidRequest is the shared response for a missing required field or
// a wrong HTTP method.
func JSONInvalidRequest(c *gin.Context) {
	JSONFailure(c, http.StatusBadRequest, "Invalid request")
}
