package middleware

import (
	"net/http"
	"strings"
	"time"

	"homestay-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ctxAdminID    = "admin_id"
	ctxPropertyID = "property_id"
)

// Claims carried by management tokens. The property id is what scopes
// every staff view to the caller's homestay.
type Claims struct {
	AdminID    uint `json:"admin_id"`
	PropertyID uint `json:"property_id"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(utils.EnvOrDefault("JWT_SECRET", "homestay-dev-secret"))
}

// IssueToken signs a management token for an admin of the given property.
func IssueToken(adminID, propertyID uint, ttl time.Duration) (string, error) {
	claims := Claims{
		AdminID:    adminID,
		PropertyID: propertyID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// AuthRequired guards the management surface. On success the admin and
// property ids are placed in the request context for the handlers.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid || claims.AdminID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid or expired token"})
			return
		}

		c.Set(ctxAdminID, claims.AdminID)
		c.Set(ctxPropertyID, claims.PropertyID)
		c.Next()
	}
}

// AdminID returns the authenticated admin's id from the request context.
func AdminID(c *gin.Context) uint {
	if v, ok := c.Get(ctxAdminID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// PropertyID returns the caller's property id from the request context.
func PropertyID(c *gin.Context) uint {
	if v, ok := c.Get(ctxPropertyID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
