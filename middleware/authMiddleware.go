package middleware

import (
	"net/http"

	"go-street-kiosk/helpers"

	"github.com/gin-gonic/gin"
)

// ClaimsKey holds the *helpers.SignedDetails of an authenticated request.
const ClaimsKey = "claims"

// Authentication guards the owner dashboard routes. The token travels in
// the "token" header.
func Authentication(tokens *helpers.TokenHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("token")
		if clientToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token header provided"})
			return
		}
		claims, err := tokens.ValidateToken(clientToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		if claims.Role != helpers.AdminRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
