package controllers

import (
	"net/http"

	"go-street-kiosk/helpers"
	"go-street-kiosk/models"

	"github.com/gin-gonic/gin"
)

// Login checks the shared dashboard password and hands out a session token.
func (ctl *Controller) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var creds models.Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&creds); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if !helpers.VerifyPassword(*creds.Password, ctl.AdminHash) {
			ctl.logf("dashboard login rejected from %s", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "password is incorrect"})
			return
		}
		token, expiresAt, err := ctl.Tokens.GenerateToken(helpers.AdminRole)
		if err != nil {
			ctl.abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.Session{Token: token, ExpiresAt: expiresAt})
	}
}
