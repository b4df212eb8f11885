package routes

import (
	"net/http"

	"go-street-kiosk/controllers"
	"go-street-kiosk/middleware"

	"github.com/gin-gonic/gin"
)

// Register mounts the public routes on the engine and the dashboard routes
// on a group guarded by the authentication middleware. Unmatched paths get
// a JSON 404 without a token check.
func Register(router *gin.Engine, ctl *controllers.Controller) {
	UserRoutes(router, ctl)
	KioskRoutes(router, ctl)

	admin := router.Group("/", middleware.Authentication(ctl.Tokens))
	OrderRoutes(admin, ctl)
	MenuRoutes(admin, ctl)
	ConfigRoutes(admin, ctl)
	ReportRoutes(admin, ctl)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
	})
}
