package routes

import (
	"go-street-kiosk/controllers"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes gin.IRoutes, ctl *controllers.Controller) {
	incomingRoutes.POST("/users/login", ctl.Login())
}
