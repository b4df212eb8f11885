package routes

import (
	"go-street-kiosk/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes gin.IRoutes, ctl *controllers.Controller) {
	incomingRoutes.PUT("/menu", ctl.ReplaceMenu())
	incomingRoutes.PUT("/menu/items/:name", ctl.SetItemPrice())
	incomingRoutes.DELETE("/menu/items/:name", ctl.DeleteItem())
	incomingRoutes.POST("/menu/items/:name/rename", ctl.RenameItem())
	incomingRoutes.PUT("/menu/sold-out", ctl.ReplaceSoldOut())
	incomingRoutes.POST("/menu/sold-out/:name", ctl.MarkSoldOut())
	incomingRoutes.DELETE("/menu/sold-out/:name", ctl.MarkAvailable())
}

func ConfigRoutes(incomingRoutes gin.IRoutes, ctl *controllers.Controller) {
	incomingRoutes.GET("/config", ctl.GetConfig())
	incomingRoutes.PUT("/config", ctl.UpdateConfig())
}
