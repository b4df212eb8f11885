package routes

import (
	"go-street-kiosk/controllers"

	"github.com/gin-gonic/gin"
)

// KioskRoutes are open to customers.
func KioskRoutes(incomingRoutes gin.IRoutes, ctl *controllers.Controller) {
	incomingRoutes.GET("/menu", ctl.GetMenu())
	incomingRoutes.GET("/shop", ctl.GetShopStatus())
	incomingRoutes.POST("/orders", ctl.Checkout())
}

func OrderRoutes(incomingRoutes gin.IRoutes, ctl *controllers.Controller) {
	incomingRoutes.GET("/orders", ctl.GetOrders())
	incomingRoutes.PATCH("/orders/:order_id/fulfill", ctl.FulfillOrder())
	incomingRoutes.DELETE("/orders/:order_id", ctl.DeleteOrder())
	incomingRoutes.GET("/ledgers", ctl.GetLedgers())
}
