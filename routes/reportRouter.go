package routes

import (
	"go-street-kiosk/controllers"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(incomingRoutes gin.IRoutes, ctl *controllers.Controller) {
	incomingRoutes.GET("/reports/sales", ctl.GetSalesReport())
	incomingRoutes.GET("/reports/export/json", ctl.ExportJSON())
	incomingRoutes.GET("/reports/export/html", ctl.ExportHTML())
}
