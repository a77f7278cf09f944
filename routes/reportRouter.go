package routes

import (
	controller "github.com/wsmyc/resto-manager-tableau-de-bord-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/reports/stock", controller.GetStockReport())
	incomingRoutes.GET("/reports/stock/pdf", controller.ExportStockReportPDF())
	incomingRoutes.GET("/reports/sales/:startDate/:endDate", controller.GetSalesReport())
}
