package routes

import (
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", controllers.GetOrders())
	incomingRoutes.GET("/orders/board", controllers.GetOrdersBoard())
	incomingRoutes.GET("/orders/kitchen", controllers.GetKitchenBoard())
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder())
	incomingRoutes.POST("/orders", controllers.CreateOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", controllers.UpdateOrderStatus())
}
