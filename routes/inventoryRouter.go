package routes

import (
	controller "github.com/wsmyc/resto-manager-tableau-de-bord-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func InventoryRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/ingredients", controller.GetIngredients())
	incomingRoutes.GET("/ingredients/lowstock", controller.GetLowStockIngredients())
	incomingRoutes.GET("/ingredients/:ingredient_id", controller.GetIngredient())
	incomingRoutes.POST("/ingredients", controller.CreateIngredient())
	incomingRoutes.POST("/ingredients/:ingredient_id/restock", controller.RestockIngredient())
}
