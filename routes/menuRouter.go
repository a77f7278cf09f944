package routes

import (
	controller "github.com/wsmyc/resto-manager-tableau-de-bord-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/dishes", controller.GetDishes())
	incomingRoutes.GET("/dishes/:dish_id", controller.GetDish())
	incomingRoutes.POST("/dishes", controller.CreateDish())
	incomingRoutes.PATCH("/dishes/:dish_id", controller.UpdateDish())
	incomingRoutes.POST("/dishes/:dish_id/ingredients", controller.AddDishIngredient())
	incomingRoutes.GET("/dishes/:dish_id/cost", controller.GetDishCost())
	incomingRoutes.POST("/cost/estimate", controller.EstimateCost())
}
