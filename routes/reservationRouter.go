package routes

import (
	controller "github.com/wsmyc/resto-manager-tableau-de-bord-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func ReservationRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/reservations", controller.GetReservations())
	incomingRoutes.GET("/reservations/:reservation_id", controller.GetReservation())
	incomingRoutes.POST("/reservations", controller.CreateReservation())
	incomingRoutes.PATCH("/reservations/:reservation_id/status", controller.UpdateReservationStatus())
	incomingRoutes.POST("/reservations/:reservation_id/cancel", controller.CancelReservation())
}
