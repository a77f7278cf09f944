package routes

import (
	controller "github.com/wsmyc/resto-manager-tableau-de-bord-sub000/controllers"

	"github.com/gin-gonic/gin"
)

func NotificationRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/notifications", controller.GetNotifications())
	incomingRoutes.PATCH("/notifications/:notification_id/read", controller.MarkNotificationRead())
	incomingRoutes.POST("/notifications/:notification_id/approve", controller.ApproveNotification())
	incomingRoutes.POST("/notifications/:notification_id/reject", controller.RejectNotification())
}
