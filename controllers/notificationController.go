package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/database"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/helpers"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var notificationCollection *mongo.Collection = database.OpenCollection(database.Client, "notification")

const notificationFetchLimit = 50

// GetNotifications returns the manager inbox: newest first, capped, with the
// derived action_required flag and the distinct type list the tabs are built
// from. ?type= narrows to one type ("all" and empty mean everything).
func GetNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{"user_role": "MANAGER"}
		typeFilter := c.Query("type")
		if typeFilter != "" && typeFilter != "all" {
			filter["type"] = typeFilter
		}

		opts := options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(notificationFetchLimit)
		cursor, err := notificationCollection.Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing notifications"})
			return
		}
		var notifications []models.Notification
		if err := cursor.All(ctx, &notifications); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		views := make([]models.NotificationView, 0, len(notifications))
		for _, n := range notifications {
			views = append(views, helpers.NotificationToView(n))
		}

		// the tab list comes from the whole inbox, not the filtered batch,
		// so narrowing to one type keeps every tab visible
		types := helpers.DistinctTypes(notifications)
		if raw, err := notificationCollection.Distinct(ctx, "type", bson.M{"user_role": "MANAGER"}); err == nil {
			all := make([]string, 0, len(raw))
			for _, v := range raw {
				if s, ok := v.(string); ok {
					all = append(all, s)
				}
			}
			types = all
		}
		c.JSON(http.StatusOK, gin.H{
			"notifications": views,
			"types":         append([]string{"all"}, types...),
		})
	}
}

func MarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		notificationId := c.Param("notification_id")

		now := time.Now()
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_read", Value: true},
			{Key: "read_at", Value: now},
		}}}
		result, err := notificationCollection.UpdateOne(ctx, bson.M{"notification_id": notificationId}, update)
		if err != nil {
			msg := fmt.Sprintf("notification update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ApproveNotification and RejectNotification resolve an actionable
// notification: read, no longer action-requiring, stamped with the decision.
func ApproveNotification() gin.HandlerFunc {
	return resolveNotification(true)
}

func RejectNotification() gin.HandlerFunc {
	return resolveNotification(false)
}

func resolveNotification(accepted bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		notificationId := c.Param("notification_id")

		var notification models.Notification
		if err := notificationCollection.FindOne(ctx, bson.M{"notification_id": notificationId}).Decode(&notification); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification was not found"})
			return
		}

		status := models.NotificationStatusRefused
		if accepted {
			status = models.NotificationStatusAccepted
		}
		now := time.Now()
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_read", Value: true},
			{Key: "read_at", Value: now},
			{Key: "status", Value: status},
			{Key: "processed_at", Value: now},
		}}}
		result, err := notificationCollection.UpdateOne(ctx, bson.M{"notification_id": notificationId}, update)
		if err != nil {
			msg := fmt.Sprintf("notification update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		// a decided cancellation request also moves the reservation
		if accepted && notification.Type == models.NotificationTypeCancellationRequest && notification.Reservation_id != nil {
			resUpdate := bson.D{{Key: "$set", Value: bson.D{
				{Key: "status", Value: models.ReservationStatusAnnulee},
				{Key: "updated_at", Value: now},
			}}}
			if _, err := reservationCollection.UpdateOne(ctx, bson.M{"reservation_id": *notification.Reservation_id}, resUpdate); err != nil {
				c.JSON(http.StatusOK, gin.H{
					"message": helpers.ConfirmationMessage(notification.Type, accepted),
					"warning": "reservation was not updated",
					"result":  result,
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": helpers.ConfirmationMessage(notification.Type, accepted),
			"result":  result,
		})
	}
}
