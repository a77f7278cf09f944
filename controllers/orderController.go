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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

var fetchBoardOrders = func(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := orderCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var allOrders []models.Order
	if err := cursor.All(ctx, &allOrders); err != nil {
		return nil, err
	}
	return allOrders, nil
}

func orderToView(order models.Order) models.OrderView {
	view := models.OrderView{
		Order_id:      order.Order_id,
		Customer_name: "Client inconnu",
		Table:         "N/A",
		Server_name:   "N/A",
		Items:         len(order.Items),
		Total_amount:  order.Total_amount,
		Status:        helpers.ToUIStatus(order.Status),
		Time:          helpers.FormatOrderTime(order.Created_at),
	}
	if order.Customer_name != nil && *order.Customer_name != "" {
		view.Customer_name = *order.Customer_name
	}
	if order.Table_number != nil {
		view.Table = fmt.Sprintf("%d", *order.Table_number)
	}
	if order.Server_name != nil && *order.Server_name != "" {
		view.Server_name = *order.Server_name
	}
	return view
}

// GetOrdersBoard serves the front-of-house board in UI vocabulary, newest
// first. The board is never empty: a failed or empty read degrades to the
// fixed placeholder set, and only the failure carries an error field.
func GetOrdersBoard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		allOrders, err := fetchBoardOrders(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"orders": helpers.FallbackOrders(), "error": "error occurred while listing orders"})
			return
		}
		if len(allOrders) == 0 {
			// legitimately empty: placeholders, no error
			c.JSON(http.StatusOK, gin.H{"orders": helpers.FallbackOrders()})
			return
		}

		views := make([]models.OrderView, 0, len(allOrders))
		for _, order := range allOrders {
			views = append(views, orderToView(order))
		}
		c.JSON(http.StatusOK, gin.H{"orders": views})
	}
}

// GetKitchenBoard is the kitchen projection: only orders still moving through
// preparation, same canonical status type underneath.
func GetKitchenBoard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{"status": bson.M{"$in": []string{
			models.StatusEnAttente,
			models.StatusConfirmee,
			models.StatusEnPreparation,
			models.StatusPrete,
		}}}
		allOrders, err := fetchBoardOrders(ctx, filter)
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"orders": helpers.FallbackOrders(), "error": "error occurred while listing kitchen orders"})
			return
		}

		views := make([]models.OrderView, 0, len(allOrders))
		for _, order := range allOrders {
			views = append(views, orderToView(order))
		}
		c.JSON(http.StatusOK, gin.H{"orders": views})
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := orderCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []models.Order
		if err := cursor.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var order models.Order
		if err := c.BindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if order.Status == "" {
			order.Status = models.StatusEnAttente
		}
		validationErr := validate.Struct(&order)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		if order.Table_id != nil {
			var table models.Table
			if err := tableCollection.FindOne(ctx, bson.M{"table_id": order.Table_id}).Decode(&table); err != nil {
				msg := fmt.Sprintf("table was not found")
				c.JSON(http.StatusNotFound, gin.H{"error": msg})
				return
			}
			order.Table_number = table.Table_number
		}

		var total float64
		for _, item := range order.Items {
			if item.Unit_price == nil || item.Quantity == nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "order item is missing quantity or unit_price"})
				return
			}
			total += *item.Unit_price * float64(*item.Quantity)
		}
		order.Total_amount = total

		now := time.Now()
		order.ID = primitive.NewObjectID()
		order.Order_id = order.ID.Hex()
		order.Created_at = now
		order.Updated_at = now

		result, err := orderCollection.InsertOne(ctx, order)
		if err != nil {
			msg := fmt.Sprintf("order was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus takes the UI vocabulary and translates it back to the
// stored one. Placeholder rows never hit the backend: the document does not
// exist there, so the caller just keeps its local state.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var req statusUpdateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		backendStatus, ok := helpers.ToBackendStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", req.Status)})
			return
		}

		if helpers.IsFallbackID(orderId) {
			c.JSON(http.StatusOK, gin.H{"skipped": true, "status": req.Status})
			return
		}

		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: backendStatus},
			{Key: "updated_at", Value: time.Now()},
		}}}
		result, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update)
		if err != nil {
			msg := fmt.Sprintf("order status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}

		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err == nil {
			notifyOrderUpdate(order)
		}
		c.JSON(http.StatusOK, result)
	}
}
