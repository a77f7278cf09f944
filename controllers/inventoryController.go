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
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ingredientCollection *mongo.Collection = database.OpenCollection(database.Client, "ingredient")

var validate = validator.New()

type batchView struct {
	Batch_id       string    `json:"batch_id"`
	Amount         float64   `json:"amount"`
	Order_date     time.Time `json:"order_date"`
	Expiry_date    time.Time `json:"expiry_date"`
	Days_to_expiry int       `json:"days_to_expiry"`
	Expiry_status  string    `json:"expiry_status"`
}

type ingredientView struct {
	Ingredient_id  string      `json:"ingredient_id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Unit           string      `json:"unit"`
	Price_per_unit float64     `json:"price_per_unit"`
	Current_stock  float64     `json:"current_stock"`
	Min_level      float64     `json:"min_level"`
	Max_level      float64     `json:"max_level"`
	Total_value    float64     `json:"total_value"`
	Stock_status   string      `json:"stock_status"`
	Last_restocked *time.Time  `json:"last_restocked"`
	Batches        []batchView `json:"batches"`
}

func ingredientToView(ingredient models.IngredientStock, today time.Time) ingredientView {
	view := ingredientView{
		Ingredient_id:  ingredient.Ingredient_id,
		Category:       ingredient.Category,
		Price_per_unit: ingredient.Price_per_unit,
		Current_stock:  helpers.CurrentStock(ingredient.Batches),
		Min_level:      ingredient.Min_level,
		Max_level:      ingredient.Max_level,
		Last_restocked: helpers.LastRestocked(ingredient.Batches),
		Batches:        make([]batchView, 0, len(ingredient.Batches)),
	}
	if ingredient.Name != nil {
		view.Name = *ingredient.Name
	}
	if ingredient.Unit != nil {
		view.Unit = *ingredient.Unit
	}
	view.Total_value = view.Current_stock * ingredient.Price_per_unit
	view.Stock_status = helpers.StockLevelStatus(view.Current_stock, ingredient.Min_level, ingredient.Max_level)
	for _, batch := range ingredient.Batches {
		view.Batches = append(view.Batches, batchView{
			Batch_id:       batch.Batch_id,
			Amount:         batch.Amount,
			Order_date:     batch.Order_date,
			Expiry_date:    batch.Expiry_date,
			Days_to_expiry: helpers.DaysToExpiry(batch.Expiry_date, today),
			Expiry_status:  helpers.BatchExpiryStatus(batch.Expiry_date, today),
		})
	}
	return view
}

func GetIngredients() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := ingredientCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing ingredients"})
			return
		}
		var allIngredients []models.IngredientStock
		if err := cursor.All(ctx, &allIngredients); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		today := time.Now()
		views := make([]ingredientView, 0, len(allIngredients))
		for _, ingredient := range allIngredients {
			views = append(views, ingredientToView(ingredient, today))
		}
		c.JSON(http.StatusOK, views)
	}
}

func GetIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		ingredientId := c.Param("ingredient_id")

		var ingredient models.IngredientStock
		err := ingredientCollection.FindOne(ctx, bson.M{"ingredient_id": ingredientId}).Decode(&ingredient)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient was not found"})
			return
		}
		c.JSON(http.StatusOK, ingredientToView(ingredient, time.Now()))
	}
}

func CreateIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var ingredient models.IngredientStock
		if err := c.BindJSON(&ingredient); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&ingredient)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if ingredient.Max_level <= ingredient.Min_level {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_level must be greater than min_level"})
			return
		}
		// category is stored once at create time; it is never re-derived
		if ingredient.Category == "" {
			ingredient.Category = helpers.InferCategory(*ingredient.Name)
		}

		now := time.Now()
		ingredient.ID = primitive.NewObjectID()
		ingredient.Ingredient_id = ingredient.ID.Hex()
		for i := range ingredient.Batches {
			if ingredient.Batches[i].Batch_id == "" {
				ingredient.Batches[i].Batch_id = primitive.NewObjectID().Hex()
			}
		}
		ingredient.Current_stock = helpers.CurrentStock(ingredient.Batches)
		ingredient.Total_value = ingredient.Current_stock * ingredient.Price_per_unit
		ingredient.Last_restocked = helpers.LastRestocked(ingredient.Batches)
		ingredient.Created_at = now
		ingredient.Updated_at = now

		result, err := ingredientCollection.InsertOne(ctx, ingredient)
		if err != nil {
			msg := fmt.Sprintf("ingredient was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

type restockRequest struct {
	Amount float64 `json:"amount"`
}

// RestockIngredient appends a new batch dated today and persists the
// recomputed aggregates. Batches are never removed here, expired stock only
// ages out through the derived status.
func RestockIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		ingredientId := c.Param("ingredient_id")

		var req restockRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var ingredient models.IngredientStock
		err := ingredientCollection.FindOne(ctx, bson.M{"ingredient_id": ingredientId}).Decode(&ingredient)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient was not found"})
			return
		}

		currentStock := helpers.CurrentStock(ingredient.Batches)
		if err := helpers.ValidateRestockAmount(req.Amount, currentStock, ingredient.Max_level); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		today := time.Now()
		batch := helpers.NewRestockBatch(primitive.NewObjectID().Hex(), req.Amount, today)
		newStock := currentStock + req.Amount

		update := bson.D{
			{Key: "$push", Value: bson.D{{Key: "batches", Value: batch}}},
			{Key: "$set", Value: bson.D{
				{Key: "current_stock", Value: newStock},
				{Key: "total_value", Value: newStock * ingredient.Price_per_unit},
				{Key: "last_restocked", Value: today},
				{Key: "updated_at", Value: today},
			}},
		}
		result, err := ingredientCollection.UpdateOne(ctx, bson.M{"ingredient_id": ingredientId}, update)
		if err != nil {
			msg := fmt.Sprintf("restock failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}

		name := ""
		if ingredient.Name != nil {
			name = *ingredient.Name
		}
		c.JSON(http.StatusOK, gin.H{
			"message":       fmt.Sprintf("%s réapprovisionné (+%v %s)", name, req.Amount, derefOr(ingredient.Unit, "")),
			"current_stock": newStock,
			"batch":         batch,
			"result":        result,
		})
	}
}

// GetLowStockIngredients backs the stock-alert feed on the dashboard.
func GetLowStockIngredients() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := ingredientCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing ingredients"})
			return
		}
		var allIngredients []models.IngredientStock
		if err := cursor.All(ctx, &allIngredients); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		today := time.Now()
		low := []ingredientView{}
		for _, ingredient := range allIngredients {
			view := ingredientToView(ingredient, today)
			if view.Stock_status == helpers.StockLevelLow {
				low = append(low, view)
			}
		}
		c.JSON(http.StatusOK, low)
	}
}

func derefOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
