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
)

var dishCollection *mongo.Collection = database.OpenCollection(database.Client, "dish")
var dishIngredientCollection *mongo.Collection = database.OpenCollection(database.Client, "dishIngredient")

func GetDishes() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := dishCollection.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing dishes"})
			return
		}
		var allDishes []models.Dish
		if err := cursor.All(ctx, &allDishes); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allDishes)
	}
}

func GetDish() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		dishId := c.Param("dish_id")

		var dish models.Dish
		err := dishCollection.FindOne(ctx, bson.M{"dish_id": dishId}).Decode(&dish)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish was not found"})
			return
		}
		c.JSON(http.StatusOK, dish)
	}
}

func CreateDish() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var dish models.Dish
		if err := c.BindJSON(&dish); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		validationErr := validate.Struct(&dish)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		now := time.Now()
		dish.ID = primitive.NewObjectID()
		dish.Dish_id = dish.ID.Hex()
		dish.Created_at = now
		dish.Updated_at = now

		result, err := dishCollection.InsertOne(ctx, dish)
		if err != nil {
			msg := fmt.Sprintf("dish was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateDish() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		dishId := c.Param("dish_id")

		var dish models.Dish
		if err := c.BindJSON(&dish); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if dish.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: dish.Name})
		}
		if dish.Category != nil {
			updateObj = append(updateObj, bson.E{Key: "category", Value: dish.Category})
		}
		if dish.Selling_price > 0 {
			updateObj = append(updateObj, bson.E{Key: "selling_price", Value: dish.Selling_price})
		}
		if dish.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: dish.Description})
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

		result, err := dishCollection.UpdateOne(
			ctx,
			bson.M{"dish_id": dishId},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			msg := fmt.Sprintf("dish update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func AddDishIngredient() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		dishId := c.Param("dish_id")

		var link models.DishIngredient
		if err := c.BindJSON(&link); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		link.Dish_id = &dishId
		validationErr := validate.Struct(&link)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var dish models.Dish
		if err := dishCollection.FindOne(ctx, bson.M{"dish_id": dishId}).Decode(&dish); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish was not found"})
			return
		}

		now := time.Now()
		link.ID = primitive.NewObjectID()
		link.Link_id = link.ID.Hex()
		link.Created_at = now
		link.Updated_at = now

		result, err := dishIngredientCollection.InsertOne(ctx, link)
		if err != nil {
			msg := fmt.Sprintf("dish ingredient was not added")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetDishCost prices the dish's recipe against the pricing table and reports
// the margin against its selling price.
func GetDishCost() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		dishId := c.Param("dish_id")

		var dish models.Dish
		if err := dishCollection.FindOne(ctx, bson.M{"dish_id": dishId}).Decode(&dish); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish was not found"})
			return
		}

		cursor, err := dishIngredientCollection.Find(ctx, bson.M{"dish_id": dishId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing dish ingredients"})
			return
		}
		var links []models.DishIngredient
		if err := cursor.All(ctx, &links); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		ingredients := make([]helpers.CostIngredient, 0, len(links))
		for _, link := range links {
			ingredients = append(ingredients, helpers.CostIngredient{
				Name:     derefOr(link.Name, ""),
				Quantity: link.Quantity,
				Unit:     derefOr(link.Unit, ""),
			})
		}
		estimate := helpers.CalculateMenuItemCost(ingredients)

		response := gin.H{
			"dish_id":  dishId,
			"estimate": estimate,
		}
		if dish.Selling_price > 0 {
			response["margin"] = helpers.CalculateMargin(dish.Selling_price, estimate.TotalCost)
		}
		c.JSON(http.StatusOK, response)
	}
}

// EstimateCost prices an ad-hoc recipe without touching a stored dish.
func EstimateCost() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Selling_price float64                  `json:"selling_price"`
			Ingredients   []helpers.CostIngredient `json:"ingredients"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		estimate := helpers.CalculateMenuItemCost(req.Ingredients)
		response := gin.H{"estimate": estimate}
		if req.Selling_price > 0 {
			response["margin"] = helpers.CalculateMargin(req.Selling_price, estimate.TotalCost)
		}
		c.JSON(http.StatusOK, response)
	}
}
