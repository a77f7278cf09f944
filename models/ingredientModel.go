package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StockBatch is immutable once written: restocks append new batches, aging is
// reflected through derived expiry status only, never through deletion.
type StockBatch struct {
	Batch_id    string    `bson:"batch_id" json:"batch_id"`
	Amount      float64   `bson:"amount" json:"amount" validate:"required,gt=0"`
	Order_date  time.Time `bson:"order_date" json:"order_date"`
	Expiry_date time.Time `bson:"expiry_date" json:"expiry_date"`
}

type IngredientStock struct {
	ID             primitive.ObjectID `bson:"_id"`
	Ingredient_id  string             `bson:"ingredient_id" json:"ingredient_id"`
	Name           *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category       string             `bson:"category" json:"category"`
	Unit           *string            `bson:"unit" json:"unit" validate:"required"`
	Price_per_unit float64            `bson:"price_per_unit" json:"price_per_unit" validate:"gte=0"`
	Batches        []StockBatch       `bson:"batches" json:"batches"`
	Current_stock  float64            `bson:"current_stock" json:"current_stock"`
	Min_level      float64            `bson:"min_level" json:"min_level" validate:"gte=0"`
	Max_level      float64            `bson:"max_level" json:"max_level" validate:"gt=0"`
	Total_value    float64            `bson:"total_value" json:"total_value"`
	Last_restocked *time.Time         `bson:"last_restocked" json:"last_restocked"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
	Updated_at     time.Time          `bson:"updated_at" json:"updated_at"`
}
