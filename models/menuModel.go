package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Dish struct {
	ID            primitive.ObjectID `bson:"_id"`
	Dish_id       string             `bson:"dish_id" json:"dish_id"`
	Name          *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category      *string            `bson:"category" json:"category" validate:"required"`
	Selling_price float64            `bson:"selling_price" json:"selling_price" validate:"gt=0"`
	Description   *string            `bson:"description" json:"description"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}

// DishIngredient links a dish to one ingredient with the quantity the recipe
// uses; the cost estimate is computed from these links.
type DishIngredient struct {
	ID         primitive.ObjectID `bson:"_id"`
	Link_id    string             `bson:"link_id" json:"link_id"`
	Dish_id    *string            `bson:"dish_id" json:"dish_id" validate:"required"`
	Name       *string            `bson:"name" json:"name" validate:"required"`
	Quantity   float64            `bson:"quantity" json:"quantity" validate:"gt=0"`
	Unit       *string            `bson:"unit" json:"unit" validate:"required"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}

type Table struct {
	ID               primitive.ObjectID `bson:"_id"`
	Table_id         string             `bson:"table_id" json:"table_id"`
	Table_number     *int               `bson:"table_number" json:"table_number" validate:"required"`
	Number_of_guests *int               `bson:"number_of_guests" json:"number_of_guests" validate:"required"`
	Status           string             `bson:"status" json:"status"`
	Created_at       time.Time          `bson:"created_at" json:"created_at"`
	Updated_at       time.Time          `bson:"updated_at" json:"updated_at"`
}
