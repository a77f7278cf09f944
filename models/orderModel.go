package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Canonical backend order statuses. Every screen works from this single
// vocabulary; the dashboard translation lives in helpers.ToUIStatus.
const (
	StatusEnAttente     = "en_attente"
	StatusConfirmee     = "confirmee"
	StatusEnPreparation = "en_preparation"
	StatusPrete         = "prete"
	StatusServie        = "servie"
	StatusAnnulee       = "annulee"
)

type Order struct {
	ID            primitive.ObjectID `bson:"_id"`
	Order_id      string             `bson:"order_id" json:"order_id"`
	Customer_name *string            `bson:"customer_name" json:"customer_name"`
	Table_id      *string            `bson:"table_id" json:"table_id"`
	Table_number  *int               `bson:"table_number" json:"table_number"`
	Server_name   *string            `bson:"server_name" json:"server_name"`
	Items         []OrderItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Total_amount  float64            `bson:"total_amount" json:"total_amount"`
	Status        string             `bson:"status" json:"status" validate:"required,eq=en_attente|eq=confirmee|eq=en_preparation|eq=prete|eq=servie|eq=annulee"`
	Created_by    *string            `bson:"created_by" json:"created_by"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}

type OrderItem struct {
	Dish_id    *string  `bson:"dish_id" json:"dish_id" validate:"required"`
	Dish_name  *string  `bson:"dish_name" json:"dish_name"`
	Quantity   *int     `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Unit_price *float64 `bson:"unit_price" json:"unit_price" validate:"required,gte=0"`
}

// OrderView is what the dashboard consumes: UI vocabulary, preformatted time,
// string fallbacks already applied.
type OrderView struct {
	Order_id      string  `json:"order_id"`
	Customer_name string  `json:"customer_name"`
	Table         string  `json:"table"`
	Server_name   string  `json:"server_name"`
	Items         int     `json:"items"`
	Total_amount  float64 `json:"total_amount"`
	Status        string  `json:"status"`
	Time          string  `json:"time"`
}
