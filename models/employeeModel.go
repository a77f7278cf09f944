package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Employee struct {
	ID          primitive.ObjectID `bson:"_id"`
	Employee_id string             `bson:"employee_id" json:"employee_id"`
	First_name  *string            `bson:"first_name" json:"first_name" validate:"required,min=2,max=100"`
	Last_name   *string            `bson:"last_name" json:"last_name" validate:"required,min=2,max=100"`
	Email       *string            `bson:"email" json:"email" validate:"required,email"`
	Phone       *string            `bson:"phone" json:"phone" validate:"required"`
	Role        *string            `bson:"role" json:"role" validate:"required,eq=CHEF|eq=SERVER"`
	Salary      float64            `bson:"salary" json:"salary" validate:"gte=0"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}
