package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReservationStatusEnAttente = "en_attente"
	ReservationStatusConfirmee = "confirmee"
	ReservationStatusAnnulee   = "annulee"
)

type Reservation struct {
	ID             primitive.ObjectID `bson:"_id"`
	Reservation_id string             `bson:"reservation_id" json:"reservation_id"`
	Client_id      *string            `bson:"client_id" json:"client_id" validate:"required"`
	Party_size     *int               `bson:"party_size" json:"party_size" validate:"required,gt=0"`
	Reserved_for   time.Time          `bson:"reserved_for" json:"reserved_for" validate:"required"`
	Status         string             `bson:"status" json:"status" validate:"required,eq=en_attente|eq=confirmee|eq=annulee"`
	Table_id       *string            `bson:"table_id" json:"table_id"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
	Updated_at     time.Time          `bson:"updated_at" json:"updated_at"`
}

type Client struct {
	ID         primitive.ObjectID `bson:"_id"`
	Client_id  string             `bson:"client_id" json:"client_id"`
	First_name *string            `bson:"first_name" json:"first_name" validate:"required,min=2,max=100"`
	Last_name  *string            `bson:"last_name" json:"last_name" validate:"required,min=2,max=100"`
	Email      *string            `bson:"email" json:"email" validate:"omitempty,email"`
	Phone      *string            `bson:"phone" json:"phone"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}

// ReservationView carries the resolved client name and phone; both come from
// the client document, not synthesized.
type ReservationView struct {
	Reservation_id string    `json:"reservation_id"`
	Customer_name  string    `json:"customer_name"`
	Phone          string    `json:"phone"`
	Party_size     int       `json:"party_size"`
	Reserved_for   time.Time `json:"reserved_for"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	Table_id       string    `json:"table_id"`
}
