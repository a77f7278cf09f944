package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types. Notifications are produced by other back-office flows
// (low stock, order cancellation requests, reservation issues); this service
// reads, marks and resolves them, it never deletes them.
const (
	NotificationTypeStock                = "stock"
	NotificationTypeCommande             = "commande"
	NotificationTypeReservation          = "reservation"
	NotificationTypeCancellationRequest  = "cancellation_request"
	NotificationTypeCancellationAccepted = "cancellation_accepted"
	NotificationTypeCancellationRefused  = "cancellation_refused"
)

const (
	NotificationStatusAccepted = "accepted"
	NotificationStatusRefused  = "refused"
)

type Notification struct {
	ID              primitive.ObjectID `bson:"_id"`
	Notification_id string             `bson:"notification_id" json:"notification_id"`
	Type            string             `bson:"type" json:"type"`
	User_role       string             `bson:"user_role" json:"user_role"`
	Title           string             `bson:"title" json:"title"`
	Message         string             `bson:"message" json:"message"`
	Is_read         bool               `bson:"is_read" json:"is_read"`
	Status          *string            `bson:"status" json:"status"`
	Commande_id     *string            `bson:"commande_id" json:"commande_id"`
	Reservation_id  *string            `bson:"reservation_id" json:"reservation_id"`
	Table_id        *string            `bson:"table_id" json:"table_id"`
	Created_at      time.Time          `bson:"created_at" json:"created_at"`
	Read_at         *time.Time         `bson:"read_at" json:"read_at"`
	Processed_at    *time.Time         `bson:"processed_at" json:"processed_at"`
}

// NotificationView adds the derived action_required flag and the resolved
// payload ids the inbox screen consumes.
type NotificationView struct {
	Notification_id string     `json:"notification_id"`
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	Message         string     `json:"message"`
	Is_read         bool       `json:"is_read"`
	Action_required bool       `json:"action_required"`
	Status          *string    `json:"status"`
	Commande_id     *string    `json:"commande_id"`
	Reservation_id  *string    `json:"reservation_id"`
	Table_id        *string    `json:"table_id"`
	Created_at      time.Time  `json:"created_at"`
	Read_at         *time.Time `json:"read_at"`
}
