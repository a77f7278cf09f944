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

var reservationCollection *mongo.Collection = database.OpenCollection(database.Client, "reservation")
var clientCollection *mongo.Collection = database.OpenCollection(database.Client, "client")

var findReservation = func(ctx context.Context, reservationId string) (models.Reservation, error) {
	var reservation models.Reservation
	err := reservationCollection.FindOne(ctx, bson.M{"reservation_id": reservationId}).Decode(&reservation)
	return reservation, err
}

var setReservationStatus = func(ctx context.Context, reservationId string, status string) (*mongo.UpdateResult, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: status},
		{Key: "updated_at", Value: time.Now()},
	}}}
	return reservationCollection.UpdateOne(ctx, bson.M{"reservation_id": reservationId}, update)
}

// reservationWithClient is the aggregation result: the client document joined
// in one $lookup instead of one fetch per reservation.
type reservationWithClient struct {
	models.Reservation `bson:",inline"`
	Client             []models.Client `bson:"client"`
}

func reservationToView(r reservationWithClient) models.ReservationView {
	view := models.ReservationView{
		Reservation_id: r.Reservation_id,
		Customer_name:  "Client inconnu",
		Phone:          "N/A",
		Reserved_for:   r.Reserved_for,
		Time:           helpers.FormatOrderTime(r.Reserved_for),
		Status:         r.Status,
	}
	if r.Party_size != nil {
		view.Party_size = *r.Party_size
	}
	if r.Table_id != nil {
		view.Table_id = *r.Table_id
	}
	if len(r.Client) > 0 {
		client := r.Client[0]
		if client.First_name != nil && client.Last_name != nil {
			view.Customer_name = *client.First_name + " " + *client.Last_name
		}
		if client.Phone != nil && *client.Phone != "" {
			view.Phone = *client.Phone
		}
	}
	return view
}

// GetReservations lists the board newest first with client names and phones
// resolved from the client collection. Same fallback policy as the order
// board.
func GetReservations() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
		lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "client"},
			{Key: "localField", Value: "client_id"},
			{Key: "foreignField", Value: "client_id"},
			{Key: "as", Value: "client"},
		}}}

		cursor, err := reservationCollection.Aggregate(ctx, mongo.Pipeline{sortStage, lookupStage})
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"reservations": helpers.FallbackReservations(), "error": "error occurred while listing reservations"})
			return
		}
		var joined []reservationWithClient
		if err := cursor.All(ctx, &joined); err != nil {
			c.JSON(http.StatusOK, gin.H{"reservations": helpers.FallbackReservations(), "error": err.Error()})
			return
		}
		if len(joined) == 0 {
			c.JSON(http.StatusOK, gin.H{"reservations": helpers.FallbackReservations()})
			return
		}

		views := make([]models.ReservationView, 0, len(joined))
		for _, r := range joined {
			views = append(views, reservationToView(r))
		}
		c.JSON(http.StatusOK, gin.H{"reservations": views})
	}
}

func GetReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		reservationId := c.Param("reservation_id")

		var reservation models.Reservation
		err := reservationCollection.FindOne(ctx, bson.M{"reservation_id": reservationId}).Decode(&reservation)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation was not found"})
			return
		}
		c.JSON(http.StatusOK, reservation)
	}
}

func CreateReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var reservation models.Reservation
		if err := c.BindJSON(&reservation); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if reservation.Status == "" {
			reservation.Status = models.ReservationStatusEnAttente
		}
		validationErr := validate.Struct(&reservation)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var client models.Client
		if err := clientCollection.FindOne(ctx, bson.M{"client_id": reservation.Client_id}).Decode(&client); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "client was not found"})
			return
		}

		now := time.Now()
		reservation.ID = primitive.NewObjectID()
		reservation.Reservation_id = reservation.ID.Hex()
		reservation.Created_at = now
		reservation.Updated_at = now

		result, err := reservationCollection.InsertOne(ctx, reservation)
		if err != nil {
			msg := fmt.Sprintf("reservation was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func UpdateReservationStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		reservationId := c.Param("reservation_id")

		var req statusUpdateRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		switch req.Status {
		case models.ReservationStatusEnAttente, models.ReservationStatusConfirmee, models.ReservationStatusAnnulee:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", req.Status)})
			return
		}

		if helpers.IsFallbackID(reservationId) {
			c.JSON(http.StatusOK, gin.H{"skipped": true, "status": req.Status})
			return
		}

		result, err := setReservationStatus(ctx, reservationId, req.Status)
		if err != nil {
			msg := fmt.Sprintf("reservation status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// CancelReservation refuses to rewrite an already cancelled reservation
// instead of blindly setting the field again.
func CancelReservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		reservationId := c.Param("reservation_id")

		if helpers.IsFallbackID(reservationId) {
			c.JSON(http.StatusOK, gin.H{"skipped": true, "status": models.ReservationStatusAnnulee})
			return
		}

		reservation, err := findReservation(ctx, reservationId)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation was not found"})
			return
		}
		if reservation.Status == models.ReservationStatusAnnulee {
			c.JSON(http.StatusConflict, gin.H{"error": "reservation is already cancelled"})
			return
		}

		result, err := setReservationStatus(ctx, reservationId, models.ReservationStatusAnnulee)
		if err != nil {
			msg := fmt.Sprintf("reservation cancellation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
