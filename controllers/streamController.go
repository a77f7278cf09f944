package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/helpers"
	"github.com/wsmyc/resto-manager-tableau-de-bord-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

// Message is the envelope every dashboard push uses.
type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// HandleWebSocket registers a dashboard client; the connection is dropped
// from the hub as soon as its read loop fails.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

func notifyOrderUpdate(order models.Order) {
	broadcast(Message{Event: "orderUpdate", Payload: orderToView(order)})
}

func broadcast(message Message) {
	mu.Lock()
	defer mu.Unlock()

	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("error marshaling message:", err)
		return
	}
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			log.Println("error writing message:", err)
			client.Close()
			delete(clients, client)
		}
	}
}

// StartWatchers opens one change stream per live collection and fans every
// event out to the hub. Streams run on independent goroutines; ordering holds
// within a stream, not across streams. The context is the server's lifetime:
// cancelling it tears every stream down.
func StartWatchers(ctx context.Context) {
	go watchCollection(ctx, orderCollection, "orderUpdate", func(doc bson.Raw) (interface{}, error) {
		var order models.Order
		if err := bson.Unmarshal(doc, &order); err != nil {
			return nil, err
		}
		return orderToView(order), nil
	})
	go watchCollection(ctx, reservationCollection, "reservationUpdate", func(doc bson.Raw) (interface{}, error) {
		var reservation models.Reservation
		if err := bson.Unmarshal(doc, &reservation); err != nil {
			return nil, err
		}
		view := models.ReservationView{
			Reservation_id: reservation.Reservation_id,
			Customer_name:  "Client inconnu",
			Phone:          "N/A",
			Reserved_for:   reservation.Reserved_for,
			Time:           helpers.FormatOrderTime(reservation.Reserved_for),
			Status:         reservation.Status,
		}
		if reservation.Party_size != nil {
			view.Party_size = *reservation.Party_size
		}
		if reservation.Table_id != nil {
			view.Table_id = *reservation.Table_id
		}
		if reservation.Client_id != nil {
			var client models.Client
			if err := clientCollection.FindOne(ctx, bson.M{"client_id": *reservation.Client_id}).Decode(&client); err == nil {
				if client.First_name != nil && client.Last_name != nil {
					view.Customer_name = *client.First_name + " " + *client.Last_name
				}
				if client.Phone != nil && *client.Phone != "" {
					view.Phone = *client.Phone
				}
			}
		}
		return view, nil
	})
	go watchCollection(ctx, notificationCollection, "notificationUpdate", func(doc bson.Raw) (interface{}, error) {
		var notification models.Notification
		if err := bson.Unmarshal(doc, &notification); err != nil {
			return nil, err
		}
		return helpers.NotificationToView(notification), nil
	})
}

func watchCollection(ctx context.Context, collection *mongo.Collection, event string, translate func(bson.Raw) (interface{}, error)) {
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	stream, err := collection.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		log.Printf("change stream on %s unavailable: %v", collection.Name(), err)
		return
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		var changeEvent struct {
			OperationType string   `bson:"operationType"`
			FullDocument  bson.Raw `bson:"fullDocument"`
		}
		if err := stream.Decode(&changeEvent); err != nil {
			log.Printf("change stream decode on %s: %v", collection.Name(), err)
			continue
		}
		if changeEvent.FullDocument == nil {
			continue
		}
		payload, err := translate(changeEvent.FullDocument)
		if err != nil {
			log.Printf("change stream translate on %s: %v", collection.Name(), err)
			continue
		}
		broadcast(Message{Event: event, Payload: payload})
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Printf("change stream on %s ended: %v", collection.Name(), err)
	}
}
