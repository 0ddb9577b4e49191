package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"frontdash/database"
	"frontdash/helpers"
	"frontdash/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var notificationCollection *mongo.Collection = database.OpenCollection(database.Client, "notification")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

type wsMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// HandleWebSocket registers a tracking client. Customers and portal screens
// connect here and receive order status events as they happen.
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

// notifyOrderUpdate pushes the new order state to every connected client and
// leaves a notification record for the portal that has to act next.
func notifyOrderUpdate(order models.Order) {
	recordNotification(order)

	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(wsMessage{
		Event: "orderStatus",
		Payload: gin.H{
			"order_id":     order.Order_id,
			"order_number": order.Order_number,
			"status":       order.Status,
		},
	})
}

// nextActor names the portal that has to act on an order in this state, or
// "" when no portal has a next step. Customers follow terminal states on the
// public tracking page and over the websocket, not through the notification
// feed, which only authenticated portal roles can read.
func nextActor(status string) string {
	switch status {
	case helpers.StatusPending, helpers.StatusReady, helpers.StatusOutForDelivery:
		return "STAFF"
	case helpers.StatusConfirmed, helpers.StatusPreparing:
		return "RESTAURANT"
	default:
		return ""
	}
}

func recordNotification(order models.Order) {
	actor := nextActor(order.Status)
	if actor == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	notification := models.Notification{
		ID:           primitive.NewObjectID(),
		User_role:    actor,
		Order_id:     order.Order_id,
		Order_number: order.Order_number,
		Status:       order.Status,
		Is_read:      false,
	}
	if _, err := notificationCollection.InsertOne(ctx, notification); err != nil {
		log.Println("notification insert failed:", err)
	}
}

// MarkNotificationRead clears one notification from the caller's feed.
func MarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		notificationId, err := primitive.ObjectIDFromHex(c.Param("notification_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
			return
		}
		result, err := notificationCollection.UpdateOne(ctx,
			bson.M{"_id": notificationId},
			bson.D{{Key: "$set", Value: bson.D{{Key: "is_read", Value: true}}}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "notification update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
	}
}

// GetNotifications lists the unread notifications addressed to the caller's
// role, newest first.
func GetNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{"user_role": c.GetString("user_role"), "is_read": false}
		cursor, err := notificationCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing notifications"})
			return
		}
		var notifications []models.Notification
		if err := cursor.All(ctx, &notifications); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

func sendMessageToAllClients(message wsMessage) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("error marshaling websocket message:", err)
		return
	}
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}
