package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"frontdash/database"
	"frontdash/helpers"
	"frontdash/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := orderCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var allOrders []models.Order
		if err := cursor.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// TrackOrder is the customer tracking view: the order, its items and the
// restaurant it came from, looked up by the customer facing order number.
func TrackOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		orderNumber := c.Param("order_number")

		var order models.Order
		err := orderCollection.FindOne(ctx, bson.M{"order_number": orderNumber}).Decode(&order)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}

		var orderItems []models.OrderItem
		cursor, err := orderItemCollection.Find(ctx, bson.M{"order_id": order.Order_id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing order items"})
			return
		}
		if err := cursor.All(ctx, &orderItems); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var restaurant models.Restaurant
		_ = restaurantCollection.FindOne(ctx, bson.M{"restaurant_id": order.Restaurant_id}).Decode(&restaurant)

		c.JSON(http.StatusOK, gin.H{
			"order":       order,
			"order_items": orderItems,
			"restaurant":  restaurant,
		})
	}
}

// GetRestaurantOrders lists the orders of the restaurant bound to the
// logged in portal account.
func GetRestaurantOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		restaurantId := c.GetString("restaurant_id")
		if restaurantId == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "account is not linked to a restaurant"})
			return
		}
		cursor, err := orderCollection.Find(ctx,
			bson.M{"restaurant_id": restaurantId},
			options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// staffQueueLabel maps canonical statuses onto the labels the dispatch
// screen shows. Only the canonical value is ever stored.
func staffQueueLabel(status string) string {
	switch status {
	case helpers.StatusPending:
		return "Queued"
	case helpers.StatusConfirmed:
		return "Assigned"
	default:
		return status
	}
}

type staffOrder struct {
	models.Order
	Queue_label string `json:"queue_label"`
}

// GetStaffOrders is the dispatch queue: orders waiting for a driver and
// orders ready for pickup.
func GetStaffOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{"status": bson.M{"$in": []string{
			helpers.StatusPending,
			helpers.StatusConfirmed,
			helpers.StatusReady,
			helpers.StatusOutForDelivery,
		}}}
		cursor, err := orderCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing orders"})
			return
		}
		var orders []models.Order
		if err := cursor.All(ctx, &orders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		queue := make([]staffOrder, 0, len(orders))
		for _, order := range orders {
			queue = append(queue, staffOrder{Order: order, Queue_label: staffQueueLabel(order.Status)})
		}
		c.JSON(http.StatusOK, queue)
	}
}

// transitionAllowedForRole restricts who may trigger which lifecycle step:
// staff dispatch picks up and completes deliveries, the restaurant portal
// moves the kitchen stages, and anyone with portal access may cancel.
// Confirming a pending order is not listed for staff on purpose: that step
// only happens through AssignDriver, so no order is ever confirmed without a
// driver on it.
func transitionAllowedForRole(role, from, to string) bool {
	if role == "ADMIN" {
		return true
	}
	if to == helpers.StatusCancelled {
		return true
	}
	switch role {
	case "STAFF":
		return (from == helpers.StatusReady && to == helpers.StatusOutForDelivery) ||
			(from == helpers.StatusOutForDelivery && to == helpers.StatusDelivered)
	case "RESTAURANT":
		return (from == helpers.StatusConfirmed && to == helpers.StatusPreparing) ||
			(from == helpers.StatusPreparing && to == helpers.StatusReady)
	}
	return false
}

type updateStatusRequest struct {
	Status             string     `json:"status" validate:"required"`
	Estimated_delivery *time.Time `json:"estimated_delivery"`
}

// UpdateOrderStatus applies one lifecycle transition. The update filter
// matches the status the transition was validated against, so a concurrent
// change by another actor makes the write miss and the request fails with a
// conflict instead of overwriting.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var req updateStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !helpers.IsValidStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + req.Status})
			return
		}

		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}

		role := c.GetString("user_role")
		if role == "RESTAURANT" && c.GetString("restaurant_id") != order.Restaurant_id {
			c.JSON(http.StatusForbidden, gin.H{"error": "order belongs to a different restaurant"})
			return
		}
		if !transitionAllowedForRole(role, order.Status, req.Status) {
			c.JSON(http.StatusForbidden, gin.H{"error": "transition not permitted for this role"})
			return
		}

		expectedFrom := order.Status
		if err := helpers.ApplyTransition(&order, req.Status); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		updateObj = append(updateObj, bson.E{Key: "status", Value: order.Status})
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: order.Updated_at})
		if req.Estimated_delivery != nil {
			order.Estimated_delivery = *req.Estimated_delivery
			updateObj = append(updateObj, bson.E{Key: "estimated_delivery", Value: order.Estimated_delivery})
		}

		result, err := orderCollection.UpdateOne(
			ctx,
			bson.M{"order_id": orderId, "status": expectedFrom},
			bson.D{{Key: "$set", Value: updateObj}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order status update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "order status changed concurrently, reload and retry"})
			return
		}

		notifyOrderUpdate(order)
		c.JSON(http.StatusOK, order)
	}
}

type assignDriverRequest struct {
	Driver_id string `json:"driver_id" validate:"required"`
}

// driverReserveFilter only matches a driver who is still free, so two
// concurrent assignments cannot both claim the same driver.
func driverReserveFilter(driverId string) bson.M {
	return bson.M{"driver_id": driverId, "status": "active", "is_available": true}
}

func setDriverAvailability(ctx context.Context, driverId string, available bool) error {
	_, err := driverCollection.UpdateOne(ctx,
		bson.M{"driver_id": driverId},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "is_available", Value: available},
			{Key: "updated_at", Value: time.Now()},
		}}},
	)
	return err
}

// AssignDriver is the dispatch action that confirms a pending order. The
// driver is reserved first with an optimistic availability filter; if the
// order update then misses or fails, the reservation is rolled back so the
// driver is never stranded on a failed assignment.
func AssignDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		orderId := c.Param("order_id")

		var req assignDriverRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var driver models.Driver
		err := driverCollection.FindOne(ctx, bson.M{"driver_id": req.Driver_id, "status": "active"}).Decode(&driver)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver was not found"})
			return
		}

		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order was not found"})
			return
		}
		if err := helpers.ApplyTransition(&order, helpers.StatusConfirmed); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		order.Driver_id = &req.Driver_id

		reservation, err := driverCollection.UpdateOne(ctx,
			driverReserveFilter(req.Driver_id),
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "is_available", Value: false},
				{Key: "updated_at", Value: time.Now()},
			}}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "driver reservation failed"})
			return
		}
		if reservation.MatchedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "driver is not available"})
			return
		}

		result, err := orderCollection.UpdateOne(
			ctx,
			bson.M{"order_id": orderId, "status": helpers.StatusPending},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "status", Value: order.Status},
				{Key: "driver_id", Value: req.Driver_id},
				{Key: "updated_at", Value: order.Updated_at},
			}}},
		)
		if err != nil || result.MatchedCount == 0 {
			if releaseErr := setDriverAvailability(ctx, req.Driver_id, true); releaseErr != nil {
				log.Println("driver release failed:", releaseErr)
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "driver assignment failed"})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"error": "order status changed concurrently, reload and retry"})
			return
		}

		notifyOrderUpdate(order)
		c.JSON(http.StatusOK, order)
	}
}
