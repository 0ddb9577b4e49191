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
)

var orderItemCollection *mongo.Collection = database.OpenCollection(database.Client, "orderItem")

type CheckoutRequest struct {
	Customer_email string                  `json:"customer_email"`
	Payment_method string                  `json:"payment_method"`
	Shipping       helpers.ShippingDetails `json:"shipping"`
	Payment        *helpers.PaymentDetails `json:"payment"`
}

// PlaceOrder validates the checkout form against the session cart, prices it
// and persists the order with its items. The cart survives every failure; the
// session is torn down only once the order is fully written.
func PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		liveCart, ok := sessionCart(c)
		if !ok {
			return
		}
		// a stable view of the cart for pricing and item creation, in case
		// another request mutates the session mid-checkout
		cart := liveCart.Snapshot()

		var req CheckoutRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		draft, fieldErrors, err := helpers.ValidateAndPrice(cart, req.Customer_email, req.Shipping, req.Payment_method, req.Payment)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrors})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var order models.Order
		order.ID = primitive.NewObjectID()
		order.Order_id = order.ID.Hex()
		order.Order_number = draft.Order_number
		order.Customer_email = req.Customer_email
		order.Restaurant_id = cart.RestaurantID
		order.Status = helpers.StatusPending
		order.First_name = req.Shipping.First_name
		order.Last_name = req.Shipping.Last_name
		order.Delivery_address = req.Shipping.Address
		order.City = req.Shipping.City
		order.State = req.Shipping.State
		order.Zip_code = req.Shipping.Zip_code
		order.Phone = req.Shipping.Phone
		order.Subtotal = draft.Subtotal.InexactFloat64()
		order.Delivery_fee = draft.Delivery_fee.InexactFloat64()
		order.Service_charge = draft.Service_charge.InexactFloat64()
		order.Tax = draft.Tax.InexactFloat64()
		order.Total = draft.Total.InexactFloat64()
		order.Payment_method = req.Payment_method
		order.Estimated_delivery = draft.Estimated_delivery
		order.Created_at = time.Now()
		order.Updated_at = order.Created_at

		orderItemsToBeInserted := []interface{}{}
		for _, line := range cart.Lines {
			var orderItem models.OrderItem
			orderItem.ID = primitive.NewObjectID()
			orderItem.Order_item_id = orderItem.ID.Hex()
			orderItem.Order_id = order.Order_id
			orderItem.Item_id = line.ItemID
			orderItem.Item_name = line.Name
			orderItem.Unit_price = line.UnitPrice.InexactFloat64()
			orderItem.Quantity = line.Quantity
			orderItem.Created_at = order.Created_at
			orderItem.Updated_at = order.Created_at
			orderItemsToBeInserted = append(orderItemsToBeInserted, orderItem)
		}

		if _, err := orderCollection.InsertOne(ctx, order); err != nil {
			log.Println("order insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not created"})
			return
		}
		if _, err := orderItemCollection.InsertMany(ctx, orderItemsToBeInserted); err != nil {
			// keep order creation atomic from the caller's point of view
			if _, delErr := orderCollection.DeleteOne(ctx, bson.M{"order_id": order.Order_id}); delErr != nil {
				log.Println("orphan order cleanup failed:", delErr)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order was not created"})
			return
		}

		// the session is done once the order exists
		liveCart.Clear()
		cartSessions.Remove(sessionId)
		notifyOrderUpdate(order)
		c.JSON(http.StatusOK, order)
	}
}
