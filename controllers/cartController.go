package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"frontdash/database"
	"frontdash/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menuItem")

// cartSessions holds every live cart, one per browser session. Carts never
// touch the database; only the order written at checkout is persisted.
var cartSessions = models.NewCartSessions()

func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := cartSessions.Create()
		c.JSON(http.StatusCreated, gin.H{"session_id": sessionId})
	}
}

func DeleteSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartSessions.Remove(c.Param("session_id"))
		c.JSON(http.StatusOK, gin.H{"message": "session removed"})
	}
}

func sessionCart(c *gin.Context) (*models.Cart, bool) {
	sessionId := c.Request.Header.Get("X-Session-ID")
	if sessionId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header is required"})
		return nil, false
	}
	cart, ok := cartSessions.Get(sessionId)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil, false
	}
	return cart, true
}

// cartView serializes a stable snapshot so concurrent mutations on the same
// session cannot race with the JSON encoder.
func cartView(cart *models.Cart) gin.H {
	snapshot := cart.Snapshot()
	return gin.H{
		"cart":             snapshot,
		"subtotal":         snapshot.Subtotal(),
		"total_item_count": snapshot.TotalItemCount(),
	}
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

type addCartItemRequest struct {
	Restaurant_id string `json:"restaurant_id" validate:"required"`
	Item_id       int    `json:"item_id" validate:"required"`
}

// AddCartItem looks the item up on the restaurant's menu so the cart always
// carries the stored price, not a client supplied one.
func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c)
		if !ok {
			return
		}
		var req addCartItemRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var menuItem models.MenuItem
		err := menuItemCollection.FindOne(ctx, bson.M{
			"restaurant_id": req.Restaurant_id,
			"item_id":       req.Item_id,
		}).Decode(&menuItem)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}

		if menuItem.Price == nil || menuItem.Name == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item record is incomplete"})
			return
		}
		unitPrice := decimal.NewFromFloat(*menuItem.Price).Round(2)
		if !cart.AddItem(menuItem.Item_id, *menuItem.Name, unitPrice, req.Restaurant_id) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "cart is bound to a different restaurant, clear it before switching",
			})
			return
		}
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c)
		if !ok {
			return
		}
		itemId, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item_id must be an integer"})
			return
		}
		cart.RemoveItem(itemId)
		c.JSON(http.StatusOK, cartView(cart))
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := sessionCart(c)
		if !ok {
			return
		}
		cart.Clear()
		c.JSON(http.StatusOK, cartView(cart))
	}
}
