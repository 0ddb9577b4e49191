package controllers

import (
	"context"
	"net/http"
	"time"

	"frontdash/database"
	"frontdash/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var restaurantCollection *mongo.Collection = database.OpenCollection(database.Client, "restaurant")
var registrationCollection *mongo.Collection = database.OpenCollection(database.Client, "registration")

func GetRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := restaurantCollection.Find(ctx,
			bson.M{"status": "active"},
			options.Find().SetSort(bson.D{{Key: "rating", Value: -1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing restaurants"})
			return
		}
		var restaurants []models.Restaurant
		if err := cursor.All(ctx, &restaurants); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, restaurants)
	}
}

// GetRestaurant returns one restaurant together with its menu.
func GetRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		restaurantId := c.Param("restaurant_id")

		var restaurant models.Restaurant
		err := restaurantCollection.FindOne(ctx, bson.M{"restaurant_id": restaurantId}).Decode(&restaurant)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant was not found"})
			return
		}

		var menu []models.MenuItem
		cursor, err := menuItemCollection.Find(ctx, bson.M{"restaurant_id": restaurantId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing menu items"})
			return
		}
		if err := cursor.All(ctx, &menu); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"restaurant": restaurant, "menu": menu})
	}
}

// CreateMenuItem adds an item to the logged in restaurant's menu. item_id is
// a small per-restaurant integer the storefront uses for cart lines.
func CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		restaurantId := c.GetString("restaurant_id")
		if restaurantId == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "account is not linked to a restaurant"})
			return
		}

		var menuItem models.MenuItem
		if err := c.BindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		menuItem.Restaurant_id = restaurantId
		if validationErr := validate.Struct(&menuItem); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := menuItemCollection.CountDocuments(ctx, bson.M{"restaurant_id": restaurantId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while counting menu items"})
			return
		}
		menuItem.Item_id = int(count) + 1
		menuItem.ID = primitive.NewObjectID()
		menuItem.Menu_item_id = menuItem.ID.Hex()
		menuItem.Created_at = time.Now()
		menuItem.Updated_at = menuItem.Created_at

		if _, err := menuItemCollection.InsertOne(ctx, menuItem); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item was not created"})
			return
		}
		c.JSON(http.StatusOK, menuItem)
	}
}

func UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		menuItemId := c.Param("menu_item_id")

		var menuItem models.MenuItem
		if err := c.BindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if menuItem.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: menuItem.Name})
		}
		if menuItem.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: menuItem.Description})
		}
		if menuItem.Price != nil {
			updateObj = append(updateObj, bson.E{Key: "price", Value: menuItem.Price})
		}
		if menuItem.Image_url != nil {
			updateObj = append(updateObj, bson.E{Key: "image_url", Value: menuItem.Image_url})
		}
		if menuItem.Category != nil {
			updateObj = append(updateObj, bson.E{Key: "category", Value: menuItem.Category})
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

		filter := bson.M{"menu_item_id": menuItemId, "restaurant_id": c.GetString("restaurant_id")}
		result, err := menuItemCollection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateObj}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		menuItemId := c.Param("menu_item_id")

		filter := bson.M{"menu_item_id": menuItemId, "restaurant_id": c.GetString("restaurant_id")}
		result, err := menuItemCollection.DeleteOne(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "menu item delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "menu item removed"})
	}
}

// CreateRegistration is the public restaurant sign up form. Menu and logo
// files are uploaded to external storage by the client; only their public
// URLs arrive here.
func CreateRegistration() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var registration models.RestaurantRegistration
		if err := c.BindJSON(&registration); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&registration); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		registration.ID = primitive.NewObjectID()
		registration.Registration_id = registration.ID.Hex()
		registration.Status = "pending"
		registration.Submission_date = time.Now()
		registration.Decision_date = nil
		registration.Reviewed_by = nil

		if _, err := registrationCollection.InsertOne(ctx, registration); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration was not created"})
			return
		}
		c.JSON(http.StatusOK, registration)
	}
}
