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

var driverCollection *mongo.Collection = database.OpenCollection(database.Client, "driver")
var withdrawalCollection *mongo.Collection = database.OpenCollection(database.Client, "withdrawal")

func GetDrivers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := driverCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing drivers"})
			return
		}
		var drivers []models.Driver
		if err := cursor.All(ctx, &drivers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, drivers)
	}
}

func CreateDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var driver models.Driver
		if err := c.BindJSON(&driver); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&driver); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		count, err := driverCollection.CountDocuments(ctx, bson.M{"username": driver.Username})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while checking the username"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "driver username already exists"})
			return
		}

		driver.ID = primitive.NewObjectID()
		driver.Driver_id = driver.ID.Hex()
		driver.Status = "active"
		driver.Is_available = true
		driver.Start_date = time.Now()
		driver.Created_at = driver.Start_date
		driver.Updated_at = driver.Start_date

		if _, err := driverCollection.InsertOne(ctx, driver); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "driver was not created"})
			return
		}
		c.JSON(http.StatusOK, driver)
	}
}

func UpdateDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		driverId := c.Param("driver_id")

		var body struct {
			Status       *string `json:"status"`
			Is_available *bool   `json:"is_available"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var updateObj primitive.D
		if body.Status != nil {
			if *body.Status != "active" && *body.Status != "inactive" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "status", Value: *body.Status})
		}
		if body.Is_available != nil {
			updateObj = append(updateObj, bson.E{Key: "is_available", Value: *body.Is_available})
		}
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

		result, err := driverCollection.UpdateOne(ctx,
			bson.M{"driver_id": driverId},
			bson.D{{Key: "$set", Value: updateObj}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "driver update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver was not found"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func DeleteDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		driverId := c.Param("driver_id")

		result, err := driverCollection.DeleteOne(ctx, bson.M{"driver_id": driverId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "driver delete failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "driver was not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "driver removed"})
	}
}

func GetRegistrations() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}
		cursor, err := registrationCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "submission_date", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing registrations"})
			return
		}
		var registrations []models.RestaurantRegistration
		if err := cursor.All(ctx, &registrations); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, registrations)
	}
}

type reviewRequest struct {
	Decision string `json:"decision" validate:"required,eq=approved|eq=rejected"`
}

// ReviewRegistration settles a pending registration. Approval also inserts
// the restaurant so it shows up on the storefront once activated.
func ReviewRegistration() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		registrationId := c.Param("registration_id")

		var req reviewRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var registration models.RestaurantRegistration
		err := registrationCollection.FindOne(ctx, bson.M{"registration_id": registrationId}).Decode(&registration)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "registration was not found"})
			return
		}
		if registration.Status != "pending" {
			c.JSON(http.StatusConflict, gin.H{"error": "registration was already reviewed"})
			return
		}

		reviewer := c.GetString("uid")
		now := time.Now()
		result, err := registrationCollection.UpdateOne(ctx,
			bson.M{"registration_id": registrationId, "status": "pending"},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "status", Value: req.Decision},
				{Key: "decision_date", Value: now},
				{Key: "reviewed_by", Value: reviewer},
			}}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "registration was already reviewed"})
			return
		}

		if req.Decision == "approved" {
			var restaurant models.Restaurant
			restaurant.ID = primitive.NewObjectID()
			restaurant.Restaurant_id = restaurant.ID.Hex()
			restaurant.Name = registration.Restaurant_name
			restaurant.Cuisine_type = registration.Cuisine_type
			restaurant.Address = registration.Address
			restaurant.City = registration.City
			restaurant.State = registration.State
			restaurant.Zip_code = registration.Zip_code
			restaurant.Phone = registration.Phone
			restaurant.Opening_time = registration.Opening_time
			restaurant.Closing_time = registration.Closing_time
			restaurant.Image_url = registration.Logo_file_url
			restaurant.Status = "active"
			restaurant.Created_at = now
			restaurant.Updated_at = now
			if _, err := restaurantCollection.InsertOne(ctx, restaurant); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "restaurant was not created"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"registration_id": registrationId, "status": req.Decision, "restaurant": restaurant})
			return
		}
		c.JSON(http.StatusOK, gin.H{"registration_id": registrationId, "status": req.Decision})
	}
}

// CreateWithdrawalRequest lets a restaurant ask to leave the platform.
func CreateWithdrawalRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		restaurantId := c.GetString("restaurant_id")
		if restaurantId == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "account is not linked to a restaurant"})
			return
		}

		var withdrawal models.WithdrawalRequest
		if err := c.BindJSON(&withdrawal); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		withdrawal.Restaurant_id = restaurantId
		if validationErr := validate.Struct(&withdrawal); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var restaurant models.Restaurant
		if err := restaurantCollection.FindOne(ctx, bson.M{"restaurant_id": restaurantId}).Decode(&restaurant); err == nil && restaurant.Name != nil {
			withdrawal.Restaurant_name = *restaurant.Name
		}

		withdrawal.ID = primitive.NewObjectID()
		withdrawal.Withdrawal_id = withdrawal.ID.Hex()
		withdrawal.Status = "pending"
		withdrawal.Submission_date = time.Now()
		withdrawal.Decision_date = nil
		withdrawal.Reviewed_by = nil

		if _, err := withdrawalCollection.InsertOne(ctx, withdrawal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "withdrawal request was not created"})
			return
		}
		c.JSON(http.StatusOK, withdrawal)
	}
}

func GetWithdrawalRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		filter := bson.M{}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}
		cursor, err := withdrawalCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "submission_date", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error occurred while listing withdrawal requests"})
			return
		}
		var withdrawals []models.WithdrawalRequest
		if err := cursor.All(ctx, &withdrawals); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, withdrawals)
	}
}

// ReviewWithdrawalRequest settles a withdrawal; approval suspends the
// restaurant so it disappears from the storefront.
func ReviewWithdrawalRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		withdrawalId := c.Param("withdrawal_id")

		var req reviewRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		var withdrawal models.WithdrawalRequest
		err := withdrawalCollection.FindOne(ctx, bson.M{"withdrawal_id": withdrawalId}).Decode(&withdrawal)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "withdrawal request was not found"})
			return
		}

		reviewer := c.GetString("uid")
		now := time.Now()
		result, err := withdrawalCollection.UpdateOne(ctx,
			bson.M{"withdrawal_id": withdrawalId, "status": "pending"},
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "status", Value: req.Decision},
				{Key: "decision_date", Value: now},
				{Key: "reviewed_by", Value: reviewer},
			}}})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "withdrawal update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "withdrawal request was already reviewed"})
			return
		}

		if req.Decision == "approved" {
			_, err := restaurantCollection.UpdateOne(ctx,
				bson.M{"restaurant_id": withdrawal.Restaurant_id},
				bson.D{{Key: "$set", Value: bson.D{
					{Key: "status", Value: "suspended"},
					{Key: "updated_at", Value: now},
				}}})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "restaurant suspension failed"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"withdrawal_id": withdrawalId, "status": req.Decision})
	}
}
