package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID            primitive.ObjectID `bson:"_id"`
	Restaurant_id string             `json:"restaurant_id"`
	Name          *string            `json:"name" validate:"required,min=2,max=100"`
	Cuisine_type  *string            `json:"cuisine_type" validate:"required"`
	Address       *string            `json:"address" validate:"required"`
	City          *string            `json:"city"`
	State         *string            `json:"state"`
	Zip_code      *string            `json:"zip_code"`
	Phone         *string            `json:"phone"`
	Opening_time  *string            `json:"opening_time"`
	Closing_time  *string            `json:"closing_time"`
	Rating        float64            `json:"rating"`
	Delivery_time *string            `json:"delivery_time"`
	Image_url     *string            `json:"image_url"`
	Promo         *string            `json:"promo"`
	Status        string             `json:"status" validate:"eq=active|eq=pending|eq=suspended"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
}

type MenuItem struct {
	ID            primitive.ObjectID `bson:"_id"`
	Menu_item_id  string             `json:"menu_item_id"`
	Restaurant_id string             `json:"restaurant_id" validate:"required"`
	Item_id       int                `json:"item_id"`
	Name          *string            `json:"name" validate:"required,min=2,max=100"`
	Description   *string            `json:"description"`
	Price         *float64           `json:"price" validate:"required"`
	Image_url     *string            `json:"image_url"`
	Category      *string            `json:"category"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
}

type RestaurantRegistration struct {
	ID               primitive.ObjectID `bson:"_id"`
	Registration_id  string             `json:"registration_id"`
	Restaurant_name  *string            `json:"restaurant_name" validate:"required,min=2,max=100"`
	Owner_first_name *string            `json:"owner_first_name" validate:"required"`
	Owner_last_name  *string            `json:"owner_last_name" validate:"required"`
	Email            *string            `json:"email" validate:"required,email"`
	Phone            *string            `json:"phone" validate:"required"`
	Cuisine_type     *string            `json:"cuisine_type" validate:"required"`
	Address          *string            `json:"address" validate:"required"`
	City             *string            `json:"city"`
	State            *string            `json:"state"`
	Zip_code         *string            `json:"zip_code"`
	Description      *string            `json:"description"`
	Opening_time     *string            `json:"opening_time"`
	Closing_time     *string            `json:"closing_time"`
	Menu_file_url    *string            `json:"menu_file_url"`
	Logo_file_url    *string            `json:"logo_file_url"`
	Status           string             `json:"status"` // pending, approved, rejected
	Submission_date  time.Time          `json:"submission_date"`
	Decision_date    *time.Time         `json:"decision_date"`
	Reviewed_by      *string            `json:"reviewed_by"`
}

type WithdrawalRequest struct {
	ID              primitive.ObjectID `bson:"_id"`
	Withdrawal_id   string             `json:"withdrawal_id"`
	Restaurant_id   string             `json:"restaurant_id" validate:"required"`
	Restaurant_name string             `json:"restaurant_name"`
	Contact_info    string             `json:"contact_info" validate:"required"`
	Status          string             `json:"status"` // pending, approved, rejected
	Submission_date time.Time          `json:"submission_date"`
	Decision_date   *time.Time         `json:"decision_date"`
	Reviewed_by     *string            `json:"reviewed_by"`
}
