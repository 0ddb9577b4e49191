package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Order struct {
	ID                 primitive.ObjectID `bson:"_id"`
	Order_id           string             `json:"order_id"`
	Order_number       string             `json:"order_number"`
	Customer_email     string             `json:"customer_email" validate:"required,email"`
	Restaurant_id      string             `json:"restaurant_id" validate:"required"`
	Status             string             `json:"status"`
	Driver_id          *string            `json:"driver_id"`
	First_name         string             `json:"first_name"`
	Last_name          string             `json:"last_name"`
	Delivery_address   string             `json:"delivery_address"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	Zip_code           string             `json:"zip_code"`
	Phone              string             `json:"phone"`
	Subtotal           float64            `json:"subtotal"`
	Delivery_fee       float64            `json:"delivery_fee"`
	Service_charge     float64            `json:"service_charge"`
	Tax                float64            `json:"tax"`
	Total              float64            `json:"total"`
	Payment_method     string             `json:"payment_method" validate:"required,eq=card|eq=paypal|eq=venmo"`
	Estimated_delivery time.Time          `json:"estimated_delivery"`
	Created_at         time.Time          `json:"created_at"`
	Updated_at         time.Time          `json:"updated_at"`
}

type OrderItem struct {
	ID            primitive.ObjectID `bson:"_id"`
	Order_item_id string             `json:"order_item_id"`
	Order_id      string             `json:"order_id"`
	Item_id       int                `json:"item_id"`
	Item_name     string             `json:"item_name" validate:"required"`
	Unit_price    float64            `json:"unit_price" validate:"required"`
	Quantity      int                `json:"quantity" validate:"required,min=1"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
}
