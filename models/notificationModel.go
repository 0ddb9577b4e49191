package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Notification struct {
	ID           primitive.ObjectID `bson:"_id"`
	User_role    string             `json:"user_role"`
	Order_id     string             `json:"order_id"`
	Order_number string             `json:"order_number"`
	Status       string             `json:"status"`
	Is_read      bool               `json:"is_read"`
}
