package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          *string            `json:"name" validate:"required,min=2,max=100"`
	Password      *string            `json:"password" validate:"required,min=8"`
	Email         *string            `json:"email" validate:"email,required"`
	Avatar        *string            `json:"avatar"`
	Phone         *string            `json:"phone" validate:"required"`
	User_role     *string            `json:"user_role" validate:"required,eq=ADMIN|eq=STAFF|eq=RESTAURANT"`
	Restaurant_id *string            `json:"restaurant_id"` // set for RESTAURANT accounts

	Token         *string   `json:"token"`
	Refresh_Token *string   `json:"refresh_token"`
	Created_at    time.Time `json:"created_at"`
	Updated_at    time.Time `json:"updated_at"`
	User_id       string    `json:"user_id"`
}

type Driver struct {
	ID           primitive.ObjectID `bson:"_id"`
	Driver_id    string             `json:"driver_id"`
	First_name   *string            `json:"first_name" validate:"required"`
	Last_name    *string            `json:"last_name" validate:"required"`
	Username     *string            `json:"username" validate:"required"`
	Status       string             `json:"status"` // active, inactive
	Is_available bool               `json:"is_available"`
	Start_date   time.Time          `json:"start_date"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
}
