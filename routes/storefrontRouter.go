package routes

import (
	"frontdash/controllers"

	"github.com/gin-gonic/gin"
)

// StorefrontRoutes are the public customer endpoints: browsing, cart
// sessions, checkout and order tracking.
func StorefrontRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/restaurants", controllers.GetRestaurants())
	incomingRoutes.GET("/restaurants/:restaurant_id", controllers.GetRestaurant())

	incomingRoutes.POST("/sessions", controllers.CreateSession())
	incomingRoutes.DELETE("/sessions/:session_id", controllers.DeleteSession())
	incomingRoutes.GET("/cart", controllers.GetCart())
	incomingRoutes.POST("/cart/items", controllers.AddCartItem())
	incomingRoutes.DELETE("/cart/items/:item_id", controllers.RemoveCartItem())
	incomingRoutes.DELETE("/cart", controllers.ClearCart())

	incomingRoutes.POST("/checkout", controllers.PlaceOrder())
	incomingRoutes.GET("/track/:order_number", controllers.TrackOrder())
	incomingRoutes.GET("/ws", controllers.HandleWebSocket())

	incomingRoutes.POST("/restaurant-registrations", controllers.CreateRegistration())
}
