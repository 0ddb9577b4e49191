package routes

import (
	"frontdash/controllers"
	"frontdash/middleware"

	"github.com/gin-gonic/gin"
)

// OrderRoutes are the authenticated order views and lifecycle actions for
// the three portals.
func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", middleware.RequireRole("ADMIN"), controllers.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder())
	incomingRoutes.PATCH("/orders/:order_id/status", controllers.UpdateOrderStatus())

	incomingRoutes.GET("/staff/orders", middleware.RequireRole("STAFF", "ADMIN"), controllers.GetStaffOrders())
	incomingRoutes.POST("/orders/:order_id/assign", middleware.RequireRole("STAFF", "ADMIN"), controllers.AssignDriver())

	incomingRoutes.GET("/portal/orders", middleware.RequireRole("RESTAURANT"), controllers.GetRestaurantOrders())

	incomingRoutes.GET("/notifications", controllers.GetNotifications())
	incomingRoutes.PATCH("/notifications/:notification_id", controllers.MarkNotificationRead())
}
