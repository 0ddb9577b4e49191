package routes

import (
	"frontdash/controllers"
	"frontdash/middleware"

	"github.com/gin-gonic/gin"
)

// RestaurantPortalRoutes are the authenticated restaurant portal actions:
// menu management and platform withdrawal.
func RestaurantPortalRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/menu-items", middleware.RequireRole("RESTAURANT"), controllers.CreateMenuItem())
	incomingRoutes.PATCH("/menu-items/:menu_item_id", middleware.RequireRole("RESTAURANT"), controllers.UpdateMenuItem())
	incomingRoutes.DELETE("/menu-items/:menu_item_id", middleware.RequireRole("RESTAURANT"), controllers.DeleteMenuItem())

	incomingRoutes.POST("/withdrawal-requests", middleware.RequireRole("RESTAURANT"), controllers.CreateWithdrawalRequest())
}
