package routes

import (
	"frontdash/controllers"
	"frontdash/middleware"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/drivers", middleware.RequireRole("ADMIN", "STAFF"), controllers.GetDrivers())
	incomingRoutes.POST("/drivers", middleware.RequireRole("ADMIN"), controllers.CreateDriver())
	incomingRoutes.PATCH("/drivers/:driver_id", middleware.RequireRole("ADMIN"), controllers.UpdateDriver())
	incomingRoutes.DELETE("/drivers/:driver_id", middleware.RequireRole("ADMIN"), controllers.DeleteDriver())

	incomingRoutes.GET("/registrations", middleware.RequireRole("ADMIN"), controllers.GetRegistrations())
	incomingRoutes.PATCH("/registrations/:registration_id", middleware.RequireRole("ADMIN"), controllers.ReviewRegistration())

	incomingRoutes.GET("/withdrawal-requests", middleware.RequireRole("ADMIN"), controllers.GetWithdrawalRequests())
	incomingRoutes.PATCH("/withdrawal-requests/:withdrawal_id", middleware.RequireRole("ADMIN"), controllers.ReviewWithdrawalRequest())
}
