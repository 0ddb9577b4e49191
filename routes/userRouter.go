package routes

import (
	controller "frontdash/controllers"
	"frontdash/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/users/signup", controller.SignUp())
	incomingRoutes.POST("/users/login", controller.Login())
}

func UserAdminRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/users", middleware.RequireRole("ADMIN"), controller.GetUsers())
	incomingRoutes.GET("/users/:user_id", middleware.RequireRole("ADMIN"), controller.GetUser())
}
