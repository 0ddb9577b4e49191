package main

import (
	"log"
	"os"
	"time"

	"frontdash/middleware"
	"frontdash/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// public storefront and account endpoints
	routes.StorefrontRoutes(router)
	routes.UserRoutes(router)

	// portal endpoints behind the token middleware
	router.Use(middleware.Authentication())
	routes.UserAdminRoutes(router)
	routes.OrderRoutes(router)
	routes.RestaurantPortalRoutes(router)
	routes.AdminRoutes(router)

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
