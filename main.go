package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/heliomart/solarstore-go/config"
	"github.com/heliomart/solarstore-go/db"
	"github.com/heliomart/solarstore-go/middleware"
	"github.com/heliomart/solarstore-go/minio"
	"github.com/heliomart/solarstore-go/routes"
)

// @title SolarStore API
// @version 1.0
// @description Storefront API for solar equipment: catalog, cart, checkout and account management.
// @BasePath /
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and run migrations
	db.Init()

	// Initialize object storage for product images
	minio.InitMinio()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
