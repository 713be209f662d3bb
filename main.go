package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"cafe-storefront/config"
	"cafe-storefront/models"
	"cafe-storefront/repositories"
	"cafe-storefront/routes"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	repo := repositories.NewMemoryRepository()

	email, err := models.NewEmailService()
	if err != nil {
		log.Printf("Email disabled: %v", err)
		email = nil
	}

	router := routes.New(config.AppConfig, repo, email)

	port := ":" + config.AppConfig.Port
	log.Printf("Dev backend starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Seeded admin account: admin@cafe.test / password123")

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
