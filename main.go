package main

import (
	"log"

	"github.com/storeapp/storeapi/config"
	"github.com/storeapp/storeapi/controllers"
	"github.com/storeapp/storeapi/routes"
	"github.com/storeapp/storeapi/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Admin accounts are not self-registrable, seed one if configured
	if err := controllers.CreateDefaultAdmin(); err != nil {
		utils.LogError("Failed to create default admin: %v", err)
		log.Fatal("Failed to create default admin:", err)
	}

	// Initialize Google OAuth
	config.InitGoogleOAuth()

	// Build the payment gateway client from config
	controllers.InitGateway(cfg)

	// Set up router
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
