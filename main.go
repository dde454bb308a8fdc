package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"tourism/config"
	_ "tourism/docs"
	"tourism/routes"
)

// @title Tourism API
// @version 1.0
// @description REST backend cho nền tảng đặt tour và thuê xe.
// @BasePath /ru/api/v1
func main() {
	router, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	routes.SetupRoutes(router)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
