package main

import (
	"net/http"
	"os"

	"idish-backend/config"
	"idish-backend/handlers"
	"idish-backend/routes"
	"idish-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	config.LoadEnv()
	config.InitDB()
	handlers.Store = storage.New(config.UploadDir, "/uploads")

	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "iDISH Backend",
		})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "iDISH Backend is running",
			"health":  "/health",
			"roles":   []string{"chef", "customer"},
		})
	})

	// stored images are public
	r.Static("/uploads", config.UploadDir)

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	logrus.Infof("server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
