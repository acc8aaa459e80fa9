package main

import (
	"fmt"
	"log"
	"os"

	"hydrogen-cost/internal/api/handlers"
	"hydrogen-cost/internal/api/middleware"
	"hydrogen-cost/internal/lcoh"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	engine := lcoh.New(nil)
	lcohHandler := handlers.NewLCOHHandler(engine)
	technologyHandler := handlers.NewTechnologyHandler(engine.Catalog())
	analysisHandler := handlers.NewAnalysisHandler(engine)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/lcoh", lcohHandler.Calculate)
		api.POST("/lcoh/curve", lcohHandler.Curve)
		api.POST("/lcoh/matrix", lcohHandler.Matrix)

		api.GET("/technologies", technologyHandler.ListTechnologies)

		api.POST("/steel/compare", analysisHandler.CompareSteel)
		api.POST("/fuel/substitution", analysisHandler.FuelSubstitution)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
