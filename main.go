package main

import (
	"log"
	"net/http"
	"os"

	"trova/config"
	"trova/jobs"
	"trova/routes"
	"trova/services"
	"trova/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	pricingService := services.NewPricingService(services.PricingServiceOptions{
		Rules:      services.NewGormRuleRepository(config.DB),
		Rooms:      services.NewGormRoomRepository(config.DB),
		Properties: services.NewGormPropertyRepository(config.DB),
		Prices:     services.NewGormRoomPriceStore(config.DB),
		Logger:     logger.NewDefaultLogger(logger.InfoLevel),
	})
	pricingAdapter := services.NewPricingServiceAdapter(pricingService)
	jobs.SetNightlyRepricer(pricingAdapter)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
