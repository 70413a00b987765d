package routes

import (
	"trova/controllers"
	"trova/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	pricingService := services.NewPricingService(services.PricingServiceOptions{
		Rules:      services.NewGormRuleRepository(db),
		Rooms:      services.NewGormRoomRepository(db),
		Properties: services.NewGormPropertyRepository(db),
		Prices:     services.NewGormRoomPriceStore(db),
	})
	pricingController := controllers.NewPricingController(pricingService, redisCli)

	v1 := router.Group("/api/v1")

	v1.GET("/properties", controllers.GetAllProperties)
	v1.GET("/properties/search", controllers.SearchProperties)
	v1.POST("/properties", controllers.CreateProperty)
	v1.GET("/properties/:id", controllers.GetPropertyDetail)
	v1.PUT("/propertyUpdate", controllers.UpdateProperty)
	v1.PUT("/propertyStatus", controllers.ChangePropertyStatus)

	v1.GET("/room", controllers.GetAllRooms)
	v1.POST("/room", controllers.CreateRoom)
	v1.GET("/room/:id", controllers.GetRoomDetail)
	v1.PUT("/roomUpdate", controllers.UpdateRoom)
	v1.PUT("/roomStatus", controllers.ChangeRoomStatus)

	v1.GET("/rules", controllers.GetPricingRules)
	v1.POST("/rules", controllers.CreatePricingRule)
	v1.GET("/rules/:id", controllers.GetPricingRuleDetail)
	v1.PUT("/ruleUpdate", controllers.UpdatePricingRule)
	v1.PUT("/ruleActive", controllers.ChangeRuleActive)
	v1.DELETE("/rules/:id", controllers.DeletePricingRule)

	v1.GET("/booking", controllers.GetBookings)
	v1.POST("/booking", controllers.CreateBooking)
	v1.GET("/booking/:id", controllers.GetBookingDetail)
	v1.PUT("/bookingUpdate", controllers.ChangeBookingStatus)

	v1.POST("/pricing/execute/:id", pricingController.ExecuteProperty)
	v1.POST("/pricing/executeAll", pricingController.ExecuteAll)
	v1.GET("/pricing/lastRun/:id", pricingController.GetLastRun)
}
