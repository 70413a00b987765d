package controllers

import (
	"log"
	"strconv"

	"trova/response"
	"trova/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// PricingController cung cấp entry point "Execute Now" cho engine tính giá
type PricingController struct {
	service *services.PricingService
	redis   *redis.Client
}

func NewPricingController(service *services.PricingService, redisCli *redis.Client) *PricingController {
	return &PricingController{
		service: service,
		redis:   redisCli,
	}
}

// ExecuteProperty chạy engine cho một chỗ ở
func (pc *PricingController) ExecuteProperty(c *gin.Context) {
	propertyId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID chỗ ở không hợp lệ")
		return
	}

	result := pc.service.RunProperty(c.Request.Context(), uint(propertyId))

	if result.Success {
		if err := services.SaveLastRun(c.Request.Context(), pc.redis, &result); err != nil {
			log.Printf("Lỗi khi lưu kết quả run vào Redis: %v", err)
		}
	}

	response.Success(c, result)
}

// ExecuteAll chạy engine cho toàn bộ chỗ ở
func (pc *PricingController) ExecuteAll(c *gin.Context) {
	result := pc.service.RunAll(c.Request.Context())
	response.Success(c, result)
}

// GetLastRun trả về kết quả lần chạy gần nhất của một chỗ ở
func (pc *PricingController) GetLastRun(c *gin.Context) {
	propertyId, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "ID chỗ ở không hợp lệ")
		return
	}

	result, err := services.GetLastRun(c.Request.Context(), pc.redis, uint(propertyId))
	if err == redis.Nil {
		response.NotFound(c)
		return
	}
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, result)
}
