package controllers

import (
	"net/url"
	"strconv"
	"time"

	"trova/config"
	"trova/constants"
	"trova/dto"
	"trova/models"
	"trova/response"
	"trova/services"
	"trova/validator"

	"github.com/gin-gonic/gin"
)

var layout = "02/01/2006"

func toPropertyResponse(property models.Property) dto.PropertyResponse {
	return dto.PropertyResponse{
		ID:           property.ID,
		Name:         property.Name,
		Type:         property.Type,
		Address:      property.Address,
		Status:       property.Status,
		BasePrice:    property.BasePrice,
		People:       property.People,
		NumBed:       property.NumBed,
		TimeCheckIn:  property.TimeCheckIn,
		TimeCheckOut: property.TimeCheckOut,
		Province:     property.Province,
		District:     property.District,
		Ward:         property.Ward,
		CreateAt:     property.CreateAt,
		UpdateAt:     property.UpdateAt,
	}
}

func GetAllProperties(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	statusFilter := c.Query("status")
	nameFilter := c.Query("name")
	provinceFilter := c.Query("province")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.Property{})
	if nameFilter != "" {
		decodedNameFilter, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ?", "%"+decodedNameFilter+"%")
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if provinceFilter != "" {
		tx = tx.Where("province = ?", provinceFilter)
	}

	var totalProperties int64
	if err := tx.Count(&totalProperties).Error; err != nil {
		response.ServerError(c)
		return
	}

	var properties []models.Property
	if err := tx.Order("update_at desc").Offset(page * limit).Limit(limit).Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	propertyResponses := make([]dto.PropertyResponse, 0, len(properties))
	for _, property := range properties {
		propertyResponses = append(propertyResponses, toPropertyResponse(property))
	}

	response.SuccessWithPagination(c, propertyResponses, page, limit, int(totalProperties))
}

// SearchProperties tìm chỗ ở theo tên gần đúng
func SearchProperties(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var properties []models.Property
	if err := config.DB.Where("status = ?", constants.PropertyStatusActive).Find(&properties).Error; err != nil {
		response.ServerError(c)
		return
	}

	matched := services.SearchProperties(properties, query, limit)
	propertyResponses := make([]dto.PropertyResponse, 0, len(matched))
	for _, property := range matched {
		propertyResponses = append(propertyResponses, toPropertyResponse(property))
	}

	response.Success(c, propertyResponses)
}

func GetPropertyDetail(c *gin.Context) {
	var property models.Property
	propertyId := c.Param("id")
	if err := config.DB.Preload("Rooms").Preload("Rules").Where("id = ?", propertyId).First(&property).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, property)
}

func CreateProperty(c *gin.Context) {
	var request dto.CreatePropertyRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	property := models.Property{
		Name:             request.Name,
		Type:             request.Type,
		Address:          request.Address,
		ShortDescription: request.ShortDescription,
		Description:      request.Description,
		BasePrice:        request.BasePrice,
		People:           request.People,
		NumBed:           request.NumBed,
		TimeCheckIn:      request.TimeCheckIn,
		TimeCheckOut:     request.TimeCheckOut,
		Province:         request.Province,
		District:         request.District,
		Ward:             request.Ward,
		CreateAt:         time.Now(),
		UpdateAt:         time.Now(),
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toPropertyResponse(property))
}

func UpdateProperty(c *gin.Context) {
	var request dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		property.Name = request.Name
	}
	if request.Type != nil {
		property.Type = *request.Type
	}
	if request.Address != "" {
		property.Address = request.Address
	}
	if request.ShortDescription != "" {
		property.ShortDescription = request.ShortDescription
	}
	if request.Description != "" {
		property.Description = request.Description
	}
	if request.BasePrice != nil {
		property.BasePrice = *request.BasePrice
	}
	if request.People != nil {
		property.People = *request.People
	}
	if request.NumBed != nil {
		property.NumBed = *request.NumBed
	}
	if request.TimeCheckIn != "" {
		property.TimeCheckIn = request.TimeCheckIn
	}
	if request.TimeCheckOut != "" {
		property.TimeCheckOut = request.TimeCheckOut
	}
	if request.Province != "" {
		property.Province = request.Province
	}
	if request.District != "" {
		property.District = request.District
	}
	if request.Ward != "" {
		property.Ward = request.Ward
	}

	if err := validator.ValidateProperty(&property); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	property.UpdateAt = time.Now()
	if err := config.DB.Save(&property).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toPropertyResponse(property))
}

func ChangePropertyStatus(c *gin.Context) {
	var request dto.ChangePropertyStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	property.Status = request.Status
	if err := property.ValidateStatus(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Model(&property).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toPropertyResponse(property))
}
