package controllers

import (
	"strconv"

	"trova/config"
	"trova/dto"
	"trova/models"
	"trova/response"
	"trova/validator"

	"github.com/gin-gonic/gin"
)

func toRoomResponse(room models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		RoomId:          room.RoomId,
		RoomName:        room.RoomName,
		Type:            room.Type,
		NumBed:          room.NumBed,
		NumTolet:        room.NumTolet,
		Acreage:         room.Acreage,
		Price:           room.Price,
		Status:          room.Status,
		LastLogicReason: room.LastLogicReason,
		People:          room.People,
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
		Parents: dto.Parents{
			Id:   room.Parent.ID,
			Name: room.Parent.Name,
		},
	}
}

func GetAllRooms(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	propertyIdStr := c.Query("propertyId")
	statusFilter := c.Query("status")
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

	tx := config.DB.Model(&models.Room{}).Preload("Parent")
	if propertyIdStr != "" {
		tx = tx.Where("property_id = ?", propertyIdStr)
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var totalRooms int64
	if err := tx.Count(&totalRooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := tx.Order("updated_at desc").Offset(page * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, toRoomResponse(room))
	}

	response.SuccessWithPagination(c, roomResponses, page, limit, int(totalRooms))
}

func GetRoomDetail(c *gin.Context) {
	var room models.Room
	roomId := c.Param("id")
	if err := config.DB.Preload("Parent").Where("room_id = ?", roomId).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toRoomResponse(room))
}

func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.PropertyID).Error; err != nil {
		response.BadRequest(c, "Chỗ ở không tồn tại")
		return
	}

	room := models.Room{
		PropertyID:  request.PropertyID,
		RoomName:    request.RoomName,
		Type:        request.Type,
		NumBed:      request.NumBed,
		NumTolet:    request.NumTolet,
		Acreage:     request.Acreage,
		Price:       request.Price,
		Description: request.Description,
		People:      request.People,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	room.Parent = property
	response.Success(c, toRoomResponse(room))
}

func UpdateRoom(c *gin.Context) {
	var request dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("Parent").Where("room_id = ?", request.RoomId).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.RoomName != "" {
		room.RoomName = request.RoomName
	}
	if request.Type != nil {
		room.Type = *request.Type
	}
	if request.NumBed != nil {
		room.NumBed = *request.NumBed
	}
	if request.NumTolet != nil {
		room.NumTolet = *request.NumTolet
	}
	if request.Acreage != nil {
		room.Acreage = *request.Acreage
	}
	if request.Price != nil {
		room.Price = *request.Price
	}
	if request.Description != "" {
		room.Description = request.Description
	}
	if request.People != nil {
		room.People = *request.People
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toRoomResponse(room))
}

// ChangeRoomStatus đổi trạng thái phòng. Engine tính giá không bao giờ đụng
// vào status; chỉ flow quản lý và đặt phòng đổi trạng thái.
func ChangeRoomStatus(c *gin.Context) {
	var request dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ?", request.ID).First(&room).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = request.Status
	if err := room.ValidateStatus(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Model(&room).Update("status", request.Status).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toRoomResponse(room))
}
