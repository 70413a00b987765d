package controllers

import (
	"strconv"

	"trova/builders"
	"trova/commands"
	"trova/config"
	"trova/constants"
	"trova/dto"
	"trova/models"
	"trova/response"
	"trova/validator"

	"github.com/gin-gonic/gin"
)

func toBookingResponse(booking models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:           booking.ID,
		Code:         booking.Code,
		PropertyID:   booking.PropertyID,
		RoomID:       booking.RoomID,
		GuestName:    booking.GuestName,
		GuestEmail:   booking.GuestEmail,
		GuestPhone:   booking.GuestPhone,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		NightlyPrice: booking.NightlyPrice,
		Status:       booking.Status,
		CreatedAt:    booking.CreatedAt,
	}
}

func GetBookings(c *gin.Context) {
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

	tx := config.DB.Model(&models.Booking{})
	if propertyIdStr != "" {
		tx = tx.Where("property_id = ?", propertyIdStr)
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}

	var totalBookings int64
	if err := tx.Count(&totalBookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, toBookingResponse(booking))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(totalBookings))
}

func GetBookingDetail(c *gin.Context) {
	var booking models.Booking
	bookingId := c.Param("id")
	if err := config.DB.Where("id = ?", bookingId).First(&booking).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toBookingResponse(booking))
}

// CreateBooking nhận form đặt phòng của khách. Giá mỗi đêm được chốt theo giá
// hiện tại của phòng; tổng tiền, thuế và phụ thu do module khác tính.
func CreateBooking(c *gin.Context) {
	var request dto.CreateBookingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Where("room_id = ? AND property_id = ?", request.RoomID, request.PropertyID).First(&room).Error; err != nil {
		response.BadRequest(c, "Phòng không tồn tại")
		return
	}

	if room.Status != constants.RoomStatusAvailable {
		response.Conflict(c)
		return
	}

	booking := builders.NewBookingBuilder().
		WithProperty(request.PropertyID).
		WithRoom(request.RoomID).
		WithGuestInfo(request.GuestName, request.GuestPhone, request.GuestEmail).
		WithCheckIn(request.CheckInDate).
		WithCheckOut(request.CheckOutDate).
		WithNightlyPrice(room.Price).
		WithStatus(constants.BookingStatusPending).
		Build()

	if err := validator.ValidateBooking(booking); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := commands.NewCreateBookingCommand(booking, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	// Phòng đã đặt chuyển sang trạng thái occupied
	if err := config.DB.Model(&room).Update("status", constants.RoomStatusOccupied).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toBookingResponse(*booking))
}

func ChangeBookingStatus(c *gin.Context) {
	var request dto.ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.Status < constants.BookingStatusPending || request.Status > constants.BookingStatusCancelled {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	var booking models.Booking
	if err := config.DB.First(&booking, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	booking.Status = request.Status
	if err := commands.NewUpdateBookingCommand(&booking, config.DB).Execute(); err != nil {
		response.ServerError(c)
		return
	}

	// Trả phòng hoặc hủy đặt thì phòng trống trở lại
	if request.Status == constants.BookingStatusCompleted || request.Status == constants.BookingStatusCancelled {
		if err := config.DB.Model(&models.Room{}).
			Where("room_id = ?", booking.RoomID).
			Update("status", constants.RoomStatusAvailable).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, toBookingResponse(booking))
}
