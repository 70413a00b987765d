package dto

import "time"

// CreateBookingRequest là DTO cho form đặt phòng của khách
type CreateBookingRequest struct {
	PropertyID   uint   `json:"propertyId" binding:"required"`
	RoomID       uint   `json:"roomId" binding:"required"`
	GuestName    string `json:"guestName" binding:"required"`
	GuestEmail   string `json:"guestEmail"`
	GuestPhone   string `json:"guestPhone" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`  // dd/mm/yyyy
	CheckOutDate string `json:"checkOutDate" binding:"required"` // dd/mm/yyyy
}

// ChangeBookingStatusRequest là DTO cho yêu cầu thay đổi trạng thái đặt phòng
type ChangeBookingStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// BookingResponse là DTO cho response của đặt phòng
type BookingResponse struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	PropertyID   uint      `json:"propertyId"`
	RoomID       uint      `json:"roomId"`
	GuestName    string    `json:"guestName"`
	GuestEmail   string    `json:"guestEmail"`
	GuestPhone   string    `json:"guestPhone"`
	CheckInDate  string    `json:"checkInDate"`
	CheckOutDate string    `json:"checkOutDate"`
	NightlyPrice int       `json:"nightlyPrice"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
