package dto

import (
	"time"
)

// CreateRoomRequest là DTO cho yêu cầu tạo mới phòng
type CreateRoomRequest struct {
	PropertyID  uint   `json:"propertyId" binding:"required"`
	RoomName    string `json:"roomName" binding:"required"`
	Type        uint   `json:"type"`
	NumBed      int    `json:"numBed"`
	NumTolet    int    `json:"numTolet"`
	Acreage     int    `json:"acreage"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	People      int    `json:"people"`
}

// UpdateRoomRequest là DTO cho yêu cầu cập nhật phòng
type UpdateRoomRequest struct {
	RoomId      uint   `json:"id" binding:"required"`
	RoomName    string `json:"roomName"`
	Type        *uint  `json:"type"`
	NumBed      *int   `json:"numBed"`
	NumTolet    *int   `json:"numTolet"`
	Acreage     *int   `json:"acreage"`
	Price       *int   `json:"price"`
	Description string `json:"description"`
	People      *int   `json:"people"`
}

// ChangeRoomStatusRequest là DTO cho yêu cầu thay đổi trạng thái phòng
type ChangeRoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	RoomId          uint      `json:"id"`
	RoomName        string    `json:"roomName"`
	Type            uint      `json:"type"`
	NumBed          int       `json:"numBed"`
	NumTolet        int       `json:"numTolet"`
	Acreage         int       `json:"acreage"`
	Price           int       `json:"price"`
	Status          int       `json:"status"`
	LastLogicReason string    `json:"lastLogicReason"`
	People          int       `json:"people"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Parents         Parents   `json:"parents"`
}

// Parents là DTO cho thông tin cha của room
type Parents struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}
