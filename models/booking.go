package models

import (
	"time"
)

type Booking struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Code         string    `json:"code" gorm:"uniqueIndex"` // Mã đặt phòng
	PropertyID   uint      `json:"propertyId"`
	RoomID       uint      `json:"roomId"`
	GuestName    string    `json:"guestName"`
	GuestEmail   string    `json:"guestEmail"`
	GuestPhone   string    `json:"guestPhone"`
	CheckInDate  string    `json:"checkInDate"`  // Ngày nhận phòng dd/mm/yyyy
	CheckOutDate string    `json:"checkOutDate"` // Ngày trả phòng dd/mm/yyyy
	NightlyPrice int       `json:"nightlyPrice"` // Giá mỗi đêm chốt tại thời điểm đặt
	Status       int       `json:"status" gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Property     Property  `json:"property" gorm:"foreignKey:PropertyID"`
	Room         Room      `json:"room" gorm:"foreignKey:RoomID"`
}
