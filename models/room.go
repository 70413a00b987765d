package models

import (
	"fmt"
	"time"
)

type Room struct {
	RoomId          uint      `json:"id" gorm:"primaryKey"`
	PropertyID      uint      `json:"propertyId"`
	RoomName        string    `json:"roomName"`
	Type            uint      `json:"type"`
	NumBed          int       `json:"numBed"`
	NumTolet        int       `json:"numTolet"`
	Acreage         int       `json:"acreage"`
	Price           int       `json:"price"` // Giá mỗi đêm hiện tại, engine ghi đè khi chạy
	Description     string    `json:"description"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Status          int       `json:"status" gorm:"default:1"`
	LastLogicReason string    `json:"lastLogicReason"` // Lý do của lần đổi giá gần nhất
	People          int       `json:"people"`
	Parent          Property  `json:"parent" gorm:"foreignKey:PropertyID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 1 || r.Status > 3 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 3", r.Status)
	}
	return nil
}
