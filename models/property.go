package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Property struct {
	ID           uint            `json:"id" gorm:"primaryKey"` // ID cho chỗ ở
	Type         int             `json:"type"`                 // Loại chỗ ở (type)
	Name         string          `json:"name"`                 // Tên chỗ ở
	Address      string          `json:"address"`              // Địa chỉ
	CreateAt     time.Time       `gorm:"autoCreateTime"`
	UpdateAt     time.Time       `gorm:"autoUpdateTime"`
	ShortDescription string      `json:"shortDescription"` // Mô tả ngắn
	Description  string          `json:"description"`      // Mô tả chi tiết
	Status       int             `json:"status"`
	BasePrice    decimal.Decimal `json:"basePrice" gorm:"type:decimal(12,2)"` // Giá cơ bản mỗi đêm, mọi rule tính từ giá này
	Rooms        []Room          `json:"rooms" gorm:"foreignKey:PropertyID"`  // Danh sách các phòng
	Rules        []PricingRule   `json:"rules" gorm:"foreignKey:PropertyID"`  // Danh sách rule giá
	People       int             `json:"people"`
	NumBed       int             `json:"numBed"`
	TimeCheckOut string          `json:"timeCheckOut"`
	TimeCheckIn  string          `json:"timeCheckIn"`
	Province     string          `json:"province"`
	District     string          `json:"district"`
	Ward         string          `json:"ward"`
}

func (p *Property) ValidateType() error {
	if p.Type < 0 || p.Type > 4 {
		return fmt.Errorf("invalid Type: %d, must be between 0 and 4", p.Type)
	}
	return nil
}

func (p *Property) ValidateStatus() error {
	if p.Status < 0 || p.Status > 4 {
		return fmt.Errorf("invalid Status: %d, must be between 0 and 4", p.Status)
	}
	return nil
}
