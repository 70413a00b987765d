package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePropertyRequest là DTO cho yêu cầu tạo mới chỗ ở
type CreatePropertyRequest struct {
	Name             string          `json:"name" binding:"required"`
	Type             int             `json:"type"`
	Address          string          `json:"address"`
	ShortDescription string          `json:"shortDescription"`
	Description      string          `json:"description"`
	BasePrice        decimal.Decimal `json:"basePrice" binding:"required"`
	People           int             `json:"people"`
	NumBed           int             `json:"numBed"`
	TimeCheckIn      string          `json:"timeCheckIn"`
	TimeCheckOut     string          `json:"timeCheckOut"`
	Province         string          `json:"province"`
	District         string          `json:"district"`
	Ward             string          `json:"ward"`
}

// UpdatePropertyRequest là DTO cho yêu cầu cập nhật chỗ ở
type UpdatePropertyRequest struct {
	ID               uint             `json:"id" binding:"required"`
	Name             string           `json:"name"`
	Type             *int             `json:"type"`
	Address          string           `json:"address"`
	ShortDescription string           `json:"shortDescription"`
	Description      string           `json:"description"`
	BasePrice        *decimal.Decimal `json:"basePrice"`
	People           *int             `json:"people"`
	NumBed           *int             `json:"numBed"`
	TimeCheckIn      string           `json:"timeCheckIn"`
	TimeCheckOut     string           `json:"timeCheckOut"`
	Province         string           `json:"province"`
	District         string           `json:"district"`
	Ward             string           `json:"ward"`
}

// ChangePropertyStatusRequest là DTO cho yêu cầu thay đổi trạng thái chỗ ở
type ChangePropertyStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// PropertyResponse là DTO cho response của chỗ ở
type PropertyResponse struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Type         int             `json:"type"`
	Address      string          `json:"address"`
	Status       int             `json:"status"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	People       int             `json:"people"`
	NumBed       int             `json:"numBed"`
	TimeCheckIn  string          `json:"timeCheckIn"`
	TimeCheckOut string          `json:"timeCheckOut"`
	Province     string          `json:"province"`
	District     string          `json:"district"`
	Ward         string          `json:"ward"`
	CreateAt     time.Time       `json:"createAt"`
	UpdateAt     time.Time       `json:"updateAt"`
}
