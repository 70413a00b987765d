package services

import (
	"context"
	"encoding/json"

	"trova/utils"

	"github.com/olahol/melody"
)

// PricingServiceAdapter nối PricingService vào cron job chạy đêm và broadcast
// kết quả qua websocket.
type PricingServiceAdapter struct {
	service *PricingService
}

func NewPricingServiceAdapter(service *PricingService) *PricingServiceAdapter {
	return &PricingServiceAdapter{service: service}
}

// RepriceAll chạy engine cho toàn bộ chỗ ở và gửi tóm tắt cho các client đang kết nối
func (a *PricingServiceAdapter) RepriceAll(m *melody.Melody) error {
	result := a.service.RunAll(context.Background())
	utils.LogInfo("pricing run: processed=%d updated=%d success=%v",
		result.PropertiesProcessed, result.TotalUpdated, result.Success)

	if m != nil {
		b, err := json.Marshal(result)
		if err != nil {
			return err
		}
		return m.Broadcast(b)
	}
	return nil
}
