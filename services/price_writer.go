package services

import (
	"context"
	"strings"

	"trova/models"
)

// NoRulesMatchedReason là lý do ghi lại khi không có rule nào khớp.
const NoRulesMatchedReason = "Base price (no rules matched)"

// PriceWriter ghi giá mới cho phòng khi giá thay đổi so với giá đang lưu.
type PriceWriter struct {
	store RoomPriceStore
}

func NewPriceWriter(store RoomPriceStore) *PriceWriter {
	return &PriceWriter{store: store}
}

// WriteIfChanged so sánh giá mới với giá đang lưu của phòng; chỉ ghi khi khác
// nhau, mỗi phòng tối đa một lần ghi. Trả về true nếu có ghi. Room được cập
// nhật tại chỗ sau khi ghi thành công.
func (w *PriceWriter) WriteIfChanged(ctx context.Context, room *models.Room, newPrice int, applied []string) (bool, error) {
	if newPrice == room.Price {
		return false, nil
	}

	reason := ReasonText(applied)
	if err := w.store.UpdateRoomPrice(ctx, room.RoomId, newPrice, reason); err != nil {
		return false, err
	}

	room.Price = newPrice
	room.LastLogicReason = reason
	return true, nil
}

// ReasonText dựng chuỗi lý do từ danh sách tên rule đã khớp theo thứ tự đánh giá.
func ReasonText(applied []string) string {
	if len(applied) == 0 {
		return NoRulesMatchedReason
	}
	return strings.Join(applied, ", ")
}
