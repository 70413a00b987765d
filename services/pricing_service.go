package services

import (
	"context"
	goerrors "errors"
	"time"

	"trova/errors"
	"trova/services/logger"
)

// PropertyRunResult là kết quả chạy engine cho một chỗ ở
type PropertyRunResult struct {
	Success        bool     `json:"success"`
	PropertyID     uint     `json:"propertyId"`
	UpdatedRooms   int      `json:"updatedRooms"`
	AppliedRules   []string `json:"appliedRules"`
	EvaluatedRules int      `json:"evaluatedRules"`
}

// PortfolioRunResult là kết quả chạy engine cho toàn bộ chỗ ở
type PortfolioRunResult struct {
	Success             bool `json:"success"`
	PropertiesProcessed int  `json:"propertiesProcessed"`
	TotalUpdated        int  `json:"totalUpdated"`
}

// PricingService chạy engine tính giá: nạp rule, phòng và giá cơ bản của từng
// chỗ ở, đánh giá từng phòng rồi ghi các giá thay đổi. Không giữ state giữa
// các lần chạy; mỗi lần chạy đọc lại dữ liệu hiện tại.
type PricingService struct {
	rules      RuleRepository
	rooms      RoomRepository
	properties PropertyRepository
	writer     *PriceWriter
	logger     logger.Logger
	now        func() time.Time
}

type PricingServiceOptions struct {
	Rules      RuleRepository
	Rooms      RoomRepository
	Properties PropertyRepository
	Prices     RoomPriceStore
	Logger     logger.Logger
}

func NewPricingService(opts PricingServiceOptions) *PricingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PricingService{
		rules:      opts.Rules,
		rooms:      opts.Rooms,
		properties: opts.Properties,
		writer:     NewPriceWriter(opts.Prices),
		logger:     l,
		now:        time.Now,
	}
}

// RunProperty chạy engine cho một chỗ ở. Không trả error ra ngoài: mọi lỗi
// truy cập dữ liệu được gói thành kết quả Success=false kèm các số đếm đã
// hoàn thành tới thời điểm lỗi.
func (s *PricingService) RunProperty(ctx context.Context, propertyID uint) PropertyRunResult {
	result := PropertyRunResult{
		PropertyID:   propertyID,
		AppliedRules: []string{},
	}

	basePrice, err := s.properties.GetBasePrice(ctx, propertyID)
	if err != nil {
		if goerrors.Is(err, errors.ErrPropertyNotFound) {
			s.logger.Warn("pricing: property %d không tồn tại", propertyID)
		} else {
			s.logger.Error("pricing: property %d: %v", propertyID, err)
		}
		return result
	}

	rules, err := s.rules.ListActiveRules(ctx, propertyID)
	if err != nil {
		s.logger.Error("pricing: property %d: %v", propertyID, err)
		return result
	}

	rooms, err := s.rooms.ListAvailableRooms(ctx, propertyID)
	if err != nil {
		s.logger.Error("pricing: property %d: %v", propertyID, err)
		return result
	}

	result.EvaluatedRules = len(rules)
	today := s.now()
	seen := make(map[string]bool)

	for i := range rooms {
		room := &rooms[i]
		newPrice, applied := EvaluateRules(basePrice, *room, rules, today)

		changed, err := s.writer.WriteIfChanged(ctx, room, newPrice, applied)
		if err != nil {
			// Lỗi ghi hủy phần còn lại của chỗ ở này, giữ lại những gì đã xong
			s.logger.Error("pricing: property %d room %d: %v", propertyID, room.RoomId, err)
			return result
		}
		if changed {
			result.UpdatedRooms++
		}

		for _, name := range applied {
			if !seen[name] {
				seen[name] = true
				result.AppliedRules = append(result.AppliedRules, name)
			}
		}
	}

	result.Success = true
	return result
}

// RunAll chạy engine tuần tự cho mọi chỗ ở. Một chỗ ở lỗi không dừng vòng
// lặp; PropertiesProcessed đếm số lần thử, TotalUpdated chỉ cộng các lần
// chạy thành công.
func (s *PricingService) RunAll(ctx context.Context) PortfolioRunResult {
	result := PortfolioRunResult{}

	ids, err := s.properties.ListPropertyIDs(ctx)
	if err != nil {
		s.logger.Error("pricing: không lấy được danh sách chỗ ở: %v", err)
		return result
	}

	for _, id := range ids {
		propertyResult := s.RunProperty(ctx, id)
		result.PropertiesProcessed++
		if propertyResult.Success {
			result.TotalUpdated += propertyResult.UpdatedRooms
		}
	}

	result.Success = true
	return result
}
