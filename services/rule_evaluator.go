package services

import (
	"math"
	"time"

	"trova/constants"
	"trova/models"

	"github.com/shopspring/decimal"
)

// EvaluateRules tính giá mỗi đêm cho một phòng từ giá cơ bản và danh sách rule
// đã được sắp theo priority giảm dần. Mỗi rule khớp sẽ tính lại từ giá cơ bản
// và ghi đè kết quả trước đó, không cộng dồn và không dừng sớm: rule khớp cuối
// cùng theo thứ tự đánh giá quyết định giá cuối. Trả về giá đã làm tròn và tên
// các rule đã khớp theo thứ tự đánh giá.
func EvaluateRules(basePrice decimal.Decimal, room models.Room, rules []models.PricingRule, today time.Time) (int, []string) {
	base := basePrice.InexactFloat64()
	price := base
	applied := []string{}

	for _, rule := range rules {
		if !ruleApplies(rule, room, today) {
			continue
		}
		price = applyAction(base, rule.DecodeAction())
		applied = append(applied, rule.Name)
	}

	rounded := int(math.Round(price))
	if rounded < 0 {
		rounded = 0
	}
	return rounded, applied
}

// ruleApplies kiểm tra các điều kiện chung của rule: khoảng ngày (khi cả hai
// mốc đều được đặt, date_from tính từ đầu ngày, date_to tính đến cuối ngày)
// và thứ trong tuần (Chủ nhật = 0). Các trường điều kiện theo rule_type như
// days_before_checkin, min_length, gap_nights không được đánh giá ở đây;
// riêng gap_night kiểm tra lại phòng còn trống, luôn đúng vì danh sách phòng
// đã được lọc trước.
func ruleApplies(rule models.PricingRule, room models.Room, today time.Time) bool {
	if rule.DateFrom != nil && rule.DateTo != nil {
		from := startOfDay(*rule.DateFrom, today.Location())
		to := endOfDay(*rule.DateTo, today.Location())
		if today.Before(from) || today.After(to) {
			return false
		}
	}

	if len(rule.DaysOfWeek) > 0 {
		weekday := int64(today.Weekday())
		found := false
		for _, day := range rule.DaysOfWeek {
			if day == weekday {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if rule.RuleType == models.RuleTypeGapNight && room.Status != constants.RoomStatusAvailable {
		return false
	}

	return true
}

// applyAction áp action lên giá cơ bản. Action không hợp lệ trả về nguyên giá.
func applyAction(basePrice float64, action models.RuleAction) float64 {
	switch action.Type {
	case models.ActionTypeDiscount:
		return basePrice * (1 - action.Value/100)
	case models.ActionTypeSurge:
		return basePrice * (1 + action.Value/100)
	default:
		return basePrice
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}
