package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Các loại rule giá
const (
	RuleTypeLastMinute   = "last_minute"
	RuleTypeLengthOfStay = "length_of_stay"
	RuleTypeWeekend      = "weekend"
	RuleTypeSeasonal     = "seasonal"
	RuleTypeGapNight     = "gap_night"
	RuleTypeOrphanDay    = "orphan_day"
	RuleTypeEventBased   = "event_based"
	RuleTypeCustom       = "custom"
)

// Các loại action
const (
	ActionTypeDiscount = "discount"
	ActionTypeSurge    = "surge"
)

type PricingRule struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	PropertyID uint            `json:"propertyId" gorm:"index"`
	Name       string          `json:"name"`
	RuleType   string          `json:"ruleType"`
	Priority   int             `json:"priority"` // Cao hơn được đánh giá trước khi fetch
	IsActive   bool            `json:"isActive" gorm:"default:true"`
	Conditions json.RawMessage `json:"conditions" gorm:"type:json"` // Điều kiện theo rule_type
	Action     json.RawMessage `json:"action" gorm:"type:json"`     // {type, value, unit}
	DateFrom   *time.Time      `json:"dateFrom"`                    // Ngày bắt đầu áp dụng (tùy chọn)
	DateTo     *time.Time      `json:"dateTo"`                      // Ngày kết thúc áp dụng (tùy chọn)
	DaysOfWeek pq.Int64Array   `json:"daysOfWeek" gorm:"type:integer[]"` // 0-6, Chủ nhật = 0
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// RuleAction là action đã decode từ cột JSON.
type RuleAction struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// RuleConditions chứa các trường điều kiện theo rule_type. Các trường này được
// form tạo rule ghi lại nhưng engine hiện chưa dùng đến khi đánh giá.
type RuleConditions struct {
	DaysBeforeCheckin int `json:"days_before_checkin"`
	MinLength         int `json:"min_length"`
	MaxLength         int `json:"max_length"`
	GapNights         int `json:"gap_nights"`
}

func (r *PricingRule) ValidateRuleType() error {
	switch r.RuleType {
	case RuleTypeLastMinute, RuleTypeLengthOfStay, RuleTypeWeekend, RuleTypeSeasonal,
		RuleTypeGapNight, RuleTypeOrphanDay, RuleTypeEventBased, RuleTypeCustom:
		return nil
	}
	return fmt.Errorf("invalid ruleType: %s", r.RuleType)
}

// DecodeAction decode cột action. Rule thiếu hoặc sai field không làm hỏng run:
// type mặc định là discount, value mặc định là 0.
func (r *PricingRule) DecodeAction() RuleAction {
	action := RuleAction{Type: ActionTypeDiscount, Value: 0, Unit: "percent"}
	if len(r.Action) == 0 {
		return action
	}
	var raw struct {
		Type  *string  `json:"type"`
		Value *float64 `json:"value"`
		Unit  *string  `json:"unit"`
	}
	if err := json.Unmarshal(r.Action, &raw); err != nil {
		return action
	}
	if raw.Type != nil {
		action.Type = *raw.Type
	}
	if raw.Value != nil {
		action.Value = *raw.Value
	}
	if raw.Unit != nil {
		action.Unit = *raw.Unit
	}
	return action
}

// DecodeConditions decode cột conditions, bỏ qua lỗi format.
func (r *PricingRule) DecodeConditions() RuleConditions {
	var cond RuleConditions
	if len(r.Conditions) == 0 {
		return cond
	}
	_ = json.Unmarshal(r.Conditions, &cond)
	return cond
}
