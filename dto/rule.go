package dto

import (
	"encoding/json"
	"time"
)

// RuleActionRequest là phần action của rule trong request
type RuleActionRequest struct {
	Type  string  `json:"type" binding:"required"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// CreatePricingRuleRequest là DTO cho yêu cầu tạo mới rule giá
type CreatePricingRuleRequest struct {
	PropertyID uint              `json:"propertyId" binding:"required"`
	Name       string            `json:"name" binding:"required"`
	RuleType   string            `json:"ruleType" binding:"required"`
	Priority   int               `json:"priority"`
	Conditions json.RawMessage   `json:"conditions"`
	Action     RuleActionRequest `json:"action" binding:"required"`
	DateFrom   string            `json:"dateFrom"` // dd/mm/yyyy, tùy chọn
	DateTo     string            `json:"dateTo"`   // dd/mm/yyyy, tùy chọn
	DaysOfWeek []int64           `json:"daysOfWeek"`
}

// UpdatePricingRuleRequest là DTO cho yêu cầu cập nhật rule giá
type UpdatePricingRuleRequest struct {
	ID         uint               `json:"id" binding:"required"`
	Name       string             `json:"name"`
	RuleType   string             `json:"ruleType"`
	Priority   *int               `json:"priority"`
	Conditions json.RawMessage    `json:"conditions"`
	Action     *RuleActionRequest `json:"action"`
	DateFrom   string             `json:"dateFrom"`
	DateTo     string             `json:"dateTo"`
	DaysOfWeek []int64            `json:"daysOfWeek"`
}

// ChangeRuleActiveRequest là DTO cho yêu cầu bật/tắt rule
type ChangeRuleActiveRequest struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}

// PricingRuleResponse là DTO cho response của rule giá
type PricingRuleResponse struct {
	ID         uint            `json:"id"`
	PropertyID uint            `json:"propertyId"`
	Name       string          `json:"name"`
	RuleType   string          `json:"ruleType"`
	Priority   int             `json:"priority"`
	IsActive   bool            `json:"isActive"`
	Conditions json.RawMessage `json:"conditions"`
	Action     json.RawMessage `json:"action"`
	DateFrom   *time.Time      `json:"dateFrom"`
	DateTo     *time.Time      `json:"dateTo"`
	DaysOfWeek []int64         `json:"daysOfWeek"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
