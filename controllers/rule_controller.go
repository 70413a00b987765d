package controllers

import (
	"encoding/json"
	"strconv"
	"time"

	"trova/config"
	"trova/dto"
	"trova/models"
	"trova/response"
	"trova/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

func toPricingRuleResponse(rule models.PricingRule) dto.PricingRuleResponse {
	return dto.PricingRuleResponse{
		ID:         rule.ID,
		PropertyID: rule.PropertyID,
		Name:       rule.Name,
		RuleType:   rule.RuleType,
		Priority:   rule.Priority,
		IsActive:   rule.IsActive,
		Conditions: rule.Conditions,
		Action:     rule.Action,
		DateFrom:   rule.DateFrom,
		DateTo:     rule.DateTo,
		DaysOfWeek: rule.DaysOfWeek,
		CreatedAt:  rule.CreatedAt,
		UpdatedAt:  rule.UpdatedAt,
	}
}

func parseRuleDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}
	parsed, err := time.Parse(layout, dateStr)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func GetPricingRules(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	propertyIdStr := c.Query("propertyId")
	ruleTypeFilter := c.Query("ruleType")
	page := 0
	limit := 10

	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}

	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.PricingRule{})
	if propertyIdStr != "" {
		tx = tx.Where("property_id = ?", propertyIdStr)
	}
	if ruleTypeFilter != "" {
		tx = tx.Where("rule_type = ?", ruleTypeFilter)
	}

	var totalRules int64
	if err := tx.Count(&totalRules).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rules []models.PricingRule
	if err := tx.Order("priority desc, id asc").Offset(page * limit).Limit(limit).Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	ruleResponses := make([]dto.PricingRuleResponse, 0, len(rules))
	for _, rule := range rules {
		ruleResponses = append(ruleResponses, toPricingRuleResponse(rule))
	}

	response.SuccessWithPagination(c, ruleResponses, page, limit, int(totalRules))
}

func GetPricingRuleDetail(c *gin.Context) {
	var rule models.PricingRule
	ruleId := c.Param("id")
	if err := config.DB.Where("id = ?", ruleId).First(&rule).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toPricingRuleResponse(rule))
}

func CreatePricingRule(c *gin.Context) {
	var request dto.CreatePricingRuleRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, request.PropertyID).Error; err != nil {
		response.BadRequest(c, "Chỗ ở không tồn tại")
		return
	}

	dateFrom, err := parseRuleDate(request.DateFrom)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
		return
	}
	dateTo, err := parseRuleDate(request.DateTo)
	if err != nil {
		response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
		return
	}

	actionJSON, err := json.Marshal(request.Action)
	if err != nil {
		response.ServerError(c)
		return
	}

	rule := models.PricingRule{
		PropertyID: request.PropertyID,
		Name:       request.Name,
		RuleType:   request.RuleType,
		Priority:   request.Priority,
		IsActive:   true,
		Conditions: request.Conditions,
		Action:     actionJSON,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		DaysOfWeek: pq.Int64Array(request.DaysOfWeek),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := validator.ValidatePricingRule(&rule); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toPricingRuleResponse(rule))
}

func UpdatePricingRule(c *gin.Context) {
	var request dto.UpdatePricingRuleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var rule models.PricingRule
	if err := config.DB.First(&rule, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.Name != "" {
		rule.Name = request.Name
	}
	if request.RuleType != "" {
		rule.RuleType = request.RuleType
	}
	if request.Priority != nil {
		rule.Priority = *request.Priority
	}
	if len(request.Conditions) > 0 {
		rule.Conditions = request.Conditions
	}
	if request.Action != nil {
		actionJSON, err := json.Marshal(request.Action)
		if err != nil {
			response.ServerError(c)
			return
		}
		rule.Action = actionJSON
	}
	if request.DateFrom != "" {
		dateFrom, err := parseRuleDate(request.DateFrom)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày bắt đầu không hợp lệ")
			return
		}
		rule.DateFrom = dateFrom
	}
	if request.DateTo != "" {
		dateTo, err := parseRuleDate(request.DateTo)
		if err != nil {
			response.BadRequest(c, "Định dạng ngày kết thúc không hợp lệ")
			return
		}
		rule.DateTo = dateTo
	}
	if request.DaysOfWeek != nil {
		rule.DaysOfWeek = pq.Int64Array(request.DaysOfWeek)
	}

	if err := validator.ValidatePricingRule(&rule); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	rule.UpdatedAt = time.Now()
	if err := config.DB.Save(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toPricingRuleResponse(rule))
}

func ChangeRuleActive(c *gin.Context) {
	var request dto.ChangeRuleActiveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var rule models.PricingRule
	if err := config.DB.First(&rule, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&rule).Update("is_active", request.IsActive).Error; err != nil {
		response.ServerError(c)
		return
	}

	rule.IsActive = request.IsActive
	response.Success(c, toPricingRuleResponse(rule))
}

func DeletePricingRule(c *gin.Context) {
	ruleId := c.Param("id")

	var rule models.PricingRule
	if err := config.DB.Where("id = ?", ruleId).First(&rule).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Delete(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
