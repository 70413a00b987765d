package validator

import (
	"regexp"
	"time"

	"trova/errors"
	"trova/models"

	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = validatorv10.New()

// ValidateStruct chạy các tag binding trên DTO
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ValidateProperty validate thông tin chỗ ở
func ValidateProperty(property *models.Property) error {
	if property.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên chỗ ở không được để trống", nil)
	}

	if property.BasePrice.IsNegative() {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá cơ bản không được âm", nil)
	}

	if err := property.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại chỗ ở không hợp lệ", err)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID chỗ ở không được để trống", nil)
	}

	if room.RoomName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", nil)
	}

	return nil
}

// ValidatePricingRule validate rule giá
func ValidatePricingRule(rule *models.PricingRule) error {
	if rule.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID chỗ ở không được để trống", nil)
	}

	if rule.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên rule không được để trống", nil)
	}

	if err := rule.ValidateRuleType(); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidRuleType, "Loại rule không hợp lệ", err)
	}

	action := rule.DecodeAction()
	if action.Type != models.ActionTypeDiscount && action.Type != models.ActionTypeSurge {
		return errors.NewAppError(errors.ErrCodeInvalidAction, "Loại action phải là discount hoặc surge", nil)
	}

	if action.Value < 0 || action.Value > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidPercent, "Phần trăm phải nằm trong khoảng từ 0 đến 100", nil)
	}

	if rule.DateFrom != nil && rule.DateTo != nil && rule.DateTo.Before(*rule.DateFrom) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	for _, day := range rule.DaysOfWeek {
		if day < 0 || day > 6 {
			return errors.NewAppError(errors.ErrCodeInvalidWeekday, "Thứ trong tuần phải từ 0 đến 6", nil)
		}
	}

	return nil
}

// ValidateBooking validate thông tin đặt phòng
func ValidateBooking(booking *models.Booking) error {
	if booking.PropertyID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID chỗ ở không được để trống", nil)
	}

	if booking.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID phòng không được để trống", nil)
	}

	if booking.GuestName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if booking.GuestPhone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại khách không được để trống", nil)
	}

	if !isValidPhone(booking.GuestPhone) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số điện thoại khách không hợp lệ", nil)
	}

	if booking.GuestEmail != "" && !isValidEmail(booking.GuestEmail) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email khách không hợp lệ", nil)
	}

	checkInDate, err := time.Parse("02/01/2006", booking.CheckInDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	checkOutDate, err := time.Parse("02/01/2006", booking.CheckOutDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if checkOutDate.Before(checkInDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
