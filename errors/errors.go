package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"

	// Pricing errors
	ErrCodeInvalidRuleType ErrorCode = "INVALID_RULE_TYPE"
	ErrCodeInvalidAction   ErrorCode = "INVALID_ACTION"
	ErrCodeInvalidPercent  ErrorCode = "INVALID_PERCENT"
	ErrCodeInvalidWeekday  ErrorCode = "INVALID_WEEKDAY"

	// Business errors
	ErrCodePropertyNotFound ErrorCode = "PROPERTY_NOT_FOUND"
	ErrCodeRoomNotFound     ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewDataAccessError bọc lỗi đọc/ghi từ backing store
func NewDataAccessError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDBError,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsDataAccessError kiểm tra lỗi truy cập dữ liệu
func IsDataAccessError(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == ErrCodeDBError
	}
	return false
}

var (
	// Property errors
	ErrPropertyNotFound = errors.New("property not found")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomNotAvailable = errors.New("room not available")
	ErrRoomOccupied     = errors.New("room is occupied")

	// Rule errors
	ErrRuleNotFound = errors.New("pricing rule not found")

	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking already cancelled")
	ErrBookingCompleted = errors.New("booking already completed")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
