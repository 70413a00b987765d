package builders

import (
	"trova/models"

	"github.com/google/uuid"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			Code: uuid.New().String(),
		},
	}
}

// WithProperty thêm thông tin chỗ ở
func (b *BookingBuilder) WithProperty(propertyID uint) *BookingBuilder {
	b.booking.PropertyID = propertyID
	return b
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithCheckIn thêm thời gian check-in
func (b *BookingBuilder) WithCheckIn(checkIn string) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	return b
}

// WithCheckOut thêm thời gian check-out
func (b *BookingBuilder) WithCheckOut(checkOut string) *BookingBuilder {
	b.booking.CheckOutDate = checkOut
	return b
}

// WithNightlyPrice chốt giá mỗi đêm tại thời điểm đặt
func (b *BookingBuilder) WithNightlyPrice(price int) *BookingBuilder {
	b.booking.NightlyPrice = price
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
