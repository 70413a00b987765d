package constants

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
)

// Property status
const (
	PropertyStatusActive   = 0
	PropertyStatusInactive = 1
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)
