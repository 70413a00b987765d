package services

import (
	"context"
	goerrors "errors"

	"trova/constants"
	"trova/errors"
	"trova/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RuleRepository đọc các rule giá đang active của một chỗ ở
type RuleRepository interface {
	ListActiveRules(ctx context.Context, propertyID uint) ([]models.PricingRule, error)
}

// RoomRepository đọc các phòng đang trống của một chỗ ở
type RoomRepository interface {
	ListAvailableRooms(ctx context.Context, propertyID uint) ([]models.Room, error)
}

// PropertyRepository đọc giá cơ bản và danh sách chỗ ở
type PropertyRepository interface {
	GetBasePrice(ctx context.Context, propertyID uint) (decimal.Decimal, error)
	ListPropertyIDs(ctx context.Context) ([]uint, error)
}

// RoomPriceStore ghi giá và lý do mới cho một phòng
type RoomPriceStore interface {
	UpdateRoomPrice(ctx context.Context, roomID uint, price int, reason string) error
}

// GormRuleRepository implement RuleRepository trên gorm
type GormRuleRepository struct {
	db *gorm.DB
}

func NewGormRuleRepository(db *gorm.DB) *GormRuleRepository {
	return &GormRuleRepository{db: db}
}

func (r *GormRuleRepository) ListActiveRules(ctx context.Context, propertyID uint) ([]models.PricingRule, error) {
	var rules []models.PricingRule
	err := r.db.WithContext(ctx).
		Where("property_id = ? AND is_active = ?", propertyID, true).
		Order("priority desc, id asc").
		Find(&rules).Error
	if err != nil {
		return nil, errors.NewDataAccessError("không thể lấy danh sách rule", err)
	}
	return rules, nil
}

// GormRoomRepository implement RoomRepository trên gorm
type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) ListAvailableRooms(ctx context.Context, propertyID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Where("property_id = ? AND status = ?", propertyID, constants.RoomStatusAvailable).
		Order("room_id asc").
		Find(&rooms).Error
	if err != nil {
		return nil, errors.NewDataAccessError("không thể lấy danh sách phòng trống", err)
	}
	return rooms, nil
}

// GormPropertyRepository implement PropertyRepository trên gorm
type GormPropertyRepository struct {
	db *gorm.DB
}

func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

func (r *GormPropertyRepository) GetBasePrice(ctx context.Context, propertyID uint) (decimal.Decimal, error) {
	var property models.Property
	err := r.db.WithContext(ctx).
		Select("id", "base_price").
		Where("id = ?", propertyID).
		First(&property).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, errors.ErrPropertyNotFound
	}
	if err != nil {
		return decimal.Zero, errors.NewDataAccessError("không thể lấy giá cơ bản", err)
	}
	return property.BasePrice, nil
}

func (r *GormPropertyRepository) ListPropertyIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Property{}).
		Order("id asc").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.NewDataAccessError("không thể lấy danh sách chỗ ở", err)
	}
	return ids, nil
}

// GormRoomPriceStore implement RoomPriceStore trên gorm
type GormRoomPriceStore struct {
	db *gorm.DB
}

func NewGormRoomPriceStore(db *gorm.DB) *GormRoomPriceStore {
	return &GormRoomPriceStore{db: db}
}

func (s *GormRoomPriceStore) UpdateRoomPrice(ctx context.Context, roomID uint, price int, reason string) error {
	err := s.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("room_id = ?", roomID).
		Updates(map[string]interface{}{
			"price":             price,
			"last_logic_reason": reason,
		}).Error
	if err != nil {
		return errors.NewDataAccessError("không thể cập nhật giá phòng", err)
	}
	return nil
}
