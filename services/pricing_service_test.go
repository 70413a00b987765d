package services

import (
	"context"
	goerrors "errors"
	"sort"
	"testing"
	"time"

	"trova/constants"
	"trova/errors"
	"trova/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes cho các repository interface, dùng chung map phòng để lần
// chạy sau nhìn thấy giá đã ghi ở lần chạy trước.

type fakeRuleRepo struct {
	rules map[uint][]models.PricingRule
	errs  map[uint]error
}

func (f *fakeRuleRepo) ListActiveRules(ctx context.Context, propertyID uint) ([]models.PricingRule, error) {
	if err := f.errs[propertyID]; err != nil {
		return nil, err
	}
	return f.rules[propertyID], nil
}

type fakeRoomRepo struct {
	rooms map[uint]*models.Room // theo room id
	errs  map[uint]error        // theo property id
}

func (f *fakeRoomRepo) ListAvailableRooms(ctx context.Context, propertyID uint) ([]models.Room, error) {
	if err := f.errs[propertyID]; err != nil {
		return nil, err
	}
	var ids []uint
	for id, room := range f.rooms {
		if room.PropertyID == propertyID && room.Status == constants.RoomStatusAvailable {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	rooms := make([]models.Room, 0, len(ids))
	for _, id := range ids {
		rooms = append(rooms, *f.rooms[id])
	}
	return rooms, nil
}

type fakePropertyRepo struct {
	basePrices map[uint]decimal.Decimal
	listErr    error
}

func (f *fakePropertyRepo) GetBasePrice(ctx context.Context, propertyID uint) (decimal.Decimal, error) {
	price, ok := f.basePrices[propertyID]
	if !ok {
		return decimal.Zero, errors.ErrPropertyNotFound
	}
	return price, nil
}

func (f *fakePropertyRepo) ListPropertyIDs(ctx context.Context) ([]uint, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var ids []uint
	for id := range f.basePrices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

type priceWrite struct {
	roomID uint
	price  int
	reason string
}

type fakePriceStore struct {
	rooms  map[uint]*models.Room
	writes []priceWrite
	failOn map[uint]error // theo room id
}

func (f *fakePriceStore) UpdateRoomPrice(ctx context.Context, roomID uint, price int, reason string) error {
	if err := f.failOn[roomID]; err != nil {
		return err
	}
	f.writes = append(f.writes, priceWrite{roomID: roomID, price: price, reason: reason})
	if room, ok := f.rooms[roomID]; ok {
		room.Price = price
		room.LastLogicReason = reason
	}
	return nil
}

type fixture struct {
	service    *PricingService
	ruleRepo   *fakeRuleRepo
	roomRepo   *fakeRoomRepo
	properties *fakePropertyRepo
	store      *fakePriceStore
}

func newFixture() *fixture {
	rooms := map[uint]*models.Room{}
	f := &fixture{
		ruleRepo:   &fakeRuleRepo{rules: map[uint][]models.PricingRule{}, errs: map[uint]error{}},
		roomRepo:   &fakeRoomRepo{rooms: rooms, errs: map[uint]error{}},
		properties: &fakePropertyRepo{basePrices: map[uint]decimal.Decimal{}},
		store:      &fakePriceStore{rooms: rooms, failOn: map[uint]error{}},
	}
	f.service = NewPricingService(PricingServiceOptions{
		Rules:      f.ruleRepo,
		Rooms:      f.roomRepo,
		Properties: f.properties,
		Prices:     f.store,
	})
	f.service.now = func() time.Time {
		return time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func (f *fixture) addRoom(roomID, propertyID uint, price int) {
	f.roomRepo.rooms[roomID] = &models.Room{
		RoomId:     roomID,
		PropertyID: propertyID,
		Price:      price,
		Status:     constants.RoomStatusAvailable,
	}
}

func TestRunPropertyLastMatchWins(t *testing.T) {
	f := newFixture()
	f.properties.basePrices[1] = decimal.NewFromInt(100)
	f.ruleRepo.rules[1] = []models.PricingRule{
		makeRule("A", 10, models.ActionTypeDiscount, 15),
		makeRule("B", 5, models.ActionTypeSurge, 20),
	}
	f.addRoom(11, 1, 100)
	f.addRoom(12, 1, 120) // đã đúng giá, không cần ghi

	result := f.service.RunProperty(context.Background(), 1)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.UpdatedRooms)
	assert.Equal(t, []string{"A", "B"}, result.AppliedRules)
	assert.Equal(t, 2, result.EvaluatedRules)

	require.Len(t, f.store.writes, 1)
	assert.Equal(t, uint(11), f.store.writes[0].roomID)
	assert.Equal(t, 120, f.store.writes[0].price)
	assert.Equal(t, "A, B", f.store.writes[0].reason)
}

func TestRunPropertyNoRulesMatchedReason(t *testing.T) {
	f := newFixture()
	f.properties.basePrices[1] = decimal.NewFromInt(100)
	f.addRoom(11, 1, 95)

	result := f.service.RunProperty(context.Background(), 1)

	require.True(t, result.Success)
	assert.Equal(t, 1, result.UpdatedRooms)
	assert.Empty(t, result.AppliedRules)
	require.Len(t, f.store.writes, 1)
	assert.Equal(t, 100, f.store.writes[0].price)
	assert.Equal(t, NoRulesMatchedReason, f.store.writes[0].reason)
}

// Chạy lại engine với dữ liệu không đổi thì lần hai không ghi gì.
func TestRunPropertyIdempotent(t *testing.T) {
	f := newFixture()
	f.properties.basePrices[1] = decimal.NewFromInt(100)
	f.ruleRepo.rules[1] = []models.PricingRule{makeRule("A", 10, models.ActionTypeDiscount, 15)}
	f.addRoom(11, 1, 100)
	f.addRoom(12, 1, 100)

	first := f.service.RunProperty(context.Background(), 1)
	require.True(t, first.Success)
	assert.Equal(t, 2, first.UpdatedRooms)

	second := f.service.RunProperty(context.Background(), 1)
	require.True(t, second.Success)
	assert.Equal(t, 0, second.UpdatedRooms)
	assert.Len(t, f.store.writes, 2, "lần hai không có write mới")
}

func TestRunPropertyMissingProperty(t *testing.T) {
	f := newFixture()

	result := f.service.RunProperty(context.Background(), 999)

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.UpdatedRooms)
	assert.NotNil(t, result.AppliedRules)
	assert.Empty(t, result.AppliedRules)
}

func TestRunPropertyAppliedRulesDeduped(t *testing.T) {
	f := newFixture()
	f.properties.basePrices[1] = decimal.NewFromInt(100)
	f.ruleRepo.rules[1] = []models.PricingRule{makeRule("A", 10, models.ActionTypeDiscount, 15)}
	f.addRoom(11, 1, 100)
	f.addRoom(12, 1, 100)

	result := f.service.RunProperty(context.Background(), 1)

	require.True(t, result.Success)
	assert.Equal(t, []string{"A"}, result.AppliedRules)
}

// Lỗi ghi dừng phần còn lại của chỗ ở nhưng giữ lại các cập nhật đã xong.
func TestRunPropertyWriteFailureAborts(t *testing.T) {
	f := newFixture()
	f.properties.basePrices[1] = decimal.NewFromInt(100)
	f.ruleRepo.rules[1] = []models.PricingRule{makeRule("A", 10, models.ActionTypeSurge, 10)}
	f.addRoom(11, 1, 100)
	f.addRoom(12, 1, 100)
	f.store.failOn[12] = errors.NewDataAccessError("mất kết nối", goerrors.New("connection reset"))

	result := f.service.RunProperty(context.Background(), 1)

	assert.False(t, result.Success)
	assert.Equal(t, 1, result.UpdatedRooms)
	assert.Len(t, f.store.writes, 1)
}

func TestRunPropertyRuleFetchFailure(t *testing.T) {
	f := newFixture()
	f.properties.basePrices[1] = decimal.NewFromInt(100)
	f.ruleRepo.errs[1] = errors.NewDataAccessError("mất kết nối", nil)
	f.addRoom(11, 1, 100)

	result := f.service.RunProperty(context.Background(), 1)

	assert.False(t, result.Success)
	assert.Empty(t, f.store.writes)
}

// Một chỗ ở lỗi không dừng cả portfolio; processed đếm số lần thử.
func TestRunAllIsolatesFailures(t *testing.T) {
	f := newFixture()
	f.properties.basePrices[1] = decimal.NewFromInt(100)
	f.properties.basePrices[2] = decimal.NewFromInt(100)
	f.properties.basePrices[3] = decimal.NewFromInt(100)
	f.ruleRepo.rules[1] = []models.PricingRule{makeRule("A", 10, models.ActionTypeSurge, 10)}
	f.ruleRepo.rules[3] = []models.PricingRule{makeRule("B", 10, models.ActionTypeDiscount, 10)}
	f.addRoom(11, 1, 100)
	f.addRoom(21, 2, 100)
	f.addRoom(31, 3, 100)
	f.roomRepo.errs[2] = errors.NewDataAccessError("mất kết nối", nil)

	result := f.service.RunAll(context.Background())

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.PropertiesProcessed)
	assert.Equal(t, 2, result.TotalUpdated)
}

func TestRunAllListFailure(t *testing.T) {
	f := newFixture()
	f.properties.listErr = errors.NewDataAccessError("mất kết nối", nil)

	result := f.service.RunAll(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, 0, result.PropertiesProcessed)
}
