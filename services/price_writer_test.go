package services

import (
	"context"
	"testing"

	"trova/constants"
	"trova/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIfChangedSkipsEqualPrice(t *testing.T) {
	store := &fakePriceStore{rooms: map[uint]*models.Room{}, failOn: map[uint]error{}}
	writer := NewPriceWriter(store)
	room := models.Room{RoomId: 1, Price: 120, Status: constants.RoomStatusAvailable}

	changed, err := writer.WriteIfChanged(context.Background(), &room, 120, []string{"A"})

	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, store.writes)
}

func TestWriteIfChangedPersistsPriceAndReason(t *testing.T) {
	room := &models.Room{RoomId: 1, Price: 100, Status: constants.RoomStatusAvailable}
	store := &fakePriceStore{rooms: map[uint]*models.Room{1: room}, failOn: map[uint]error{}}
	writer := NewPriceWriter(store)

	changed, err := writer.WriteIfChanged(context.Background(), room, 85, []string{"A", "B"})

	require.NoError(t, err)
	assert.True(t, changed)
	require.Len(t, store.writes, 1)
	assert.Equal(t, 85, store.writes[0].price)
	assert.Equal(t, "A, B", store.writes[0].reason)
	assert.Equal(t, 85, room.Price)
	assert.Equal(t, "A, B", room.LastLogicReason)
}

func TestReasonText(t *testing.T) {
	assert.Equal(t, "Base price (no rules matched)", ReasonText(nil))
	assert.Equal(t, "A", ReasonText([]string{"A"}))
	assert.Equal(t, "A, B", ReasonText([]string{"A", "B"}))
}
