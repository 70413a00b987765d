package services

import (
	"testing"

	"trova/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchPropertiesMatchesWithoutDiacritics(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Name: "Căn Hộ Biển Xanh"},
		{ID: 2, Name: "Nhà Vườn Đà Lạt"},
		{ID: 3, Name: "Villa Hồ Tây"},
	}

	results := SearchProperties(properties, "can ho bien xanh", 5)

	require.NotEmpty(t, results)
	assert.Equal(t, uint(1), results[0].ID)
}

func TestSearchPropertiesToleratesTypos(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Name: "Seaside Bungalow"},
		{ID: 2, Name: "Mountain Cabin"},
	}

	results := SearchProperties(properties, "seasde bungalow", 5)

	require.NotEmpty(t, results)
	assert.Equal(t, uint(1), results[0].ID)
}

func TestSearchPropertiesEmptyQuery(t *testing.T) {
	properties := []models.Property{{ID: 1, Name: "Villa"}}
	assert.Nil(t, SearchProperties(properties, "   ", 5))
}

func TestSearchPropertiesLimit(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Name: "Villa One"},
		{ID: 2, Name: "Villa Two"},
		{ID: 3, Name: "Villa Three"},
	}

	results := SearchProperties(properties, "villa", 2)
	assert.LessOrEqual(t, len(results), 2)
}
