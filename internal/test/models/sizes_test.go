package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

func size(value string) models.Size {
	return models.Size{ID: uuid.New(), Value: value}
}

func values(sizes []models.Size) []string {
	out := make([]string, len(sizes))
	for i, s := range sizes {
		out[i] = s.Value
	}
	return out
}

func TestSortSizes_DomainOrder(t *testing.T) {
	sizes := []models.Size{
		size("Medium"),
		size("3XL"),
		size("Extra Small"),
		size("Large"),
		size("2XL"),
		size("Small"),
		size("Extra Large"),
	}

	models.SortSizes(sizes)

	assert.Equal(t, []string{
		"Extra Small", "Small", "Medium", "Large", "Extra Large", "2XL", "3XL",
	}, values(sizes))
}

func TestSortSizes_UnknownValuesLast(t *testing.T) {
	sizes := []models.Size{
		size("One Size"),
		size("Large"),
		size("Youth"),
		size("Small"),
	}

	models.SortSizes(sizes)

	// Unrecognized values sort after every known one and keep their
	// incoming order among themselves.
	assert.Equal(t, []string{"Small", "Large", "One Size", "Youth"}, values(sizes))
}

func TestSizeRank_Unknown(t *testing.T) {
	assert.Greater(t, models.SizeRank("One Size"), models.SizeRank("3XL"))
	assert.Equal(t, models.SizeRank("One Size"), models.SizeRank("Youth"))
}

func TestPlacementLabel(t *testing.T) {
	assert.Equal(t, "Front - Top Left", models.PlacementLabel("front-top-left"))
	assert.Equal(t, "Front - Center", models.PlacementLabel("front-center"))
	assert.Equal(t, "Back - Top", models.PlacementLabel("back-top"))
	assert.Equal(t, "Back - Bottom", models.PlacementLabel("back-bottom"))

	// Unknown keys pass through unchanged.
	assert.Equal(t, "sleeve", models.PlacementLabel("sleeve"))
}

func TestAssetSlots_Order(t *testing.T) {
	assert.Equal(t, []string{"front-top-left", "front-center", "back-top", "back-bottom"}, models.AssetSlots)
}
